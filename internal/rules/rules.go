// Package rules implements the booking validation rules: flight crew roster
// capacity, ticket seat bounds and crew position/type consistency. All checks
// are pure functions over in-memory values; callers load the records and
// decide what to do with a failure.
package rules

import (
	"fmt"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ValidationError is a rule violation scoped to a request field. The message
// is intended to be returned to the client as-is.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// CheckCrewRoster validates a proposed crew roster against the airplane's
// cockpit and cabin capacity. The roster must fill both exactly: too many
// crew of either class is rejected, and so is too few. A nil roster means no
// crew data was supplied and the check is skipped.
func CheckCrewRoster(roster []models.Crew, airplane *models.Airplane) error {
	if roster == nil || airplane == nil {
		return nil
	}

	var flightCrew, cabinCrew int
	for _, member := range roster {
		switch member.CrewType {
		case models.CrewTypeFlightCrew:
			flightCrew++
		case models.CrewTypeCabinCrew:
			cabinCrew++
		}
	}

	if cabinCrew > airplane.PersonalCapacity {
		return newError("detail", "The number of cabin crew exceeds the airline's personal capacity.")
	}

	if flightCrew > airplane.PilotsCapacity {
		return newError("detail", "The number of flight crew exceeds the airline's pilot capacity.")
	}

	if cabinCrew < airplane.PersonalCapacity {
		return newError("detail", "The number of airline personal capacity must be at least %d.", airplane.PersonalCapacity)
	}

	if flightCrew < airplane.PilotsCapacity {
		return newError("detail", "The number of airline pilots capacity must be at least %d.", airplane.PilotsCapacity)
	}

	return nil
}

// CheckSeat validates a ticket's seat position against the airplane's seat
// map. An airplane without configured rows or seats per row cannot accept
// tickets at all. The check is skipped when either coordinate is absent;
// the lower bound (>= 1) is enforced by field-level validation.
func CheckSeat(row, seat int, airplane *models.Airplane) error {
	if row == 0 || seat == 0 {
		return nil
	}

	if airplane.Rows == nil || airplane.SeatsInRow == nil {
		return newError("flight", "Ticket cannot be booked for %s.", airplane.Name)
	}

	if row > *airplane.Rows {
		return newError("row", "Invalid row number. Row number must be between 1 and %d.", *airplane.Rows)
	}

	if seat > *airplane.SeatsInRow {
		return newError("seat", "Invalid seat number. Seat number must be between 1 and %d.", *airplane.SeatsInRow)
	}

	return nil
}

// CheckCrewPosition validates that a position belongs to the position set of
// the crew type. Runs only when both values are present.
func CheckCrewPosition(crewType models.CrewType, position models.CrewPosition) error {
	if crewType == "" || position == "" {
		return nil
	}

	if !crewType.Valid() {
		return newError("crew_type", "%q is not a valid crew type.", string(crewType))
	}

	if !position.Valid() {
		return newError("position", "%q is not a valid position.", string(position))
	}

	if position.AllowedFor(crewType) {
		return nil
	}

	switch crewType {
	case models.CrewTypeFlightCrew:
		return newError("position", "Invalid %s position for flight crew.", position.Label())
	default:
		return newError("position", "Invalid %s position for cabin crew.", position.Label())
	}
}

// CheckRoute rejects a route whose source and destination are the same
// airport.
func CheckRoute(req *models.RouteRequest) error {
	if req.Source == req.Destination {
		return newError("detail", "Source and destination cannot be the same.")
	}
	return nil
}
