package models

// CrewType classifies a crew member as cockpit or cabin personnel.
type CrewType string

const (
	CrewTypeFlightCrew CrewType = "flight_crew"
	CrewTypeCabinCrew  CrewType = "cabin_crew"
)

// CrewPosition is a concrete role a crew member holds on board.
type CrewPosition string

const (
	PositionCaptain               CrewPosition = "captain"
	PositionCoPilot               CrewPosition = "co_pilot"
	PositionFlightEngineer        CrewPosition = "flight_engineer"
	PositionNavigator             CrewPosition = "navigator"
	PositionFlightAttendant       CrewPosition = "flight_attendant"
	PositionSeniorFlightAttendant CrewPosition = "senior_flight_attendant"
	PositionSafetyOfficer         CrewPosition = "safety_officer"
)

// crewTypeLabels and positionLabels hold the human-readable names used in
// API responses and validation messages.
var crewTypeLabels = map[CrewType]string{
	CrewTypeFlightCrew: "Flight crew",
	CrewTypeCabinCrew:  "Cabin crew",
}

var positionLabels = map[CrewPosition]string{
	PositionCaptain:               "Captain",
	PositionCoPilot:               "Co-Pilot",
	PositionFlightEngineer:        "Flight Engineer",
	PositionNavigator:             "Navigator",
	PositionFlightAttendant:       "Flight Attendant",
	PositionSeniorFlightAttendant: "Senior Flight Attendant",
	PositionSafetyOfficer:         "Safety Officer",
}

// PositionsByCrewType maps each crew type to the set of positions that are
// legal for it. Membership here is the single source of truth for
// position/type validation.
var PositionsByCrewType = map[CrewType][]CrewPosition{
	CrewTypeFlightCrew: {
		PositionCaptain,
		PositionCoPilot,
		PositionFlightEngineer,
		PositionNavigator,
	},
	CrewTypeCabinCrew: {
		PositionFlightAttendant,
		PositionSeniorFlightAttendant,
		PositionSafetyOfficer,
	},
}

// Valid reports whether the crew type is one of the known values.
func (t CrewType) Valid() bool {
	_, ok := crewTypeLabels[t]
	return ok
}

// Label returns the display name for the crew type.
func (t CrewType) Label() string {
	return crewTypeLabels[t]
}

// Valid reports whether the position is one of the known values.
func (p CrewPosition) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

// Label returns the display name for the position.
func (p CrewPosition) Label() string {
	return positionLabels[p]
}

// AllowedFor reports whether the position belongs to the given crew type.
func (p CrewPosition) AllowedFor(t CrewType) bool {
	for _, allowed := range PositionsByCrewType[t] {
		if p == allowed {
			return true
		}
	}
	return false
}
