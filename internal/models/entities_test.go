package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestAirplaneDerivedCapacities(t *testing.T) {
	airplane := &Airplane{
		Rows:             intPtr(10),
		SeatsInRow:       intPtr(6),
		PilotsCapacity:   2,
		PersonalCapacity: 4,
	}

	assert.Equal(t, 6, airplane.CrewCapacity())
	assert.Equal(t, 60, airplane.PassengerSeatsTotal())
	assert.Equal(t, 66, airplane.SeatsTotal())
}

func TestAirplaneWithoutSeatMapHasNoPassengerSeats(t *testing.T) {
	tests := []struct {
		name     string
		airplane *Airplane
	}{
		{name: "no rows", airplane: &Airplane{SeatsInRow: intPtr(6), PilotsCapacity: 2}},
		{name: "no seats in row", airplane: &Airplane{Rows: intPtr(10), PilotsCapacity: 2}},
		{name: "neither", airplane: &Airplane{PilotsCapacity: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, tt.airplane.PassengerSeatsTotal())
			assert.Equal(t, tt.airplane.CrewCapacity(), tt.airplane.SeatsTotal())
		})
	}
}

func TestCrewPositionAllowedFor(t *testing.T) {
	assert.True(t, PositionCaptain.AllowedFor(CrewTypeFlightCrew))
	assert.False(t, PositionCaptain.AllowedFor(CrewTypeCabinCrew))
	assert.True(t, PositionSafetyOfficer.AllowedFor(CrewTypeCabinCrew))
	assert.False(t, PositionSafetyOfficer.AllowedFor(CrewTypeFlightCrew))
}

func TestCrewTypeLabels(t *testing.T) {
	assert.Equal(t, "Flight crew", CrewTypeFlightCrew.Label())
	assert.Equal(t, "Senior Flight Attendant", PositionSeniorFlightAttendant.Label())
	assert.False(t, CrewType("ground_crew").Valid())
	assert.False(t, CrewPosition("wizard").Valid())
}
