package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/rules"
	"github.com/partnersinbahamas/airport-api/internal/service"
	"github.com/partnersinbahamas/airport-api/internal/service/mocks"
)

func pilot() models.Crew {
	return models.Crew{
		ID:       uuid.New(),
		CrewType: models.CrewTypeFlightCrew,
		Position: models.PositionCaptain,
	}
}

func attendant() models.Crew {
	return models.Crew{
		ID:       uuid.New(),
		CrewType: models.CrewTypeCabinCrew,
		Position: models.PositionFlightAttendant,
	}
}

func flightRequest(airplaneID uuid.UUID, crew []uuid.UUID) *models.FlightRequest {
	departure := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	req := &models.FlightRequest{
		Route:         uuid.New(),
		Airplane:      airplaneID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
	}
	if crew != nil {
		req.Crew = &crew
	}
	return req
}

func rosterIDs(roster []models.Crew) []uuid.UUID {
	ids := make([]uuid.UUID, len(roster))
	for i, member := range roster {
		ids[i] = member.ID
	}
	return ids
}

func TestCreateFlightRosterExceedsPilotCapacity(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	airplane := seatedAirplane(10, 6)
	roster := []models.Crew{pilot(), pilot(), pilot(), attendant(), attendant()}
	ids := rosterIDs(roster)

	store.On("GetAirplane", mock.Anything, airplane.ID).Return(airplane, nil)
	store.On("GetCrewByIDs", mock.Anything, ids).Return(roster, nil)

	_, err := svc.CreateFlight(context.Background(), flightRequest(airplane.ID, ids))

	var vErr *rules.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "The number of flight crew exceeds the airline's pilot capacity.", vErr.Message)
	store.AssertNotCalled(t, "CreateFlight", mock.Anything, mock.Anything)
}

func TestCreateFlightRosterTooSmall(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	airplane := seatedAirplane(10, 6)
	roster := []models.Crew{pilot(), attendant(), attendant()}
	ids := rosterIDs(roster)

	store.On("GetAirplane", mock.Anything, airplane.ID).Return(airplane, nil)
	store.On("GetCrewByIDs", mock.Anything, ids).Return(roster, nil)

	_, err := svc.CreateFlight(context.Background(), flightRequest(airplane.ID, ids))

	var vErr *rules.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "The number of airline pilots capacity must be at least 2.", vErr.Message)
}

func TestCreateFlightExactRoster(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	airplane := seatedAirplane(10, 6)
	roster := []models.Crew{pilot(), pilot(), attendant(), attendant()}
	ids := rosterIDs(roster)

	store.On("GetAirplane", mock.Anything, airplane.ID).Return(airplane, nil)
	store.On("GetCrewByIDs", mock.Anything, ids).Return(roster, nil)
	store.On("CreateFlight", mock.Anything, mock.MatchedBy(func(f *models.Flight) bool {
		return len(f.CrewIDs) == 4 && f.AirplaneID == airplane.ID
	})).Return(nil)
	store.On("GetFlightDetail", mock.Anything, mock.Anything).Return(&models.FlightDetail{}, nil)

	_, err := svc.CreateFlight(context.Background(), flightRequest(airplane.ID, ids))
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdateFlightWithoutCrewKeepsRoster(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	airplane := seatedAirplane(10, 6)
	roster := []models.Crew{pilot(), pilot(), attendant(), attendant()}
	ids := rosterIDs(roster)
	flightID := uuid.New()

	store.On("GetFlight", mock.Anything, flightID).Return(&models.Flight{ID: flightID, CrewIDs: ids}, nil)
	store.On("GetAirplane", mock.Anything, airplane.ID).Return(airplane, nil)
	store.On("GetCrewByIDs", mock.Anything, ids).Return(roster, nil)
	store.On("UpdateFlight", mock.Anything, mock.Anything, false).Return(nil)
	store.On("GetFlightDetail", mock.Anything, flightID).Return(&models.FlightDetail{ID: flightID}, nil)

	_, err := svc.UpdateFlight(context.Background(), flightID, flightRequest(airplane.ID, nil))
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdateFlightWithCrewReplacesRoster(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	airplane := seatedAirplane(10, 6)
	roster := []models.Crew{pilot(), pilot(), attendant(), attendant()}
	ids := rosterIDs(roster)
	flightID := uuid.New()

	store.On("GetFlight", mock.Anything, flightID).Return(&models.Flight{ID: flightID}, nil)
	store.On("GetAirplane", mock.Anything, airplane.ID).Return(airplane, nil)
	store.On("GetCrewByIDs", mock.Anything, ids).Return(roster, nil)
	store.On("UpdateFlight", mock.Anything, mock.Anything, true).Return(nil)
	store.On("GetFlightDetail", mock.Anything, flightID).Return(&models.FlightDetail{ID: flightID}, nil)

	_, err := svc.UpdateFlight(context.Background(), flightID, flightRequest(airplane.ID, ids))
	require.NoError(t, err)
	store.AssertExpectations(t)
}
