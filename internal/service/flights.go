package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/rules"
)

func (s *serviceImpl) ListFlights(ctx context.Context, page database.Page) ([]models.FlightDetail, int, error) {
	return s.store.ListFlights(ctx, page)
}

func (s *serviceImpl) GetFlight(ctx context.Context, id uuid.UUID) (*models.FlightDetail, error) {
	return s.store.GetFlightDetail(ctx, id)
}

func (s *serviceImpl) CreateFlight(ctx context.Context, req *models.FlightRequest) (*models.FlightDetail, error) {
	flight := &models.Flight{
		ID:            uuid.New(),
		RouteID:       req.Route,
		AirplaneID:    req.Airplane,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	crewIDs := []uuid.UUID{}
	if req.Crew != nil {
		crewIDs = *req.Crew
	}
	if err := s.checkRoster(ctx, req.Airplane, crewIDs); err != nil {
		return nil, err
	}
	flight.CrewIDs = crewIDs

	if err := s.store.CreateFlight(ctx, flight); err != nil {
		return nil, err
	}
	return s.store.GetFlightDetail(ctx, flight.ID)
}

// UpdateFlight overwrites the flight's scalar fields. The crew roster is
// replaced only when the payload carries one; a payload without a crew key
// leaves the existing assignments in place, and the roster check then runs
// against those assignments and the new airplane.
func (s *serviceImpl) UpdateFlight(ctx context.Context, id uuid.UUID, req *models.FlightRequest) (*models.FlightDetail, error) {
	current, err := s.store.GetFlight(ctx, id)
	if err != nil {
		return nil, err
	}

	flight := &models.Flight{
		ID:            id,
		RouteID:       req.Route,
		AirplaneID:    req.Airplane,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	replaceCrew := req.Crew != nil
	if replaceCrew {
		flight.CrewIDs = *req.Crew
	} else {
		flight.CrewIDs = current.CrewIDs
	}

	if err := s.checkRoster(ctx, req.Airplane, flight.CrewIDs); err != nil {
		return nil, err
	}

	if err := s.store.UpdateFlight(ctx, flight, replaceCrew); err != nil {
		return nil, err
	}
	return s.store.GetFlightDetail(ctx, id)
}

func (s *serviceImpl) DeleteFlight(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteFlight(ctx, id)
}

// checkRoster resolves the crew ids and validates the roster against the
// airplane's cockpit and cabin capacity.
func (s *serviceImpl) checkRoster(ctx context.Context, airplaneID uuid.UUID, crewIDs []uuid.UUID) error {
	airplane, err := s.store.GetAirplane(ctx, airplaneID)
	if err != nil {
		return err
	}

	roster, err := s.store.GetCrewByIDs(ctx, crewIDs)
	if err != nil {
		return err
	}

	return rules.CheckCrewRoster(roster, airplane)
}
