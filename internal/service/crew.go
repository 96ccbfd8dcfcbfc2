package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/rules"
)

func (s *serviceImpl) ListCrew(ctx context.Context, page database.Page) ([]models.Crew, int, error) {
	return s.store.ListCrew(ctx, page)
}

func (s *serviceImpl) GetCrew(ctx context.Context, id uuid.UUID) (*models.Crew, error) {
	return s.store.GetCrew(ctx, id)
}

func (s *serviceImpl) CreateCrew(ctx context.Context, req *models.CrewRequest) (*models.Crew, error) {
	if err := rules.CheckCrewPosition(req.CrewType, req.Position); err != nil {
		return nil, err
	}

	member := &models.Crew{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CrewType:  req.CrewType,
		Position:  req.Position,
	}
	if err := s.store.CreateCrew(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *serviceImpl) UpdateCrew(ctx context.Context, id uuid.UUID, req *models.CrewRequest) (*models.Crew, error) {
	if err := rules.CheckCrewPosition(req.CrewType, req.Position); err != nil {
		return nil, err
	}

	member := &models.Crew{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CrewType:  req.CrewType,
		Position:  req.Position,
	}
	if err := s.store.UpdateCrew(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *serviceImpl) DeleteCrew(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteCrew(ctx, id)
}
