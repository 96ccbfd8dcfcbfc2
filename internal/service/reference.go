package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/media"
	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/rules"
)

func (s *serviceImpl) ListAirports(ctx context.Context, filter database.AirportFilter, page database.Page) ([]models.Airport, int, error) {
	return s.store.ListAirports(ctx, filter, page)
}

func (s *serviceImpl) GetAirport(ctx context.Context, id uuid.UUID) (*models.Airport, error) {
	return s.store.GetAirport(ctx, id)
}

func (s *serviceImpl) CreateAirport(ctx context.Context, req *models.AirportRequest) (*models.Airport, error) {
	airport := &models.Airport{
		ID:       uuid.New(),
		Name:     req.Name,
		City:     req.City,
		OpenYear: req.OpenYear,
	}
	if err := s.store.CreateAirport(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *serviceImpl) UpdateAirport(ctx context.Context, id uuid.UUID, req *models.AirportRequest) (*models.Airport, error) {
	airport, err := s.store.GetAirport(ctx, id)
	if err != nil {
		return nil, err
	}

	airport.Name = req.Name
	airport.City = req.City
	airport.OpenYear = req.OpenYear

	if err := s.store.UpdateAirport(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *serviceImpl) UploadAirportImage(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*models.Airport, error) {
	airport, err := s.store.GetAirport(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.media.Save(media.KindAirport, airport.Name, filename, data)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetAirportImage(ctx, id, url); err != nil {
		return nil, err
	}
	airport.Image = &url
	return airport, nil
}

func (s *serviceImpl) DeleteAirport(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteAirport(ctx, id)
}

func (s *serviceImpl) ListRoutes(ctx context.Context, page database.Page) ([]models.RouteList, int, error) {
	return s.store.ListRoutes(ctx, page)
}

func (s *serviceImpl) GetRoute(ctx context.Context, id uuid.UUID) (*models.RouteDetail, error) {
	return s.store.GetRoute(ctx, id)
}

func (s *serviceImpl) CreateRoute(ctx context.Context, req *models.RouteRequest) (*models.RouteDetail, error) {
	if err := rules.CheckRoute(req); err != nil {
		return nil, err
	}

	route := &models.Route{
		ID:            uuid.New(),
		SourceID:      req.Source,
		DestinationID: req.Destination,
		Distance:      req.Distance,
	}
	if err := s.store.CreateRoute(ctx, route); err != nil {
		return nil, err
	}
	return s.store.GetRoute(ctx, route.ID)
}

func (s *serviceImpl) UpdateRoute(ctx context.Context, id uuid.UUID, req *models.RouteRequest) (*models.RouteDetail, error) {
	if err := rules.CheckRoute(req); err != nil {
		return nil, err
	}

	route := &models.Route{
		ID:            id,
		SourceID:      req.Source,
		DestinationID: req.Destination,
		Distance:      req.Distance,
	}
	if err := s.store.UpdateRoute(ctx, route); err != nil {
		return nil, err
	}
	return s.store.GetRoute(ctx, id)
}

func (s *serviceImpl) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteRoute(ctx, id)
}

func (s *serviceImpl) ListManufacturers(ctx context.Context, page database.Page) ([]models.ManufacturerList, int, error) {
	return s.store.ListManufacturers(ctx, page)
}

func (s *serviceImpl) GetManufacturer(ctx context.Context, id uuid.UUID) (*models.ManufacturerDetail, error) {
	m, err := s.store.GetManufacturer(ctx, id)
	if err != nil {
		return nil, err
	}

	airplanes, err := s.store.ListManufacturerAirplanes(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.ManufacturerDetail{Manufacturer: *m, Airplanes: airplanes}, nil
}

func (s *serviceImpl) CreateManufacturer(ctx context.Context, req *models.ManufacturerRequest) (*models.ManufacturerDetail, error) {
	m := &models.Manufacturer{
		ID:          uuid.New(),
		Name:        req.Name,
		Country:     req.Country,
		FoundedYear: req.FoundedYear,
		Website:     req.Website,
	}
	if err := s.store.CreateManufacturer(ctx, m); err != nil {
		return nil, err
	}
	return &models.ManufacturerDetail{Manufacturer: *m, Airplanes: []models.AirplaneList{}}, nil
}

func (s *serviceImpl) UpdateManufacturer(ctx context.Context, id uuid.UUID, req *models.ManufacturerRequest) (*models.ManufacturerDetail, error) {
	m, err := s.store.GetManufacturer(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Name = req.Name
	m.Country = req.Country
	m.FoundedYear = req.FoundedYear
	m.Website = req.Website

	if err := s.store.UpdateManufacturer(ctx, m); err != nil {
		return nil, err
	}
	return s.GetManufacturer(ctx, id)
}

func (s *serviceImpl) UploadManufacturerLogo(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*models.Manufacturer, error) {
	m, err := s.store.GetManufacturer(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.media.Save(media.KindManufacturer, m.Name, filename, data)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetManufacturerLogo(ctx, id, url); err != nil {
		return nil, err
	}
	m.Logo = &url
	return m, nil
}

func (s *serviceImpl) ListAirplaneTypes(ctx context.Context, page database.Page) ([]models.AirplaneType, int, error) {
	return s.store.ListAirplaneTypes(ctx, page)
}

func (s *serviceImpl) GetAirplaneType(ctx context.Context, id uuid.UUID) (*models.AirplaneType, error) {
	return s.store.GetAirplaneType(ctx, id)
}

func (s *serviceImpl) CreateAirplaneType(ctx context.Context, req *models.AirplaneTypeRequest) (*models.AirplaneType, error) {
	t := &models.AirplaneType{
		ID:      uuid.New(),
		Name:    req.Name,
		Code:    req.Code,
		Purpose: req.Purpose,
	}
	if err := s.store.CreateAirplaneType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *serviceImpl) UpdateAirplaneType(ctx context.Context, id uuid.UUID, req *models.AirplaneTypeRequest) (*models.AirplaneType, error) {
	t := &models.AirplaneType{
		ID:      id,
		Name:    req.Name,
		Code:    req.Code,
		Purpose: req.Purpose,
	}
	if err := s.store.UpdateAirplaneType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *serviceImpl) DeleteAirplaneType(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteAirplaneType(ctx, id)
}
