package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/media"
	"github.com/partnersinbahamas/airport-api/internal/models"
)

func (s *serviceImpl) ListAirplanes(ctx context.Context, filter database.AirplaneFilter, page database.Page) ([]models.AirplaneList, int, error) {
	return s.store.ListAirplanes(ctx, filter, page)
}

// GetAirplane assembles the detail view: the raw record plus its type label,
// manufacturer and flight history.
func (s *serviceImpl) GetAirplane(ctx context.Context, id uuid.UUID) (*models.AirplaneDetail, error) {
	airplane, err := s.store.GetAirplane(ctx, id)
	if err != nil {
		return nil, err
	}

	airplaneType, err := s.store.GetAirplaneType(ctx, airplane.TypeID)
	if err != nil {
		return nil, err
	}

	manufacturer, err := s.store.GetManufacturer(ctx, airplane.ManufacturerID)
	if err != nil {
		return nil, err
	}

	flights, err := s.store.ListAirplaneFlights(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.AirplaneDetail{
		AirplaneList: models.AirplaneList{
			ID:                airplane.ID,
			Name:              airplane.Name,
			Type:              fmt.Sprintf("%s (%s)", airplaneType.Name, airplaneType.Code),
			Manufacturer:      manufacturer.Name,
			CrewCapacity:      airplane.CrewCapacity(),
			SeatsTotal:        airplane.SeatsTotal(),
			PilotsCapacity:    airplane.PilotsCapacity,
			YearOfManufacture: airplane.YearOfManufacture,
			FuelCapacityL:     airplane.FuelCapacityL,
			CargoCapacityKg:   airplane.CargoCapacityKg,
			MaxSpeedKmh:       airplane.MaxSpeedKmh,
			MaxDistanceKm:     airplane.MaxDistanceKm,
			Flights:           len(flights),
			Image:             airplane.Image,
		},
		Manufacturer:        *manufacturer,
		PassengerSeatsTotal: airplane.PassengerSeatsTotal(),
		Rows:                airplane.Rows,
		SeatsInRow:          airplane.SeatsInRow,
		FlightList:          flights,
	}, nil
}

// GetAirplaneRecord returns the stored airplane with its raw type and
// manufacturer ids, as a partial update needs them to fill omitted fields.
func (s *serviceImpl) GetAirplaneRecord(ctx context.Context, id uuid.UUID) (*models.Airplane, error) {
	return s.store.GetAirplane(ctx, id)
}

func (s *serviceImpl) CreateAirplane(ctx context.Context, req *models.AirplaneRequest) (*models.Airplane, error) {
	airplane := airplaneFromRequest(uuid.New(), req)
	if err := s.store.CreateAirplane(ctx, airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

func (s *serviceImpl) UpdateAirplane(ctx context.Context, id uuid.UUID, req *models.AirplaneRequest) (*models.Airplane, error) {
	current, err := s.store.GetAirplane(ctx, id)
	if err != nil {
		return nil, err
	}

	airplane := airplaneFromRequest(id, req)
	airplane.Image = current.Image

	if err := s.store.UpdateAirplane(ctx, airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

func (s *serviceImpl) UploadAirplaneImage(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*models.Airplane, error) {
	airplane, err := s.store.GetAirplane(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.media.Save(media.KindAirplane, airplane.Name, filename, data)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetAirplaneImage(ctx, id, url); err != nil {
		return nil, err
	}
	airplane.Image = &url
	return airplane, nil
}

func (s *serviceImpl) DeleteAirplane(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteAirplane(ctx, id)
}

func airplaneFromRequest(id uuid.UUID, req *models.AirplaneRequest) *models.Airplane {
	return &models.Airplane{
		ID:                id,
		Name:              req.Name,
		TypeID:            req.Type,
		ManufacturerID:    req.Manufacturer,
		Rows:              req.Rows,
		SeatsInRow:        req.SeatsInRow,
		PilotsCapacity:    req.PilotsCapacity,
		PersonalCapacity:  req.PersonalCapacity,
		YearOfManufacture: req.YearOfManufacture,
		FuelCapacityL:     req.FuelCapacityL,
		CargoCapacityKg:   req.CargoCapacityKg,
		MaxSpeedKmh:       req.MaxSpeedKmh,
		MaxDistanceKm:     req.MaxDistanceKm,
	}
}
