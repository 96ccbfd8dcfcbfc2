package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/models"
)

// MockStore is a mock implementation of service.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListAirports(ctx context.Context, filter database.AirportFilter, page database.Page) ([]models.Airport, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Airport), args.Int(1), args.Error(2)
}

func (m *MockStore) GetAirport(ctx context.Context, id uuid.UUID) (*models.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airport), args.Error(1)
}

func (m *MockStore) CreateAirport(ctx context.Context, airport *models.Airport) error {
	return m.Called(ctx, airport).Error(0)
}

func (m *MockStore) UpdateAirport(ctx context.Context, airport *models.Airport) error {
	return m.Called(ctx, airport).Error(0)
}

func (m *MockStore) SetAirportImage(ctx context.Context, id uuid.UUID, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *MockStore) DeleteAirport(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ListRoutes(ctx context.Context, page database.Page) ([]models.RouteList, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.RouteList), args.Int(1), args.Error(2)
}

func (m *MockStore) GetRoute(ctx context.Context, id uuid.UUID) (*models.RouteDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RouteDetail), args.Error(1)
}

func (m *MockStore) CreateRoute(ctx context.Context, route *models.Route) error {
	return m.Called(ctx, route).Error(0)
}

func (m *MockStore) UpdateRoute(ctx context.Context, route *models.Route) error {
	return m.Called(ctx, route).Error(0)
}

func (m *MockStore) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ListManufacturers(ctx context.Context, page database.Page) ([]models.ManufacturerList, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.ManufacturerList), args.Int(1), args.Error(2)
}

func (m *MockStore) GetManufacturer(ctx context.Context, id uuid.UUID) (*models.Manufacturer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Manufacturer), args.Error(1)
}

func (m *MockStore) ListManufacturerAirplanes(ctx context.Context, manufacturerID uuid.UUID) ([]models.AirplaneList, error) {
	args := m.Called(ctx, manufacturerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AirplaneList), args.Error(1)
}

func (m *MockStore) CreateManufacturer(ctx context.Context, mf *models.Manufacturer) error {
	return m.Called(ctx, mf).Error(0)
}

func (m *MockStore) UpdateManufacturer(ctx context.Context, mf *models.Manufacturer) error {
	return m.Called(ctx, mf).Error(0)
}

func (m *MockStore) SetManufacturerLogo(ctx context.Context, id uuid.UUID, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *MockStore) ListAirplaneTypes(ctx context.Context, page database.Page) ([]models.AirplaneType, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.AirplaneType), args.Int(1), args.Error(2)
}

func (m *MockStore) GetAirplaneType(ctx context.Context, id uuid.UUID) (*models.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AirplaneType), args.Error(1)
}

func (m *MockStore) CreateAirplaneType(ctx context.Context, t *models.AirplaneType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockStore) UpdateAirplaneType(ctx context.Context, t *models.AirplaneType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockStore) DeleteAirplaneType(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ListAirplanes(ctx context.Context, filter database.AirplaneFilter, page database.Page) ([]models.AirplaneList, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.AirplaneList), args.Int(1), args.Error(2)
}

func (m *MockStore) GetAirplane(ctx context.Context, id uuid.UUID) (*models.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airplane), args.Error(1)
}

func (m *MockStore) ListAirplaneFlights(ctx context.Context, airplaneID uuid.UUID) ([]models.AirplaneFlight, error) {
	args := m.Called(ctx, airplaneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AirplaneFlight), args.Error(1)
}

func (m *MockStore) CreateAirplane(ctx context.Context, a *models.Airplane) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockStore) UpdateAirplane(ctx context.Context, a *models.Airplane) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockStore) SetAirplaneImage(ctx context.Context, id uuid.UUID, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *MockStore) DeleteAirplane(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ListCrew(ctx context.Context, page database.Page) ([]models.Crew, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Crew), args.Int(1), args.Error(2)
}

func (m *MockStore) GetCrew(ctx context.Context, id uuid.UUID) (*models.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crew), args.Error(1)
}

func (m *MockStore) GetCrewByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Crew, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Crew), args.Error(1)
}

func (m *MockStore) CreateCrew(ctx context.Context, c *models.Crew) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockStore) UpdateCrew(ctx context.Context, c *models.Crew) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockStore) DeleteCrew(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ListFlights(ctx context.Context, page database.Page) ([]models.FlightDetail, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.FlightDetail), args.Int(1), args.Error(2)
}

func (m *MockStore) GetFlight(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockStore) GetFlightDetail(ctx context.Context, id uuid.UUID) (*models.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightDetail), args.Error(1)
}

func (m *MockStore) GetFlightAirplane(ctx context.Context, flightID uuid.UUID) (*models.Airplane, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airplane), args.Error(1)
}

func (m *MockStore) CreateFlight(ctx context.Context, f *models.Flight) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockStore) UpdateFlight(ctx context.Context, f *models.Flight, replaceCrew bool) error {
	return m.Called(ctx, f, replaceCrew).Error(0)
}

func (m *MockStore) DeleteFlight(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) CreateOrder(ctx context.Context, userID uuid.UUID, tickets []models.Ticket) (*models.OrderDetail, error) {
	args := m.Called(ctx, userID, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *MockStore) ListOrders(ctx context.Context, userID *uuid.UUID, page database.Page) ([]models.OrderDetail, int, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.OrderDetail), args.Int(1), args.Error(2)
}

func (m *MockStore) GetOrder(ctx context.Context, id uuid.UUID) (*models.OrderDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *MockStore) GetTicket(ctx context.Context, id uuid.UUID) (*models.TicketDetail, uuid.UUID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uuid.UUID), args.Error(2)
	}
	return args.Get(0).(*models.TicketDetail), args.Get(1).(uuid.UUID), args.Error(2)
}

func (m *MockStore) CreateUser(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockStore) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
