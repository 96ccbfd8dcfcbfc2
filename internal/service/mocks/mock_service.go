// Package mocks provides hand-written testify mocks for the service layer.
package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/service"
)

// MockService is a mock implementation of service.Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) ListAirports(ctx context.Context, filter database.AirportFilter, page database.Page) ([]models.Airport, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Airport), args.Int(1), args.Error(2)
}

func (m *MockService) GetAirport(ctx context.Context, id uuid.UUID) (*models.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airport), args.Error(1)
}

func (m *MockService) CreateAirport(ctx context.Context, req *models.AirportRequest) (*models.Airport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airport), args.Error(1)
}

func (m *MockService) UpdateAirport(ctx context.Context, id uuid.UUID, req *models.AirportRequest) (*models.Airport, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airport), args.Error(1)
}

func (m *MockService) UploadAirportImage(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*models.Airport, error) {
	args := m.Called(ctx, id, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airport), args.Error(1)
}

func (m *MockService) DeleteAirport(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ListRoutes(ctx context.Context, page database.Page) ([]models.RouteList, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.RouteList), args.Int(1), args.Error(2)
}

func (m *MockService) GetRoute(ctx context.Context, id uuid.UUID) (*models.RouteDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RouteDetail), args.Error(1)
}

func (m *MockService) CreateRoute(ctx context.Context, req *models.RouteRequest) (*models.RouteDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RouteDetail), args.Error(1)
}

func (m *MockService) UpdateRoute(ctx context.Context, id uuid.UUID, req *models.RouteRequest) (*models.RouteDetail, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RouteDetail), args.Error(1)
}

func (m *MockService) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ListManufacturers(ctx context.Context, page database.Page) ([]models.ManufacturerList, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.ManufacturerList), args.Int(1), args.Error(2)
}

func (m *MockService) GetManufacturer(ctx context.Context, id uuid.UUID) (*models.ManufacturerDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ManufacturerDetail), args.Error(1)
}

func (m *MockService) CreateManufacturer(ctx context.Context, req *models.ManufacturerRequest) (*models.ManufacturerDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ManufacturerDetail), args.Error(1)
}

func (m *MockService) UpdateManufacturer(ctx context.Context, id uuid.UUID, req *models.ManufacturerRequest) (*models.ManufacturerDetail, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ManufacturerDetail), args.Error(1)
}

func (m *MockService) UploadManufacturerLogo(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*models.Manufacturer, error) {
	args := m.Called(ctx, id, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Manufacturer), args.Error(1)
}

func (m *MockService) ListAirplaneTypes(ctx context.Context, page database.Page) ([]models.AirplaneType, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.AirplaneType), args.Int(1), args.Error(2)
}

func (m *MockService) GetAirplaneType(ctx context.Context, id uuid.UUID) (*models.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AirplaneType), args.Error(1)
}

func (m *MockService) CreateAirplaneType(ctx context.Context, req *models.AirplaneTypeRequest) (*models.AirplaneType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AirplaneType), args.Error(1)
}

func (m *MockService) UpdateAirplaneType(ctx context.Context, id uuid.UUID, req *models.AirplaneTypeRequest) (*models.AirplaneType, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AirplaneType), args.Error(1)
}

func (m *MockService) DeleteAirplaneType(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ListAirplanes(ctx context.Context, filter database.AirplaneFilter, page database.Page) ([]models.AirplaneList, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.AirplaneList), args.Int(1), args.Error(2)
}

func (m *MockService) GetAirplane(ctx context.Context, id uuid.UUID) (*models.AirplaneDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AirplaneDetail), args.Error(1)
}

func (m *MockService) GetAirplaneRecord(ctx context.Context, id uuid.UUID) (*models.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airplane), args.Error(1)
}

func (m *MockService) CreateAirplane(ctx context.Context, req *models.AirplaneRequest) (*models.Airplane, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airplane), args.Error(1)
}

func (m *MockService) UpdateAirplane(ctx context.Context, id uuid.UUID, req *models.AirplaneRequest) (*models.Airplane, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airplane), args.Error(1)
}

func (m *MockService) UploadAirplaneImage(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*models.Airplane, error) {
	args := m.Called(ctx, id, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airplane), args.Error(1)
}

func (m *MockService) DeleteAirplane(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ListCrew(ctx context.Context, page database.Page) ([]models.Crew, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Crew), args.Int(1), args.Error(2)
}

func (m *MockService) GetCrew(ctx context.Context, id uuid.UUID) (*models.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crew), args.Error(1)
}

func (m *MockService) CreateCrew(ctx context.Context, req *models.CrewRequest) (*models.Crew, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crew), args.Error(1)
}

func (m *MockService) UpdateCrew(ctx context.Context, id uuid.UUID, req *models.CrewRequest) (*models.Crew, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crew), args.Error(1)
}

func (m *MockService) DeleteCrew(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ListFlights(ctx context.Context, page database.Page) ([]models.FlightDetail, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.FlightDetail), args.Int(1), args.Error(2)
}

func (m *MockService) GetFlight(ctx context.Context, id uuid.UUID) (*models.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightDetail), args.Error(1)
}

func (m *MockService) CreateFlight(ctx context.Context, req *models.FlightRequest) (*models.FlightDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightDetail), args.Error(1)
}

func (m *MockService) UpdateFlight(ctx context.Context, id uuid.UUID, req *models.FlightRequest) (*models.FlightDetail, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightDetail), args.Error(1)
}

func (m *MockService) DeleteFlight(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) CreateOrder(ctx context.Context, identity service.Identity, req *models.CreateOrderRequest) (*models.OrderDetail, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *MockService) ListOrders(ctx context.Context, identity service.Identity, page database.Page) ([]models.OrderDetail, int, error) {
	args := m.Called(ctx, identity, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.OrderDetail), args.Int(1), args.Error(2)
}

func (m *MockService) GetOrder(ctx context.Context, identity service.Identity, id uuid.UUID) (*models.OrderDetail, error) {
	args := m.Called(ctx, identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *MockService) GetTicket(ctx context.Context, identity service.Identity, id uuid.UUID) (*models.TicketDetail, error) {
	args := m.Called(ctx, identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TicketDetail), args.Error(1)
}

func (m *MockService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenPair, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockService) Refresh(req *models.RefreshRequest) (*models.TokenPair, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
