// Package service implements the application operations on top of the entity
// store, running the booking rules before any write they guard.
package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/partnersinbahamas/airport-api/internal/auth"
	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/media"
	"github.com/partnersinbahamas/airport-api/internal/models"
)

var (
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
)

// Store is the persistence surface the service depends on, implemented by
// database.Repository.
type Store interface {
	ListAirports(ctx context.Context, filter database.AirportFilter, page database.Page) ([]models.Airport, int, error)
	GetAirport(ctx context.Context, id uuid.UUID) (*models.Airport, error)
	CreateAirport(ctx context.Context, airport *models.Airport) error
	UpdateAirport(ctx context.Context, airport *models.Airport) error
	SetAirportImage(ctx context.Context, id uuid.UUID, url string) error
	DeleteAirport(ctx context.Context, id uuid.UUID) error

	ListRoutes(ctx context.Context, page database.Page) ([]models.RouteList, int, error)
	GetRoute(ctx context.Context, id uuid.UUID) (*models.RouteDetail, error)
	CreateRoute(ctx context.Context, route *models.Route) error
	UpdateRoute(ctx context.Context, route *models.Route) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error

	ListManufacturers(ctx context.Context, page database.Page) ([]models.ManufacturerList, int, error)
	GetManufacturer(ctx context.Context, id uuid.UUID) (*models.Manufacturer, error)
	ListManufacturerAirplanes(ctx context.Context, manufacturerID uuid.UUID) ([]models.AirplaneList, error)
	CreateManufacturer(ctx context.Context, m *models.Manufacturer) error
	UpdateManufacturer(ctx context.Context, m *models.Manufacturer) error
	SetManufacturerLogo(ctx context.Context, id uuid.UUID, url string) error

	ListAirplaneTypes(ctx context.Context, page database.Page) ([]models.AirplaneType, int, error)
	GetAirplaneType(ctx context.Context, id uuid.UUID) (*models.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, t *models.AirplaneType) error
	UpdateAirplaneType(ctx context.Context, t *models.AirplaneType) error
	DeleteAirplaneType(ctx context.Context, id uuid.UUID) error

	ListAirplanes(ctx context.Context, filter database.AirplaneFilter, page database.Page) ([]models.AirplaneList, int, error)
	GetAirplane(ctx context.Context, id uuid.UUID) (*models.Airplane, error)
	ListAirplaneFlights(ctx context.Context, airplaneID uuid.UUID) ([]models.AirplaneFlight, error)
	CreateAirplane(ctx context.Context, a *models.Airplane) error
	UpdateAirplane(ctx context.Context, a *models.Airplane) error
	SetAirplaneImage(ctx context.Context, id uuid.UUID, url string) error
	DeleteAirplane(ctx context.Context, id uuid.UUID) error

	ListCrew(ctx context.Context, page database.Page) ([]models.Crew, int, error)
	GetCrew(ctx context.Context, id uuid.UUID) (*models.Crew, error)
	GetCrewByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Crew, error)
	CreateCrew(ctx context.Context, c *models.Crew) error
	UpdateCrew(ctx context.Context, c *models.Crew) error
	DeleteCrew(ctx context.Context, id uuid.UUID) error

	ListFlights(ctx context.Context, page database.Page) ([]models.FlightDetail, int, error)
	GetFlight(ctx context.Context, id uuid.UUID) (*models.Flight, error)
	GetFlightDetail(ctx context.Context, id uuid.UUID) (*models.FlightDetail, error)
	GetFlightAirplane(ctx context.Context, flightID uuid.UUID) (*models.Airplane, error)
	CreateFlight(ctx context.Context, f *models.Flight) error
	UpdateFlight(ctx context.Context, f *models.Flight, replaceCrew bool) error
	DeleteFlight(ctx context.Context, id uuid.UUID) error

	CreateOrder(ctx context.Context, userID uuid.UUID, tickets []models.Ticket) (*models.OrderDetail, error)
	ListOrders(ctx context.Context, userID *uuid.UUID, page database.Page) ([]models.OrderDetail, int, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.OrderDetail, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*models.TicketDetail, uuid.UUID, error)

	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID  uuid.UUID
	Email   string
	IsStaff bool
}

// BookingEvent is published after an order commits, one per ticket.
type BookingEvent struct {
	FlightID uuid.UUID `json:"flight"`
	Row      int       `json:"row"`
	Seat     int       `json:"seat"`
	OrderID  uuid.UUID `json:"order"`
}

// Publisher receives booking events for fan-out to realtime subscribers.
type Publisher interface {
	PublishBooking(event BookingEvent)
}

// Service defines the application operations exposed to the HTTP layer.
type Service interface {
	ListAirports(ctx context.Context, filter database.AirportFilter, page database.Page) ([]models.Airport, int, error)
	GetAirport(ctx context.Context, id uuid.UUID) (*models.Airport, error)
	CreateAirport(ctx context.Context, req *models.AirportRequest) (*models.Airport, error)
	UpdateAirport(ctx context.Context, id uuid.UUID, req *models.AirportRequest) (*models.Airport, error)
	UploadAirportImage(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*models.Airport, error)
	DeleteAirport(ctx context.Context, id uuid.UUID) error

	ListRoutes(ctx context.Context, page database.Page) ([]models.RouteList, int, error)
	GetRoute(ctx context.Context, id uuid.UUID) (*models.RouteDetail, error)
	CreateRoute(ctx context.Context, req *models.RouteRequest) (*models.RouteDetail, error)
	UpdateRoute(ctx context.Context, id uuid.UUID, req *models.RouteRequest) (*models.RouteDetail, error)
	DeleteRoute(ctx context.Context, id uuid.UUID) error

	ListManufacturers(ctx context.Context, page database.Page) ([]models.ManufacturerList, int, error)
	GetManufacturer(ctx context.Context, id uuid.UUID) (*models.ManufacturerDetail, error)
	CreateManufacturer(ctx context.Context, req *models.ManufacturerRequest) (*models.ManufacturerDetail, error)
	UpdateManufacturer(ctx context.Context, id uuid.UUID, req *models.ManufacturerRequest) (*models.ManufacturerDetail, error)
	UploadManufacturerLogo(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*models.Manufacturer, error)

	ListAirplaneTypes(ctx context.Context, page database.Page) ([]models.AirplaneType, int, error)
	GetAirplaneType(ctx context.Context, id uuid.UUID) (*models.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, req *models.AirplaneTypeRequest) (*models.AirplaneType, error)
	UpdateAirplaneType(ctx context.Context, id uuid.UUID, req *models.AirplaneTypeRequest) (*models.AirplaneType, error)
	DeleteAirplaneType(ctx context.Context, id uuid.UUID) error

	ListAirplanes(ctx context.Context, filter database.AirplaneFilter, page database.Page) ([]models.AirplaneList, int, error)
	GetAirplane(ctx context.Context, id uuid.UUID) (*models.AirplaneDetail, error)
	GetAirplaneRecord(ctx context.Context, id uuid.UUID) (*models.Airplane, error)
	CreateAirplane(ctx context.Context, req *models.AirplaneRequest) (*models.Airplane, error)
	UpdateAirplane(ctx context.Context, id uuid.UUID, req *models.AirplaneRequest) (*models.Airplane, error)
	UploadAirplaneImage(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (*models.Airplane, error)
	DeleteAirplane(ctx context.Context, id uuid.UUID) error

	ListCrew(ctx context.Context, page database.Page) ([]models.Crew, int, error)
	GetCrew(ctx context.Context, id uuid.UUID) (*models.Crew, error)
	CreateCrew(ctx context.Context, req *models.CrewRequest) (*models.Crew, error)
	UpdateCrew(ctx context.Context, id uuid.UUID, req *models.CrewRequest) (*models.Crew, error)
	DeleteCrew(ctx context.Context, id uuid.UUID) error

	ListFlights(ctx context.Context, page database.Page) ([]models.FlightDetail, int, error)
	GetFlight(ctx context.Context, id uuid.UUID) (*models.FlightDetail, error)
	CreateFlight(ctx context.Context, req *models.FlightRequest) (*models.FlightDetail, error)
	UpdateFlight(ctx context.Context, id uuid.UUID, req *models.FlightRequest) (*models.FlightDetail, error)
	DeleteFlight(ctx context.Context, id uuid.UUID) error

	CreateOrder(ctx context.Context, identity Identity, req *models.CreateOrderRequest) (*models.OrderDetail, error)
	ListOrders(ctx context.Context, identity Identity, page database.Page) ([]models.OrderDetail, int, error)
	GetOrder(ctx context.Context, identity Identity, id uuid.UUID) (*models.OrderDetail, error)
	GetTicket(ctx context.Context, identity Identity, id uuid.UUID) (*models.TicketDetail, error)

	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenPair, error)
	Refresh(req *models.RefreshRequest) (*models.TokenPair, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// serviceImpl implements Service
type serviceImpl struct {
	store     Store
	tokens    *auth.Manager
	media     *media.Storage
	publisher Publisher
}

// New creates the service. The publisher may be nil when no realtime feed is
// wired.
func New(store Store, tokens *auth.Manager, mediaStorage *media.Storage, publisher Publisher) Service {
	return &serviceImpl{
		store:     store,
		tokens:    tokens,
		media:     mediaStorage,
		publisher: publisher,
	}
}
