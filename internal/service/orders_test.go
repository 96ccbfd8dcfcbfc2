package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/rules"
	"github.com/partnersinbahamas/airport-api/internal/service"
	"github.com/partnersinbahamas/airport-api/internal/service/mocks"
)

type capturePublisher struct {
	events []service.BookingEvent
}

func (p *capturePublisher) PublishBooking(event service.BookingEvent) {
	p.events = append(p.events, event)
}

func intPtr(v int) *int { return &v }

func seatedAirplane(rows, seats int) *models.Airplane {
	return &models.Airplane{
		ID:               uuid.New(),
		Name:             "Skyliner",
		Rows:             intPtr(rows),
		SeatsInRow:       intPtr(seats),
		PilotsCapacity:   2,
		PersonalCapacity: 2,
	}
}

func TestCreateOrderEmptyTickets(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	_, err := svc.CreateOrder(context.Background(), service.Identity{UserID: uuid.New()}, &models.CreateOrderRequest{})

	var vErr *rules.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "tickets", vErr.Field)
	assert.Equal(t, "This list may not be empty.", vErr.Message)
	store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderSeatOutOfRange(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	flightID := uuid.New()
	store.On("GetFlightAirplane", mock.Anything, flightID).Return(seatedAirplane(10, 6), nil)

	_, err := svc.CreateOrder(context.Background(), service.Identity{UserID: uuid.New()}, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{Row: 11, Seat: 1, Flight: flightID}},
	})

	var vErr *rules.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "row", vErr.Field)
	assert.Equal(t, "Invalid row number. Row number must be between 1 and 10.", vErr.Message)
	store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderAirplaneWithoutSeats(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	flightID := uuid.New()
	airplane := &models.Airplane{ID: uuid.New(), Name: "Cargo Hauler", PilotsCapacity: 2}
	store.On("GetFlightAirplane", mock.Anything, flightID).Return(airplane, nil)

	_, err := svc.CreateOrder(context.Background(), service.Identity{UserID: uuid.New()}, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{Row: 1, Seat: 1, Flight: flightID}},
	})

	var vErr *rules.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "flight", vErr.Field)
	assert.Equal(t, "Ticket cannot be booked for Cargo Hauler.", vErr.Message)
}

func TestCreateOrderUnknownFlight(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	flightID := uuid.New()
	store.On("GetFlightAirplane", mock.Anything, flightID).Return(nil, database.ErrNotFound)

	_, err := svc.CreateOrder(context.Background(), service.Identity{UserID: uuid.New()}, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{Row: 1, Seat: 1, Flight: flightID}},
	})

	var vErr *rules.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "flight", vErr.Field)
}

func TestCreateOrderPublishesEvents(t *testing.T) {
	store := new(mocks.MockStore)
	publisher := new(capturePublisher)
	svc := service.New(store, nil, nil, publisher)

	userID := uuid.New()
	flightID := uuid.New()
	orderID := uuid.New()

	store.On("GetFlightAirplane", mock.Anything, flightID).Return(seatedAirplane(10, 6), nil)
	store.On("CreateOrder", mock.Anything, userID, mock.Anything).Return(&models.OrderDetail{
		ID:     orderID,
		UserID: userID,
		Tickets: []models.TicketDetail{
			{Row: 1, Seat: 1, Flight: models.TicketFlight{ID: flightID}},
			{Row: 1, Seat: 2, Flight: models.TicketFlight{ID: flightID}},
		},
	}, nil)

	order, err := svc.CreateOrder(context.Background(), service.Identity{UserID: userID}, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{
			{Row: 1, Seat: 1, Flight: flightID},
			{Row: 1, Seat: 2, Flight: flightID},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, orderID, order.ID)
	require.Len(t, publisher.events, 2)
	assert.Equal(t, flightID, publisher.events[0].FlightID)
	assert.Equal(t, orderID, publisher.events[0].OrderID)
	assert.Equal(t, 2, publisher.events[1].Seat)
	store.AssertExpectations(t)
}

func TestCreateOrderSeatTakenAtCommit(t *testing.T) {
	store := new(mocks.MockStore)
	publisher := new(capturePublisher)
	svc := service.New(store, nil, nil, publisher)

	userID := uuid.New()
	flightID := uuid.New()

	store.On("GetFlightAirplane", mock.Anything, flightID).Return(seatedAirplane(10, 6), nil)
	store.On("CreateOrder", mock.Anything, userID, mock.Anything).Return(nil, database.ErrSeatTaken)

	_, err := svc.CreateOrder(context.Background(), service.Identity{UserID: userID}, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{Row: 1, Seat: 1, Flight: flightID}},
	})

	assert.ErrorIs(t, err, database.ErrSeatTaken)
	assert.Empty(t, publisher.events)
}

func TestListOrdersScopedToUser(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	userID := uuid.New()
	store.On("ListOrders", mock.Anything, &userID, mock.Anything).Return([]models.OrderDetail{}, 0, nil)

	_, _, err := svc.ListOrders(context.Background(), service.Identity{UserID: userID}, database.Page{})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestListOrdersStaffSeesAll(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	store.On("ListOrders", mock.Anything, (*uuid.UUID)(nil), mock.Anything).Return([]models.OrderDetail{}, 0, nil)

	_, _, err := svc.ListOrders(context.Background(), service.Identity{UserID: uuid.New(), IsStaff: true}, database.Page{})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestGetOrderOwnership(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	ownerID := uuid.New()
	orderID := uuid.New()
	store.On("GetOrder", mock.Anything, orderID).Return(&models.OrderDetail{ID: orderID, UserID: ownerID}, nil)

	_, err := svc.GetOrder(context.Background(), service.Identity{UserID: uuid.New()}, orderID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	order, err := svc.GetOrder(context.Background(), service.Identity{UserID: ownerID}, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)

	_, err = svc.GetOrder(context.Background(), service.Identity{UserID: uuid.New(), IsStaff: true}, orderID)
	assert.NoError(t, err)
}

func TestGetTicketOwnership(t *testing.T) {
	store := new(mocks.MockStore)
	svc := service.New(store, nil, nil, nil)

	ownerID := uuid.New()
	ticketID := uuid.New()
	store.On("GetTicket", mock.Anything, ticketID).Return(&models.TicketDetail{ID: ticketID}, ownerID, nil)

	_, err := svc.GetTicket(context.Background(), service.Identity{UserID: uuid.New()}, ticketID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	ticket, err := svc.GetTicket(context.Background(), service.Identity{UserID: ownerID}, ticketID)
	require.NoError(t, err)
	assert.Equal(t, ticketID, ticket.ID)
}
