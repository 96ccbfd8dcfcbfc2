package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/models"
	"github.com/partnersinbahamas/airport-api/internal/rules"
)

// CreateOrder validates every ticket against its flight's airplane, then
// books the whole order in one transaction. A seat that is taken at commit
// time fails the entire order. Booking events are published only after the
// transaction commits.
func (s *serviceImpl) CreateOrder(ctx context.Context, identity Identity, req *models.CreateOrderRequest) (*models.OrderDetail, error) {
	if len(req.Tickets) == 0 {
		return nil, &rules.ValidationError{Field: "tickets", Message: "This list may not be empty."}
	}

	tickets := make([]models.Ticket, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		airplane, err := s.store.GetFlightAirplane(ctx, t.Flight)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, &rules.ValidationError{Field: "flight", Message: "Flight does not exist."}
			}
			return nil, err
		}

		if err := rules.CheckSeat(t.Row, t.Seat, airplane); err != nil {
			return nil, err
		}

		tickets = append(tickets, models.Ticket{
			Row:      t.Row,
			Seat:     t.Seat,
			FlightID: t.Flight,
		})
	}

	order, err := s.store.CreateOrder(ctx, identity.UserID, tickets)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		for _, ticket := range order.Tickets {
			s.publisher.PublishBooking(BookingEvent{
				FlightID: ticket.Flight.ID,
				Row:      ticket.Row,
				Seat:     ticket.Seat,
				OrderID:  order.ID,
			})
		}
	}

	return order, nil
}

// ListOrders returns the caller's orders. Staff callers see every order.
func (s *serviceImpl) ListOrders(ctx context.Context, identity Identity, page database.Page) ([]models.OrderDetail, int, error) {
	var userID *uuid.UUID
	if !identity.IsStaff {
		userID = &identity.UserID
	}
	return s.store.ListOrders(ctx, userID, page)
}

func (s *serviceImpl) GetOrder(ctx context.Context, identity Identity, id uuid.UUID) (*models.OrderDetail, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != identity.UserID && !identity.IsStaff {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *serviceImpl) GetTicket(ctx context.Context, identity Identity, id uuid.UUID) (*models.TicketDetail, error) {
	ticket, ownerID, err := s.store.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if ownerID != identity.UserID && !identity.IsStaff {
		return nil, ErrForbidden
	}
	return ticket, nil
}
