package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// CreateOrder persists an order and all of its tickets as one transaction.
// Either everything becomes visible together or nothing does: a failing
// insert (including a seat already taken at commit) rolls back the order row
// as well. Tickets are returned in the order they were supplied.
func (r *Repository) CreateOrder(ctx context.Context, userID uuid.UUID, tickets []models.Ticket) (*models.OrderDetail, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	order := models.Order{ID: uuid.New(), UserID: userID}
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (id, user_id) VALUES ($1, $2)
		RETURNING created_at
	`, order.ID, order.UserID).Scan(&order.CreatedAt)
	if err != nil {
		return nil, translateWriteError(err)
	}

	detail := &models.OrderDetail{
		ID:        order.ID,
		UserID:    order.UserID,
		CreatedAt: order.CreatedAt,
		Tickets:   make([]models.TicketDetail, 0, len(tickets)),
	}

	for _, ticket := range tickets {
		ticket.ID = uuid.New()
		ticket.OrderID = order.ID

		err = tx.QueryRow(ctx, `
			INSERT INTO tickets (id, row, seat, order_id, flight_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING booked_at
		`, ticket.ID, ticket.Row, ticket.Seat, ticket.OrderID, ticket.FlightID).Scan(&ticket.BookedAt)
		if err != nil {
			return nil, translateWriteError(err)
		}

		flight, err := r.getTicketFlight(ctx, tx, ticket.FlightID)
		if err != nil {
			return nil, err
		}

		detail.Tickets = append(detail.Tickets, models.TicketDetail{
			ID:       ticket.ID,
			Row:      ticket.Row,
			Seat:     ticket.Seat,
			Flight:   *flight,
			BookedAt: ticket.BookedAt,
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, translateError(err)
	}

	return detail, nil
}

const ticketFlightQuery = `
	SELECT f.id, src.name || ' - ' || dst.name, a.name, f.departure_time, f.arrival_time
	FROM flights f
	JOIN routes rt ON rt.id = f.route_id
	JOIN airports src ON src.id = rt.source_id
	JOIN airports dst ON dst.id = rt.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	WHERE f.id = $1
`

func (r *Repository) getTicketFlight(ctx context.Context, tx pgx.Tx, flightID uuid.UUID) (*models.TicketFlight, error) {
	var flight models.TicketFlight

	row := tx.QueryRow(ctx, ticketFlightQuery, flightID)
	err := row.Scan(&flight.ID, &flight.Route, &flight.Airplane, &flight.DepartureTime, &flight.ArrivalTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket flight: %w", err)
	}

	return &flight, nil
}

// ListOrders returns a page of orders, newest first. A nil userID lists all
// orders; otherwise only that user's.
func (r *Repository) ListOrders(ctx context.Context, userID *uuid.UUID, page Page) ([]models.OrderDetail, int, error) {
	where := ""
	countArgs := []interface{}{}
	if userID != nil {
		where = " WHERE user_id = $1"
		countArgs = append(countArgs, *userID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	args := append(countArgs, page.limit(), page.offset())
	query := fmt.Sprintf(`
		SELECT id, user_id, created_at
		FROM orders%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(countArgs)+1, len(countArgs)+2)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.OrderDetail
	for rows.Next() {
		var o models.OrderDetail
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	for i := range orders {
		tickets, err := r.listOrderTickets(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Tickets = tickets
	}

	return orders, total, nil
}

// GetOrder returns an order with its tickets, most recently booked first.
func (r *Repository) GetOrder(ctx context.Context, id uuid.UUID) (*models.OrderDetail, error) {
	var o models.OrderDetail
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, created_at FROM orders WHERE id = $1
	`, id).Scan(&o.ID, &o.UserID, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	tickets, err := r.listOrderTickets(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Tickets = tickets

	return &o, nil
}

func (r *Repository) listOrderTickets(ctx context.Context, orderID uuid.UUID) ([]models.TicketDetail, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.row, t.seat, t.booked_at,
		       f.id, src.name || ' - ' || dst.name, a.name, f.departure_time, f.arrival_time
		FROM tickets t
		JOIN flights f ON f.id = t.flight_id
		JOIN routes rt ON rt.id = f.route_id
		JOIN airports src ON src.id = rt.source_id
		JOIN airports dst ON dst.id = rt.destination_id
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE t.order_id = $1
		ORDER BY t.booked_at DESC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order tickets: %w", err)
	}
	defer rows.Close()

	tickets := []models.TicketDetail{}
	for rows.Next() {
		var t models.TicketDetail
		err := rows.Scan(
			&t.ID, &t.Row, &t.Seat, &t.BookedAt,
			&t.Flight.ID, &t.Flight.Route, &t.Flight.Airplane, &t.Flight.DepartureTime, &t.Flight.ArrivalTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

// GetTicket returns one ticket with its flight summary and the id of the
// user who owns the order it belongs to.
func (r *Repository) GetTicket(ctx context.Context, id uuid.UUID) (*models.TicketDetail, uuid.UUID, error) {
	var (
		t       models.TicketDetail
		ownerID uuid.UUID
	)
	err := r.pool.QueryRow(ctx, `
		SELECT t.id, t.row, t.seat, t.booked_at, o.user_id,
		       f.id, src.name || ' - ' || dst.name, a.name, f.departure_time, f.arrival_time
		FROM tickets t
		JOIN orders o ON o.id = t.order_id
		JOIN flights f ON f.id = t.flight_id
		JOIN routes rt ON rt.id = f.route_id
		JOIN airports src ON src.id = rt.source_id
		JOIN airports dst ON dst.id = rt.destination_id
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE t.id = $1
	`, id).Scan(
		&t.ID, &t.Row, &t.Seat, &t.BookedAt, &ownerID,
		&t.Flight.ID, &t.Flight.Route, &t.Flight.Airplane, &t.Flight.DepartureTime, &t.Flight.ArrivalTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, uuid.Nil, ErrNotFound
		}
		return nil, uuid.Nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &t, ownerID, nil
}
