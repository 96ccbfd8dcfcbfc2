package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListFlights returns a page of flights ordered by ascending departure time,
// fully nested.
func (r *Repository) ListFlights(ctx context.Context, page Page) ([]models.FlightDetail, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM flights`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count flights: %w", err)
	}

	rows, err := r.pool.Query(ctx, flightDetailQuery+`
		ORDER BY f.departure_time ASC
		LIMIT $1 OFFSET $2
	`, page.limit(), page.offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var flights []models.FlightDetail
	for rows.Next() {
		detail, err := scanFlightDetail(rows)
		if err != nil {
			return nil, 0, err
		}
		flights = append(flights, *detail)
	}

	for i := range flights {
		crew, err := r.listFlightCrew(ctx, flights[i].ID)
		if err != nil {
			return nil, 0, err
		}
		flights[i].Crew = crew
	}

	return flights, total, nil
}

const flightDetailQuery = `
	SELECT f.id, f.departure_time, f.arrival_time,
	       rt.id, rt.distance,
	       src.id, src.name, src.city, src.image, src.open_year, src.created_at,
	       dst.id, dst.name, dst.city, dst.image, dst.open_year, dst.created_at,
	       a.id, a.name, m.name, a.pilots_capacity, a.personal_capacity,
	       a.rows, a.seats_in_row, a.image
	FROM flights f
	JOIN routes rt ON rt.id = f.route_id
	JOIN airports src ON src.id = rt.source_id
	JOIN airports dst ON dst.id = rt.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	JOIN manufacturers m ON m.id = a.manufacturer_id
`

func scanFlightDetail(row pgx.Row) (*models.FlightDetail, error) {
	var (
		detail          models.FlightDetail
		rowCount, seats *int
	)
	err := row.Scan(
		&detail.ID, &detail.DepartureTime, &detail.ArrivalTime,
		&detail.Route.ID, &detail.Route.Distance,
		&detail.Route.Source.ID, &detail.Route.Source.Name, &detail.Route.Source.City, &detail.Route.Source.Image, &detail.Route.Source.OpenYear, &detail.Route.Source.CreatedAt,
		&detail.Route.Destination.ID, &detail.Route.Destination.Name, &detail.Route.Destination.City, &detail.Route.Destination.Image, &detail.Route.Destination.OpenYear, &detail.Route.Destination.CreatedAt,
		&detail.Airplane.ID, &detail.Airplane.Name, &detail.Airplane.Manufacturer,
		&detail.Airplane.PilotsCapacity, &detail.Airplane.PersonalCapacity,
		&rowCount, &seats, &detail.Airplane.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan flight: %w", err)
	}

	plane := models.Airplane{Rows: rowCount, SeatsInRow: seats}
	detail.Airplane.PassengerSeats = plane.PassengerSeatsTotal()
	return &detail, nil
}

func (r *Repository) listFlightCrew(ctx context.Context, flightID uuid.UUID) ([]models.FlightCrew, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.first_name, c.last_name, c.crew_type, c.position
		FROM flight_crew fc
		JOIN crews c ON c.id = fc.crew_id
		WHERE fc.flight_id = $1
		ORDER BY c.last_name, c.first_name
	`, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to query flight crew: %w", err)
	}
	defer rows.Close()

	crew := []models.FlightCrew{}
	for rows.Next() {
		var (
			member   models.FlightCrew
			crewType models.CrewType
			position models.CrewPosition
		)
		if err := rows.Scan(&member.ID, &member.FirstName, &member.LastName, &crewType, &position); err != nil {
			return nil, fmt.Errorf("failed to scan flight crew member: %w", err)
		}
		member.CrewType = crewType.Label()
		member.Position = position.Label()
		crew = append(crew, member)
	}

	return crew, nil
}

// GetFlightDetail returns one fully nested flight.
func (r *Repository) GetFlightDetail(ctx context.Context, id uuid.UUID) (*models.FlightDetail, error) {
	detail, err := scanFlightDetail(r.pool.QueryRow(ctx, flightDetailQuery+` WHERE f.id = $1`, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	crew, err := r.listFlightCrew(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Crew = crew

	return detail, nil
}

// GetFlight returns the raw flight record with its crew ids.
func (r *Repository) GetFlight(ctx context.Context, id uuid.UUID) (*models.Flight, error) {
	var f models.Flight
	err := r.pool.QueryRow(ctx, `
		SELECT id, route_id, airplane_id, departure_time, arrival_time
		FROM flights
		WHERE id = $1
	`, id).Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT crew_id FROM flight_crew WHERE flight_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query flight crew ids: %w", err)
	}
	defer rows.Close()

	f.CrewIDs = []uuid.UUID{}
	for rows.Next() {
		var crewID uuid.UUID
		if err := rows.Scan(&crewID); err != nil {
			return nil, fmt.Errorf("failed to scan crew id: %w", err)
		}
		f.CrewIDs = append(f.CrewIDs, crewID)
	}

	return &f, nil
}

// GetFlightAirplane returns the airplane assigned to a flight. Seat checks
// for tickets run against this record.
func (r *Repository) GetFlightAirplane(ctx context.Context, flightID uuid.UUID) (*models.Airplane, error) {
	var a models.Airplane
	err := r.pool.QueryRow(ctx, `
		SELECT a.id, a.name, a.type_id, a.manufacturer_id, a.rows, a.seats_in_row,
		       a.pilots_capacity, a.personal_capacity, a.year_of_manufacture,
		       a.fuel_capacity_l, a.cargo_capacity_kg, a.max_speed_kmh, a.max_distance_km, a.image
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = $1
	`, flightID).Scan(
		&a.ID, &a.Name, &a.TypeID, &a.ManufacturerID, &a.Rows, &a.SeatsInRow,
		&a.PilotsCapacity, &a.PersonalCapacity, &a.YearOfManufacture,
		&a.FuelCapacityL, &a.CargoCapacityKg, &a.MaxSpeedKmh, &a.MaxDistanceKm, &a.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flight airplane: %w", err)
	}

	return &a, nil
}

// CreateFlight inserts a flight and its crew assignments in one transaction.
func (r *Repository) CreateFlight(ctx context.Context, f *models.Flight) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO flights (id, route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4, $5)
	`, f.ID, f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime)
	if err != nil {
		return translateWriteError(err)
	}

	for _, crewID := range f.CrewIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)
		`, f.ID, crewID)
		if err != nil {
			return translateWriteError(err)
		}
	}

	return tx.Commit(ctx)
}

// UpdateFlight overwrites a flight. When replaceCrew is set the crew
// assignments are replaced with f.CrewIDs; otherwise they are left alone
// (partial update without crew data).
func (r *Repository) UpdateFlight(ctx context.Context, f *models.Flight, replaceCrew bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE flights SET route_id = $1, airplane_id = $2, departure_time = $3, arrival_time = $4
		WHERE id = $5
	`, f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime, f.ID)
	if err != nil {
		return translateWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if replaceCrew {
		if _, err := tx.Exec(ctx, `DELETE FROM flight_crew WHERE flight_id = $1`, f.ID); err != nil {
			return fmt.Errorf("failed to clear flight crew: %w", err)
		}
		for _, crewID := range f.CrewIDs {
			_, err = tx.Exec(ctx, `
				INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)
			`, f.ID, crewID)
			if err != nil {
				return translateWriteError(err)
			}
		}
	}

	return tx.Commit(ctx)
}

// DeleteFlight removes a flight. Tickets referencing it block the delete.
func (r *Repository) DeleteFlight(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
