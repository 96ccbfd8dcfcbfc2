package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// AirplaneFilter narrows airplane listings. Name, Manufacturer and Type match
// case-insensitive substrings; Years is an exact-match set against
// year_of_manufacture.
type AirplaneFilter struct {
	Name         string
	Years        []int
	Manufacturer string
	Type         string
}

// ListAirplanes returns a page of airplanes ordered by year of manufacture,
// with resolved names and derived capacity figures.
func (r *Repository) ListAirplanes(ctx context.Context, filter AirplaneFilter, page Page) ([]models.AirplaneList, int, error) {
	where, args := buildAirplaneFilter(filter)

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.type_id
		JOIN manufacturers m ON m.id = a.manufacturer_id` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count airplanes: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.name, t.name, t.code, m.name,
		       a.rows, a.seats_in_row, a.pilots_capacity, a.personal_capacity,
		       a.year_of_manufacture, a.fuel_capacity_l, a.cargo_capacity_kg,
		       a.max_speed_kmh, a.max_distance_km, a.image,
		       (SELECT COUNT(*) FROM flights f WHERE f.airplane_id = a.id)
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.type_id
		JOIN manufacturers m ON m.id = a.manufacturer_id%s
		ORDER BY a.year_of_manufacture ASC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, page.limit(), page.offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query airplanes: %w", err)
	}
	defer rows.Close()

	var airplanes []models.AirplaneList
	for rows.Next() {
		item, err := scanAirplaneList(rows)
		if err != nil {
			return nil, 0, err
		}
		airplanes = append(airplanes, *item)
	}

	return airplanes, total, nil
}

func scanAirplaneList(rows pgx.Rows) (*models.AirplaneList, error) {
	var (
		item             models.AirplaneList
		typeName, code   string
		rowCount, seats  *int
		personalCapacity int
	)
	err := rows.Scan(
		&item.ID, &item.Name, &typeName, &code, &item.Manufacturer,
		&rowCount, &seats, &item.PilotsCapacity, &personalCapacity,
		&item.YearOfManufacture, &item.FuelCapacityL, &item.CargoCapacityKg,
		&item.MaxSpeedKmh, &item.MaxDistanceKm, &item.Image, &item.Flights,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan airplane: %w", err)
	}

	item.Type = fmt.Sprintf("%s (%s)", typeName, code)
	plane := models.Airplane{
		Rows:             rowCount,
		SeatsInRow:       seats,
		PilotsCapacity:   item.PilotsCapacity,
		PersonalCapacity: personalCapacity,
	}
	item.CrewCapacity = plane.CrewCapacity()
	item.SeatsTotal = plane.SeatsTotal()
	return &item, nil
}

func buildAirplaneFilter(filter AirplaneFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		clauses = append(clauses, fmt.Sprintf("a.name ILIKE $%d", len(args)))
	}
	if len(filter.Years) > 0 {
		args = append(args, filter.Years)
		clauses = append(clauses, fmt.Sprintf("a.year_of_manufacture = ANY($%d)", len(args)))
	}
	if filter.Manufacturer != "" {
		args = append(args, "%"+filter.Manufacturer+"%")
		clauses = append(clauses, fmt.Sprintf("m.name ILIKE $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, "%"+filter.Type+"%")
		clauses = append(clauses, fmt.Sprintf("t.name ILIKE $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// GetAirplane returns the raw airplane record. The booking rules run against
// this representation.
func (r *Repository) GetAirplane(ctx context.Context, id uuid.UUID) (*models.Airplane, error) {
	var a models.Airplane
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, type_id, manufacturer_id, rows, seats_in_row,
		       pilots_capacity, personal_capacity, year_of_manufacture,
		       fuel_capacity_l, cargo_capacity_kg, max_speed_kmh, max_distance_km, image
		FROM airplanes
		WHERE id = $1
	`, id).Scan(
		&a.ID, &a.Name, &a.TypeID, &a.ManufacturerID, &a.Rows, &a.SeatsInRow,
		&a.PilotsCapacity, &a.PersonalCapacity, &a.YearOfManufacture,
		&a.FuelCapacityL, &a.CargoCapacityKg, &a.MaxSpeedKmh, &a.MaxDistanceKm, &a.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get airplane: %w", err)
	}

	return &a, nil
}

// ListAirplaneFlights returns the flights assigned to an airplane with their
// routes, for nesting under the airplane detail.
func (r *Repository) ListAirplaneFlights(ctx context.Context, airplaneID uuid.UUID) ([]models.AirplaneFlight, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT f.id, f.departure_time, f.arrival_time, rt.id, rt.distance,
		       src.id, src.name, src.city, src.image, src.open_year, src.created_at,
		       dst.id, dst.name, dst.city, dst.image, dst.open_year, dst.created_at
		FROM flights f
		JOIN routes rt ON rt.id = f.route_id
		JOIN airports src ON src.id = rt.source_id
		JOIN airports dst ON dst.id = rt.destination_id
		WHERE f.airplane_id = $1
		ORDER BY f.departure_time ASC
	`, airplaneID)
	if err != nil {
		return nil, fmt.Errorf("failed to query airplane flights: %w", err)
	}
	defer rows.Close()

	var flights []models.AirplaneFlight
	for rows.Next() {
		var f models.AirplaneFlight
		err := rows.Scan(
			&f.ID, &f.DepartureTime, &f.ArrivalTime, &f.Route.ID, &f.Route.Distance,
			&f.Route.Source.ID, &f.Route.Source.Name, &f.Route.Source.City, &f.Route.Source.Image, &f.Route.Source.OpenYear, &f.Route.Source.CreatedAt,
			&f.Route.Destination.ID, &f.Route.Destination.Name, &f.Route.Destination.City, &f.Route.Destination.Image, &f.Route.Destination.OpenYear, &f.Route.Destination.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan airplane flight: %w", err)
		}
		flights = append(flights, f)
	}

	return flights, nil
}

// CreateAirplane inserts a new airplane.
func (r *Repository) CreateAirplane(ctx context.Context, a *models.Airplane) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO airplanes (
			id, name, type_id, manufacturer_id, rows, seats_in_row,
			pilots_capacity, personal_capacity, year_of_manufacture,
			fuel_capacity_l, cargo_capacity_kg, max_speed_kmh, max_distance_km, image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, a.ID, a.Name, a.TypeID, a.ManufacturerID, a.Rows, a.SeatsInRow,
		a.PilotsCapacity, a.PersonalCapacity, a.YearOfManufacture,
		a.FuelCapacityL, a.CargoCapacityKg, a.MaxSpeedKmh, a.MaxDistanceKm, a.Image)
	if err != nil {
		return translateWriteError(err)
	}

	return nil
}

// UpdateAirplane overwrites the mutable fields of an airplane.
func (r *Repository) UpdateAirplane(ctx context.Context, a *models.Airplane) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE airplanes SET
			name = $1, type_id = $2, manufacturer_id = $3, rows = $4, seats_in_row = $5,
			pilots_capacity = $6, personal_capacity = $7, year_of_manufacture = $8,
			fuel_capacity_l = $9, cargo_capacity_kg = $10, max_speed_kmh = $11, max_distance_km = $12
		WHERE id = $13
	`, a.Name, a.TypeID, a.ManufacturerID, a.Rows, a.SeatsInRow,
		a.PilotsCapacity, a.PersonalCapacity, a.YearOfManufacture,
		a.FuelCapacityL, a.CargoCapacityKg, a.MaxSpeedKmh, a.MaxDistanceKm, a.ID)
	if err != nil {
		return translateWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAirplaneImage stores the uploaded image URL for an airplane.
func (r *Repository) SetAirplaneImage(ctx context.Context, id uuid.UUID, url string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE airplanes SET image = $1 WHERE id = $2`, url, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAirplane removes an airplane. Flights referencing it block the
// delete.
func (r *Repository) DeleteAirplane(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM airplanes WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
