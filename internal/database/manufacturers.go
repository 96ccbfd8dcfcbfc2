package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListManufacturers returns a page of manufacturers, newest first, each with
// its airplane count.
func (r *Repository) ListManufacturers(ctx context.Context, page Page) ([]models.ManufacturerList, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM manufacturers`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count manufacturers: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.name, m.country, m.founded_year, m.website, m.logo,
		       m.created_at, m.updated_at,
		       (SELECT COUNT(*) FROM airplanes a WHERE a.manufacturer_id = m.id)
		FROM manufacturers m
		ORDER BY m.created_at DESC
		LIMIT $1 OFFSET $2
	`, page.limit(), page.offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query manufacturers: %w", err)
	}
	defer rows.Close()

	var manufacturers []models.ManufacturerList
	for rows.Next() {
		var m models.ManufacturerList
		err := rows.Scan(
			&m.ID, &m.Name, &m.Country, &m.FoundedYear, &m.Website, &m.Logo,
			&m.CreatedAt, &m.UpdatedAt, &m.AirplanesCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan manufacturer: %w", err)
		}
		manufacturers = append(manufacturers, m)
	}

	return manufacturers, total, nil
}

// GetManufacturer returns a manufacturer by ID
func (r *Repository) GetManufacturer(ctx context.Context, id uuid.UUID) (*models.Manufacturer, error) {
	var m models.Manufacturer
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, country, founded_year, website, logo, created_at, updated_at
		FROM manufacturers
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Country, &m.FoundedYear, &m.Website, &m.Logo, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get manufacturer: %w", err)
	}

	return &m, nil
}

// CreateManufacturer inserts a new manufacturer and fills in the generated
// timestamps.
func (r *Repository) CreateManufacturer(ctx context.Context, m *models.Manufacturer) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO manufacturers (id, name, country, founded_year, website, logo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, m.ID, m.Name, m.Country, m.FoundedYear, m.Website, m.Logo).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return translateError(err)
	}

	return nil
}

// UpdateManufacturer overwrites the mutable fields and bumps updated_at.
func (r *Repository) UpdateManufacturer(ctx context.Context, m *models.Manufacturer) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE manufacturers
		SET name = $1, country = $2, founded_year = $3, website = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`, m.Name, m.Country, m.FoundedYear, m.Website, m.ID).Scan(&m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return translateError(err)
	}
	return nil
}

// SetManufacturerLogo stores the uploaded logo URL.
func (r *Repository) SetManufacturerLogo(ctx context.Context, id uuid.UUID, url string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE manufacturers SET logo = $1, updated_at = NOW() WHERE id = $2`, url, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListManufacturerAirplanes returns the airplanes built by a manufacturer,
// for nesting under the manufacturer detail.
func (r *Repository) ListManufacturerAirplanes(ctx context.Context, manufacturerID uuid.UUID) ([]models.AirplaneList, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.name, t.name, t.code, a.pilots_capacity, a.personal_capacity,
		       a.rows, a.seats_in_row, a.year_of_manufacture, a.image
		FROM airplanes a
		JOIN airplane_types t ON t.id = a.type_id
		WHERE a.manufacturer_id = $1
		ORDER BY a.year_of_manufacture ASC
	`, manufacturerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query manufacturer airplanes: %w", err)
	}
	defer rows.Close()

	var airplanes []models.AirplaneList
	for rows.Next() {
		var (
			item             models.AirplaneList
			typeName, code   string
			rowsCount, seats *int
			personal         int
		)
		err := rows.Scan(
			&item.ID, &item.Name, &typeName, &code, &item.PilotsCapacity, &personal,
			&rowsCount, &seats, &item.YearOfManufacture, &item.Image,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan airplane: %w", err)
		}

		item.Type = fmt.Sprintf("%s (%s)", typeName, code)
		plane := models.Airplane{Rows: rowsCount, SeatsInRow: seats, PilotsCapacity: item.PilotsCapacity, PersonalCapacity: personal}
		item.CrewCapacity = plane.CrewCapacity()
		item.SeatsTotal = plane.SeatsTotal()
		airplanes = append(airplanes, item)
	}

	return airplanes, nil
}
