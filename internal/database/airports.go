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

// AirportFilter narrows airport listings. Cities match case-insensitive
// substrings and are combined with OR; Years is an exact-match set.
type AirportFilter struct {
	Cities []string
	Years  []int
}

// ListAirports returns a page of airports, newest first, with the unpaged
// total.
func (r *Repository) ListAirports(ctx context.Context, filter AirportFilter, page Page) ([]models.Airport, int, error) {
	where, args := buildAirportFilter(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM airports" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count airports: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, city, image, open_year, created_at
		FROM airports%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, page.limit(), page.offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query airports: %w", err)
	}
	defer rows.Close()

	var airports []models.Airport
	for rows.Next() {
		var a models.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.Image, &a.OpenYear, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan airport: %w", err)
		}
		airports = append(airports, a)
	}

	return airports, total, nil
}

func buildAirportFilter(filter AirportFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if len(filter.Cities) > 0 {
		var cityClauses []string
		for _, city := range filter.Cities {
			args = append(args, "%"+city+"%")
			cityClauses = append(cityClauses, fmt.Sprintf("city ILIKE $%d", len(args)))
		}
		clauses = append(clauses, "("+strings.Join(cityClauses, " OR ")+")")
	}

	if len(filter.Years) > 0 {
		args = append(args, filter.Years)
		clauses = append(clauses, fmt.Sprintf("open_year = ANY($%d)", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// GetAirport returns an airport by ID
func (r *Repository) GetAirport(ctx context.Context, id uuid.UUID) (*models.Airport, error) {
	var a models.Airport
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, city, image, open_year, created_at
		FROM airports
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.City, &a.Image, &a.OpenYear, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get airport: %w", err)
	}

	return &a, nil
}

// CreateAirport inserts a new airport and fills in the generated fields.
func (r *Repository) CreateAirport(ctx context.Context, airport *models.Airport) error {
	if airport.ID == uuid.Nil {
		airport.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO airports (id, name, city, image, open_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, airport.ID, airport.Name, airport.City, airport.Image, airport.OpenYear).Scan(&airport.CreatedAt)
	if err != nil {
		return translateError(err)
	}

	return nil
}

// UpdateAirport overwrites the mutable fields of an airport.
func (r *Repository) UpdateAirport(ctx context.Context, airport *models.Airport) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE airports SET name = $1, city = $2, open_year = $3 WHERE id = $4
	`, airport.Name, airport.City, airport.OpenYear, airport.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAirportImage stores the uploaded image URL for an airport.
func (r *Repository) SetAirportImage(ctx context.Context, id uuid.UUID, url string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE airports SET image = $1 WHERE id = $2`, url, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAirport removes an airport. Routes referencing it are removed by the
// cascade.
func (r *Repository) DeleteAirport(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
