package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListAirplaneTypes returns a page of airplane types ordered by code.
func (r *Repository) ListAirplaneTypes(ctx context.Context, page Page) ([]models.AirplaneType, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM airplane_types`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count airplane types: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, code, purpose
		FROM airplane_types
		ORDER BY code ASC
		LIMIT $1 OFFSET $2
	`, page.limit(), page.offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query airplane types: %w", err)
	}
	defer rows.Close()

	var types []models.AirplaneType
	for rows.Next() {
		var t models.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name, &t.Code, &t.Purpose); err != nil {
			return nil, 0, fmt.Errorf("failed to scan airplane type: %w", err)
		}
		types = append(types, t)
	}

	return types, total, nil
}

// GetAirplaneType returns an airplane type by ID
func (r *Repository) GetAirplaneType(ctx context.Context, id uuid.UUID) (*models.AirplaneType, error) {
	var t models.AirplaneType
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, code, purpose FROM airplane_types WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Code, &t.Purpose)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get airplane type: %w", err)
	}

	return &t, nil
}

// CreateAirplaneType inserts a new airplane type.
func (r *Repository) CreateAirplaneType(ctx context.Context, t *models.AirplaneType) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO airplane_types (id, name, code, purpose)
		VALUES ($1, $2, $3, $4)
	`, t.ID, t.Name, t.Code, t.Purpose)
	if err != nil {
		return translateError(err)
	}

	return nil
}

// UpdateAirplaneType overwrites an airplane type.
func (r *Repository) UpdateAirplaneType(ctx context.Context, t *models.AirplaneType) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE airplane_types SET name = $1, code = $2, purpose = $3 WHERE id = $4
	`, t.Name, t.Code, t.Purpose, t.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAirplaneType removes an airplane type. Airplanes of this type block
// the delete.
func (r *Repository) DeleteAirplaneType(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM airplane_types WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
