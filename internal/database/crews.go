package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListCrew returns a page of crew members ordered by name.
func (r *Repository) ListCrew(ctx context.Context, page Page) ([]models.Crew, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM crews`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count crew: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, crew_type, position
		FROM crews
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`, page.limit(), page.offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query crew: %w", err)
	}
	defer rows.Close()

	var crew []models.Crew
	for rows.Next() {
		var c models.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.CrewType, &c.Position); err != nil {
			return nil, 0, fmt.Errorf("failed to scan crew member: %w", err)
		}
		crew = append(crew, c)
	}

	return crew, total, nil
}

// GetCrew returns a crew member by ID
func (r *Repository) GetCrew(ctx context.Context, id uuid.UUID) (*models.Crew, error) {
	var c models.Crew
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, crew_type, position FROM crews WHERE id = $1
	`, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.CrewType, &c.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}

	return &c, nil
}

// GetCrewByIDs resolves a set of crew ids, preserving the requested order.
// A missing id yields ErrNotFound.
func (r *Repository) GetCrewByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Crew, error) {
	if len(ids) == 0 {
		return []models.Crew{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, crew_type, position
		FROM crews
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query crew members: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]models.Crew, len(ids))
	for rows.Next() {
		var c models.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.CrewType, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		byID[c.ID] = c
	}

	crew := make([]models.Crew, 0, len(ids))
	for _, id := range ids {
		member, ok := byID[id]
		if !ok {
			return nil, ErrNotFound
		}
		crew = append(crew, member)
	}

	return crew, nil
}

// CreateCrew inserts a new crew member.
func (r *Repository) CreateCrew(ctx context.Context, c *models.Crew) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO crews (id, first_name, last_name, crew_type, position)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.FirstName, c.LastName, c.CrewType, c.Position)
	if err != nil {
		return translateError(err)
	}

	return nil
}

// UpdateCrew overwrites a crew member.
func (r *Repository) UpdateCrew(ctx context.Context, c *models.Crew) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE crews SET first_name = $1, last_name = $2, crew_type = $3, position = $4 WHERE id = $5
	`, c.FirstName, c.LastName, c.CrewType, c.Position, c.ID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCrew removes a crew member and their flight assignments.
func (r *Repository) DeleteCrew(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
