package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// CreateUser inserts a new user account. The password must already be
// hashed.
func (r *Repository) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, username, password, first_name, last_name, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, u.ID, u.Email, u.Username, u.Password, u.FirstName, u.LastName, u.IsStaff, u.IsSuperuser).Scan(&u.CreatedAt)
	if err != nil {
		return translateError(err)
	}

	return nil
}

// GetUser returns a user by ID
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `
		SELECT id, email, username, password, first_name, last_name, is_staff, is_superuser, created_at
		FROM users WHERE id = $1
	`, id))
}

// GetUserByEmail returns a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `
		SELECT id, email, username, password, first_name, last_name, is_staff, is_superuser, created_at
		FROM users WHERE email = $1
	`, email))
}

func (r *Repository) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.Password,
		&u.FirstName, &u.LastName, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
