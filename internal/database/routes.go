package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// ListRoutes returns a page of routes ordered by ascending distance, with
// airport names resolved.
func (r *Repository) ListRoutes(ctx context.Context, page Page) ([]models.RouteList, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM routes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count routes: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT r.id, src.name, dst.name, r.distance
		FROM routes r
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		ORDER BY r.distance ASC
		LIMIT $1 OFFSET $2
	`, page.limit(), page.offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var routes []models.RouteList
	for rows.Next() {
		var route models.RouteList
		if err := rows.Scan(&route.ID, &route.Source, &route.Destination, &route.Distance); err != nil {
			return nil, 0, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, route)
	}

	return routes, total, nil
}

// GetRoute returns a route with both airports nested.
func (r *Repository) GetRoute(ctx context.Context, id uuid.UUID) (*models.RouteDetail, error) {
	var route models.RouteDetail
	err := r.pool.QueryRow(ctx, `
		SELECT r.id, r.distance,
		       src.id, src.name, src.city, src.image, src.open_year, src.created_at,
		       dst.id, dst.name, dst.city, dst.image, dst.open_year, dst.created_at
		FROM routes r
		JOIN airports src ON src.id = r.source_id
		JOIN airports dst ON dst.id = r.destination_id
		WHERE r.id = $1
	`, id).Scan(
		&route.ID, &route.Distance,
		&route.Source.ID, &route.Source.Name, &route.Source.City, &route.Source.Image, &route.Source.OpenYear, &route.Source.CreatedAt,
		&route.Destination.ID, &route.Destination.Name, &route.Destination.City, &route.Destination.Image, &route.Destination.OpenYear, &route.Destination.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return &route, nil
}

// CreateRoute inserts a new route.
func (r *Repository) CreateRoute(ctx context.Context, route *models.Route) error {
	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO routes (id, source_id, destination_id, distance)
		VALUES ($1, $2, $3, $4)
	`, route.ID, route.SourceID, route.DestinationID, route.Distance)
	if err != nil {
		return translateWriteError(err)
	}

	return nil
}

// UpdateRoute overwrites a route's airports and distance.
func (r *Repository) UpdateRoute(ctx context.Context, route *models.Route) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE routes SET source_id = $1, destination_id = $2, distance = $3 WHERE id = $4
	`, route.SourceID, route.DestinationID, route.Distance, route.ID)
	if err != nil {
		return translateWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRoute removes a route. Flights on the route cascade, but a flight
// that still has tickets blocks the delete through the tickets FK.
func (r *Repository) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
