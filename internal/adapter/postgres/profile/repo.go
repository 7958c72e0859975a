// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/closetmate/closetmate/internal/adapter/postgres"
	"github.com/closetmate/closetmate/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO profiles (id, name, is_owner, created_at)
VALUES ($1, $2, $3, $4)`

const getByIDSQL = `
SELECT id, name, is_owner, created_at
FROM profiles
WHERE id = $1`

const listSQL = `
SELECT id, name, is_owner, created_at
FROM profiles
ORDER BY created_at ASC`

const deleteSQL = `
DELETE FROM profiles WHERE id = $1`

// Create inserts a new profile. Duplicate names (case-insensitive) map to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p domain.Profile) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL, p.ID, p.Name, p.IsOwner, p.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "profile", p.ID)
	}
	return nil
}

// GetByID returns a profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Profile
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(&p.ID, &p.Name, &p.IsOwner, &p.CreatedAt)
	if err != nil {
		return domain.Profile{}, postgres.MapError(err, "profile", id)
	}
	return p, nil
}

// List returns all profiles, oldest first.
func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Profile, error) {
		var p domain.Profile
		err := row.Scan(&p.ID, &p.Name, &p.IsOwner, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan profiles: %w", err)
	}
	return profiles, nil
}

// Delete removes a profile and, via cascade, its wardrobe, favorites and
// history. Missing profiles map to domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "profile", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
