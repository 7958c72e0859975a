// Package item implements the WardrobeItem repository using PostgreSQL.
// Fixed-shape queries use raw SQL; the filtered list is built with squirrel.
package item

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/closetmate/closetmate/internal/adapter/postgres"
	"github.com/closetmate/closetmate/internal/domain"
)

// Repo provides wardrobe item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new wardrobe item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO wardrobe_items (id, profile_id, name, category, image_ref, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const getByIDSQL = `
SELECT id, profile_id, name, category, image_ref, created_at
FROM wardrobe_items
WHERE profile_id = $1 AND id = $2`

const deleteSQL = `
DELETE FROM wardrobe_items WHERE profile_id = $1 AND id = $2`

const countByCategorySQL = `
SELECT category, count(*)
FROM wardrobe_items
WHERE profile_id = $1
GROUP BY category`

// Create inserts a new item. A duplicate name within the profile
// (case-insensitive) maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, item domain.WardrobeItem) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		item.ID, item.ProfileID, item.Name, item.Category, item.ImageRef, item.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "item", item.ID)
	}
	return nil
}

// GetByID returns an item by primary key scoped to the profile.
func (r *Repo) GetByID(ctx context.Context, profileID, itemID uuid.UUID) (domain.WardrobeItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var item domain.WardrobeItem
	err := q.QueryRow(ctx, getByIDSQL, profileID, itemID).
		Scan(&item.ID, &item.ProfileID, &item.Name, &item.Category, &item.ImageRef, &item.CreatedAt)
	if err != nil {
		return domain.WardrobeItem{}, postgres.MapError(err, "item", itemID)
	}
	return item, nil
}

// List returns the profile's catalogue, oldest first, optionally narrowed by
// the filter.
func (r *Repo) List(ctx context.Context, profileID uuid.UUID, filter domain.ItemFilter) ([]domain.WardrobeItem, error) {
	builder := sq.Select("id", "profile_id", "name", "category", "image_ref", "created_at").
		From("wardrobe_items").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": *filter.Category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WardrobeItem, error) {
		var item domain.WardrobeItem
		err := row.Scan(&item.ID, &item.ProfileID, &item.Name, &item.Category, &item.ImageRef, &item.CreatedAt)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	return items, nil
}

// Delete removes an item from the profile's catalogue. Missing items map to
// domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, profileID, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, profileID, itemID)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// CountByCategory returns per-category item counts for the profile.
func (r *Repo) CountByCategory(ctx context.Context, profileID uuid.UUID) (map[domain.Category]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, countByCategorySQL, profileID)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Category]int)
	for rows.Next() {
		var cat domain.Category
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, fmt.Errorf("scan counts: %w", err)
		}
		counts[cat] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan counts: %w", err)
	}
	return counts, nil
}
