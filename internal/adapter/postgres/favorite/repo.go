// Package favorite implements the FavoriteOutfit repository using PostgreSQL.
// Item labels are stored as a JSONB array so favorites stay frozen even when
// the underlying wardrobe items change or disappear.
package favorite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/closetmate/closetmate/internal/adapter/postgres"
	"github.com/closetmate/closetmate/internal/domain"
)

// Repo provides favorite outfit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new favorite outfit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO favorite_outfits (id, profile_id, occasion, item_names, narrative, saved_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const listSQL = `
SELECT id, profile_id, occasion, item_names, narrative, saved_at
FROM favorite_outfits
WHERE profile_id = $1
ORDER BY saved_at DESC`

const deleteSQL = `
DELETE FROM favorite_outfits WHERE id = $1`

// Create inserts a new favorite.
func (r *Repo) Create(ctx context.Context, fav domain.FavoriteOutfit) error {
	names, err := json.Marshal(fav.ItemNames)
	if err != nil {
		return fmt.Errorf("marshal item names: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err = q.Exec(ctx, createSQL,
		fav.ID, fav.ProfileID, fav.Occasion, names, fav.Narrative, fav.SavedAt)
	if err != nil {
		return postgres.MapError(err, "favorite", fav.ID)
	}
	return nil
}

// List returns the profile's favorites, newest first.
func (r *Repo) List(ctx context.Context, profileID uuid.UUID) ([]domain.FavoriteOutfit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, profileID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FavoriteOutfit, error) {
		var fav domain.FavoriteOutfit
		var names []byte
		if err := row.Scan(&fav.ID, &fav.ProfileID, &fav.Occasion, &names, &fav.Narrative, &fav.SavedAt); err != nil {
			return domain.FavoriteOutfit{}, err
		}
		if err := json.Unmarshal(names, &fav.ItemNames); err != nil {
			return domain.FavoriteOutfit{}, fmt.Errorf("unmarshal item names: %w", err)
		}
		return fav, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan favorites: %w", err)
	}
	return favorites, nil
}

// Delete removes a favorite addressed by id alone. Missing favorites map to
// domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, favoriteID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, favoriteID)
	if err != nil {
		return postgres.MapError(err, "favorite", favoriteID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s: %w", favoriteID, domain.ErrNotFound)
	}
	return nil
}
