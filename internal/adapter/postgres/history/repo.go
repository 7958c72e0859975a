// Package history implements the style history ledger using PostgreSQL.
//
// The ledger keeps at most domain.HistoryLimit entries per profile, newest
// first. Append inserts and trims inside one transaction serialized by a
// per-profile advisory lock, so concurrent appends cannot overshoot the cap.
package history

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

// Repo provides history ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new history ledger repository.
func New(pool *pgxpool.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx}
}

const lockSQL = `
SELECT pg_advisory_xact_lock(hashtext($1::text))`

const insertSQL = `
INSERT INTO style_history (id, profile_id, result, created_at)
VALUES ($1, $2, $3, $4)`

const trimSQL = `
DELETE FROM style_history
WHERE profile_id = $1
  AND seq NOT IN (
      SELECT seq FROM style_history
      WHERE profile_id = $1
      ORDER BY seq DESC
      LIMIT $2
  )`

const listSQL = `
SELECT id, profile_id, result, created_at
FROM style_history
WHERE profile_id = $1
ORDER BY seq DESC
LIMIT $2`

const getByIDSQL = `
SELECT id, profile_id, result, created_at
FROM style_history
WHERE profile_id = $1 AND id = $2`

// Append inserts an entry and evicts anything beyond the newest
// domain.HistoryLimit rows for the profile.
func (r *Repo) Append(ctx context.Context, entry domain.HistoryEntry) error {
	result, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("marshal resolution: %w", err)
	}

	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		if _, err := q.Exec(ctx, lockSQL, entry.ProfileID); err != nil {
			return fmt.Errorf("acquire profile lock: %w", err)
		}
		if _, err := q.Exec(ctx, insertSQL, entry.ID, entry.ProfileID, result, entry.CreatedAt); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, trimSQL, entry.ProfileID, domain.HistoryLimit); err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
		return nil
	})
	if err != nil {
		return postgres.MapError(err, "history", entry.ID)
	}
	return nil
}

// List returns the profile's retained history, newest first.
func (r *Repo) List(ctx context.Context, profileID uuid.UUID) ([]domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, profileID, domain.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("scan history: %w", err)
	}
	return entries, nil
}

// GetByID returns one retained entry scoped to the profile.
func (r *Repo) GetByID(ctx context.Context, profileID, entryID uuid.UUID) (domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntryRow(q.QueryRow(ctx, getByIDSQL, profileID, entryID))
	if err != nil {
		return domain.HistoryEntry{}, postgres.MapError(err, "history", entryID)
	}
	return entry, nil
}

func scanEntry(row pgx.CollectableRow) (domain.HistoryEntry, error) {
	return scanEntryRow(row)
}

func scanEntryRow(row pgx.Row) (domain.HistoryEntry, error) {
	var entry domain.HistoryEntry
	var result []byte
	if err := row.Scan(&entry.ID, &entry.ProfileID, &result, &entry.CreatedAt); err != nil {
		return domain.HistoryEntry{}, err
	}
	if err := json.Unmarshal(result, &entry.Result); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("unmarshal resolution: %w", err)
	}
	return entry, nil
}
