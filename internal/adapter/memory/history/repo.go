// Package history implements the style history ledger in process memory.
// It enforces the same per-profile cap and newest-first ordering as the
// PostgreSQL ledger and is the default for tests and single-node setups
// without a database.
package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
)

// ledger holds one profile's entries, newest first, behind its own lock so
// unrelated profiles never contend.
type ledger struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// Repo is an in-memory history ledger. Safe for concurrent use.
type Repo struct {
	mu      sync.Mutex // guards the map only
	ledgers map[uuid.UUID]*ledger
}

// New creates an empty in-memory history ledger.
func New() *Repo {
	return &Repo{ledgers: make(map[uuid.UUID]*ledger)}
}

func (r *Repo) ledgerFor(profileID uuid.UUID) *ledger {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.ledgers[profileID]
	if !ok {
		l = &ledger{}
		r.ledgers[profileID] = l
	}
	return l
}

// Append prepends the entry to the profile's ledger and drops anything
// beyond domain.HistoryLimit.
func (r *Repo) Append(_ context.Context, entry domain.HistoryEntry) error {
	l := r.ledgerFor(entry.ProfileID)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]domain.HistoryEntry{entry}, l.entries...)
	if len(l.entries) > domain.HistoryLimit {
		l.entries = l.entries[:domain.HistoryLimit]
	}
	return nil
}

// List returns the profile's retained history, newest first.
func (r *Repo) List(_ context.Context, profileID uuid.UUID) ([]domain.HistoryEntry, error) {
	l := r.ledgerFor(profileID)

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}

// GetByID returns one retained entry scoped to the profile.
func (r *Repo) GetByID(_ context.Context, profileID, entryID uuid.UUID) (domain.HistoryEntry, error) {
	l := r.ledgerFor(profileID)

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, entry := range l.entries {
		if entry.ID == entryID {
			return entry, nil
		}
	}
	return domain.HistoryEntry{}, fmt.Errorf("history %s: %w", entryID, domain.ErrNotFound)
}
