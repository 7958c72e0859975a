// Package favorite implements the favorite outfit store in process memory.
package favorite

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
)

// Repo is an in-memory favorite outfit store. Safe for concurrent use.
type Repo struct {
	mu        sync.RWMutex
	favorites map[uuid.UUID][]domain.FavoriteOutfit
}

// New creates an empty in-memory favorite store.
func New() *Repo {
	return &Repo{favorites: make(map[uuid.UUID][]domain.FavoriteOutfit)}
}

// Create stores a new favorite for its profile.
func (r *Repo) Create(_ context.Context, fav domain.FavoriteOutfit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.favorites[fav.ProfileID] = append(r.favorites[fav.ProfileID], fav)
	return nil
}

// List returns the profile's favorites, newest first.
func (r *Repo) List(_ context.Context, profileID uuid.UUID) ([]domain.FavoriteOutfit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.favorites[profileID]
	out := make([]domain.FavoriteOutfit, len(stored))
	copy(out, stored)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}

// Delete removes a favorite addressed by id alone. Missing favorites map to
// domain.ErrNotFound.
func (r *Repo) Delete(_ context.Context, favoriteID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for profileID, stored := range r.favorites {
		for i, fav := range stored {
			if fav.ID == favoriteID {
				r.favorites[profileID] = append(stored[:i:i], stored[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("favorite %s: %w", favoriteID, domain.ErrNotFound)
}
