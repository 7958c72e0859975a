package favorite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closetmate/closetmate/internal/domain"
)

func newFavorite(profileID uuid.UUID, occasion string, savedAt time.Time) domain.FavoriteOutfit {
	return domain.FavoriteOutfit{
		ID:        uuid.New(),
		ProfileID: profileID,
		Occasion:  occasion,
		ItemNames: []string{"white shirt", "blue jeans"},
		Narrative: "Top: white shirt\nBottom: blue jeans",
		SavedAt:   savedAt,
	}
}

func TestRepo_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := New()
	profileID := uuid.New()
	ctx := context.Background()
	now := time.Now()

	older := newFavorite(profileID, "beach", now.Add(-time.Hour))
	newer := newFavorite(profileID, "wedding", now)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	favorites, err := repo.List(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "wedding", favorites[0].Occasion)
	assert.Equal(t, []string{"white shirt", "blue jeans"}, favorites[0].ItemNames)
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()

	repo := New()
	profileID := uuid.New()
	ctx := context.Background()

	fav := newFavorite(profileID, "party", time.Now())
	require.NoError(t, repo.Create(ctx, fav))

	require.NoError(t, repo.Delete(ctx, fav.ID))

	favorites, err := repo.List(ctx, profileID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	// Second delete of the same id reports not found.
	err = repo.Delete(ctx, fav.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Delete_ByIDAcrossProfiles(t *testing.T) {
	t.Parallel()

	repo := New()
	ctx := context.Background()

	kept := newFavorite(uuid.New(), "party", time.Now())
	doomed := newFavorite(uuid.New(), "beach", time.Now())
	require.NoError(t, repo.Create(ctx, kept))
	require.NoError(t, repo.Create(ctx, doomed))

	// The id alone addresses the favorite regardless of owning profile.
	require.NoError(t, repo.Delete(ctx, doomed.ID))

	favorites, err := repo.List(ctx, kept.ProfileID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	favorites, err = repo.List(ctx, doomed.ProfileID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
