package favorites

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memfavorite "github.com/closetmate/closetmate/internal/adapter/memory/favorite"
	"github.com/closetmate/closetmate/internal/domain"
)

func newService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), memfavorite.New())
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newService()
	profileID := uuid.New()
	ctx := context.Background()

	fav, err := svc.Save(ctx, SaveInput{
		ProfileID: profileID,
		Occasion:  "beach day",
		ItemNames: []string{"Linen Shirt", "Shorts"},
		Narrative: "Top: Linen Shirt\nBottom: Shorts",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, fav.ID)

	favorites, err := svc.List(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, []string{"Linen Shirt", "Shorts"}, favorites[0].ItemNames)
}

func TestSave_Validation(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	_, err := svc.Save(ctx, SaveInput{
		ProfileID: uuid.New(),
		Occasion:  "  ",
		ItemNames: []string{"x"},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Save(ctx, SaveInput{
		ProfileID: uuid.New(),
		Occasion:  "party",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDelete_MissingReportsNotFound(t *testing.T) {
	t.Parallel()

	svc := newService()
	profileID := uuid.New()
	ctx := context.Background()

	fav, err := svc.Save(ctx, SaveInput{
		ProfileID: profileID,
		Occasion:  "party",
		ItemNames: []string{"Black Dress"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, fav.ID))
	assert.ErrorIs(t, svc.Delete(ctx, fav.ID), domain.ErrNotFound)
}
