// Package favorites implements saved outfit management. A favorite freezes
// the labels of a resolution at save time; later wardrobe edits never touch
// it.
package favorites

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
)

type favoriteRepo interface {
	Create(ctx context.Context, fav domain.FavoriteOutfit) error
	List(ctx context.Context, profileID uuid.UUID) ([]domain.FavoriteOutfit, error)
	Delete(ctx context.Context, favoriteID uuid.UUID) error
}

// Service implements favorites business logic.
type Service struct {
	log       *slog.Logger
	favorites favoriteRepo
}

// NewService creates a new Favorites service.
func NewService(logger *slog.Logger, favorites favoriteRepo) *Service {
	return &Service{
		log:       logger.With("service", "favorites"),
		favorites: favorites,
	}
}

// SaveInput describes a favorite to store.
type SaveInput struct {
	ProfileID uuid.UUID
	Occasion  string
	ItemNames []string
	Narrative string
}

// Save stores a frozen outfit snapshot.
func (s *Service) Save(ctx context.Context, in SaveInput) (domain.FavoriteOutfit, error) {
	in.Occasion = strings.TrimSpace(in.Occasion)
	if in.Occasion == "" {
		return domain.FavoriteOutfit{}, domain.NewValidationError("occasion", "must not be empty")
	}
	if len(in.ItemNames) == 0 {
		return domain.FavoriteOutfit{}, domain.NewValidationError("item_names", "must not be empty")
	}

	fav := domain.FavoriteOutfit{
		ID:        uuid.New(),
		ProfileID: in.ProfileID,
		Occasion:  in.Occasion,
		ItemNames: in.ItemNames,
		Narrative: in.Narrative,
		SavedAt:   time.Now().UTC(),
	}

	if err := s.favorites.Create(ctx, fav); err != nil {
		return domain.FavoriteOutfit{}, err
	}

	s.log.InfoContext(ctx, "favorite saved",
		slog.String("profile_id", in.ProfileID.String()),
		slog.String("occasion", in.Occasion),
		slog.Int("items", len(in.ItemNames)),
	)
	return fav, nil
}

// List returns the profile's favorites, newest first.
func (s *Service) List(ctx context.Context, profileID uuid.UUID) ([]domain.FavoriteOutfit, error) {
	return s.favorites.List(ctx, profileID)
}

// Delete removes a favorite addressed by id alone. A missing favorite
// reports domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, favoriteID uuid.UUID) error {
	return s.favorites.Delete(ctx, favoriteID)
}
