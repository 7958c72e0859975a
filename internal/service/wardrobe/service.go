// Package wardrobe implements catalogue management: adding, listing and
// removing items, with optional classifier-assisted auto-tagging for items
// uploaded as photos.
package wardrobe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/provider"
)

type itemRepo interface {
	Create(ctx context.Context, item domain.WardrobeItem) error
	GetByID(ctx context.Context, profileID, itemID uuid.UUID) (domain.WardrobeItem, error)
	List(ctx context.Context, profileID uuid.UUID, filter domain.ItemFilter) ([]domain.WardrobeItem, error)
	Delete(ctx context.Context, profileID, itemID uuid.UUID) error
	CountByCategory(ctx context.Context, profileID uuid.UUID) (map[domain.Category]int, error)
}

type classifier interface {
	Classify(ctx context.Context, imageRef string) (*provider.ClassifyResult, error)
}

// Service implements the wardrobe business logic.
type Service struct {
	log        *slog.Logger
	items      itemRepo
	classifier classifier
}

// NewService creates a new Wardrobe service.
func NewService(logger *slog.Logger, items itemRepo, classifier classifier) *Service {
	return &Service{
		log:        logger.With("service", "wardrobe"),
		items:      items,
		classifier: classifier,
	}
}

// List returns the profile's catalogue, optionally narrowed by category.
func (s *Service) List(ctx context.Context, profileID uuid.UUID, filter domain.ItemFilter) ([]domain.WardrobeItem, error) {
	return s.items.List(ctx, profileID, filter)
}

// Get returns one catalogue item.
func (s *Service) Get(ctx context.Context, profileID, itemID uuid.UUID) (domain.WardrobeItem, error) {
	return s.items.GetByID(ctx, profileID, itemID)
}

// Delete removes an item from the catalogue.
func (s *Service) Delete(ctx context.Context, profileID, itemID uuid.UUID) error {
	return s.items.Delete(ctx, profileID, itemID)
}

// DeleteByName removes the item whose normalized name matches. Items are
// addressed by name on the wire, so lookup goes through the same
// normalization as the narrative matcher.
func (s *Service) DeleteByName(ctx context.Context, profileID uuid.UUID, name string) error {
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return domain.NewValidationError("name", "must not be empty")
	}

	items, err := s.items.List(ctx, profileID, domain.ItemFilter{})
	if err != nil {
		return err
	}
	for _, item := range items {
		if domain.NormalizeName(item.Name) == normalized {
			return s.items.Delete(ctx, profileID, item.ID)
		}
	}
	return fmt.Errorf("item %q: %w", name, domain.ErrNotFound)
}
