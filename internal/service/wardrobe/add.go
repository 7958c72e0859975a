package wardrobe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
)

// AddInput describes a new catalogue item. Name and Category may be left
// blank when ImageRef is set; the classifier fills what it can and the rest
// falls back to a generated name and CategoryUncategorized.
type AddInput struct {
	ProfileID uuid.UUID
	Name      string
	Category  domain.Category
	ImageRef  *string
}

// Add validates, auto-tags and stores a new wardrobe item.
func (s *Service) Add(ctx context.Context, in AddInput) (domain.WardrobeItem, error) {
	in.Name = strings.TrimSpace(in.Name)

	if in.Name == "" && in.ImageRef == nil {
		return domain.WardrobeItem{}, domain.NewValidationError("name", "name or image is required")
	}
	if in.Category != "" && !in.Category.IsValid() {
		return domain.WardrobeItem{}, domain.NewValidationError("category", fmt.Sprintf("unknown category %q", in.Category))
	}

	if in.ImageRef != nil && (in.Name == "" || in.Category == "") {
		s.autoTag(ctx, &in)
	}

	if in.Name == "" {
		// Stable placeholder so the item is addressable until renamed.
		in.Name = "item_" + uuid.NewString()[:8]
	}
	if in.Category == "" {
		in.Category = domain.CategoryUncategorized
	}

	item := domain.WardrobeItem{
		ID:        uuid.New(),
		ProfileID: in.ProfileID,
		Name:      in.Name,
		Category:  in.Category,
		ImageRef:  in.ImageRef,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.items.Create(ctx, item); err != nil {
		return domain.WardrobeItem{}, err
	}

	s.log.InfoContext(ctx, "item added",
		slog.String("profile_id", in.ProfileID.String()),
		slog.String("name", item.Name),
		slog.String("category", item.Category.String()),
	)
	return item, nil
}

// autoTag fills blank fields from the classifier. Classifier failure is
// non-fatal; the fallbacks apply instead.
func (s *Service) autoTag(ctx context.Context, in *AddInput) {
	result, err := s.classifier.Classify(ctx, *in.ImageRef)
	if err != nil {
		s.log.WarnContext(ctx, "auto-tag failed",
			slog.String("image_ref", *in.ImageRef),
			slog.String("error", err.Error()),
		)
		return
	}

	if in.Name == "" && result.Name != nil {
		in.Name = strings.TrimSpace(*result.Name)
	}
	if in.Category == "" && result.Category != nil {
		in.Category = *result.Category
	}
}
