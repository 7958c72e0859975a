package wardrobe

import (
	"context"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
)

// essentialCategories are checked by Analyze for coverage gaps. A wardrobe
// missing any of these cannot produce a complete outfit for most occasions.
var essentialCategories = []domain.Category{
	domain.CategoryTop,
	domain.CategoryBottom,
	domain.CategoryShoes,
}

// Analysis summarizes catalogue composition.
type Analysis struct {
	Total      int                     `json:"total"`
	ByCategory map[domain.Category]int `json:"by_category"`
	Missing    []domain.Category       `json:"missing"`
}

// Analyze reports per-category counts and missing essentials for the
// profile's catalogue.
func (s *Service) Analyze(ctx context.Context, profileID uuid.UUID) (Analysis, error) {
	counts, err := s.items.CountByCategory(ctx, profileID)
	if err != nil {
		return Analysis{}, err
	}

	analysis := Analysis{ByCategory: counts, Missing: []domain.Category{}}
	for _, n := range counts {
		analysis.Total += n
	}

	hasDressOrSaree := counts[domain.CategoryDress] > 0 || counts[domain.CategorySaree] > 0
	for _, cat := range essentialCategories {
		if counts[cat] > 0 {
			continue
		}
		// A dress or saree covers both top and bottom.
		if hasDressOrSaree && (cat == domain.CategoryTop || cat == domain.CategoryBottom) {
			continue
		}
		analysis.Missing = append(analysis.Missing, cat)
	}

	return analysis, nil
}
