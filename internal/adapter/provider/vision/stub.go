package vision

import (
	"context"
	"strings"

	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/provider"
)

// categoryKeywords maps filename tokens to a category guess, checked in
// order. Specific garments come before generic ones so "saree" is not
// swallowed by a broader rule.
var categoryKeywords = []struct {
	Category domain.Category
	Words    []string
}{
	{domain.CategorySaree, []string{"saree", "sari"}},
	{domain.CategoryDress, []string{"dress", "gown", "frock", "maxi", "lehenga", "anarkali", "kurti"}},
	{domain.CategoryOuterwear, []string{"jacket", "coat", "blazer", "hoodie", "cardigan", "shrug"}},
	{domain.CategoryShoes, []string{"shoe", "sneaker", "sandal", "heel", "boot", "slipper", "loafer"}},
	{domain.CategoryAccessory, []string{"bag", "belt", "watch", "earring", "necklace", "bangle", "scarf", "dupatta", "sunglass"}},
	{domain.CategoryBottom, []string{"jean", "trouser", "pant", "skirt", "short", "legging", "palazzo"}},
	{domain.CategoryTop, []string{"shirt", "tshirt", "t-shirt", "top", "blouse", "tee", "tank"}},
}

// Stub guesses the category from tokens in the image reference. It never
// suggests a name and never fails.
type Stub struct{}

// NewStub creates a Stub classifier.
func NewStub() *Stub {
	return &Stub{}
}

// Classify matches filename tokens against known garment keywords.
func (s *Stub) Classify(_ context.Context, imageRef string) (*provider.ClassifyResult, error) {
	lower := strings.ToLower(imageRef)

	for _, kw := range categoryKeywords {
		for _, w := range kw.Words {
			if strings.Contains(lower, w) {
				cat := kw.Category
				return &provider.ClassifyResult{Category: &cat}, nil
			}
		}
	}

	return &provider.ClassifyResult{}, nil
}
