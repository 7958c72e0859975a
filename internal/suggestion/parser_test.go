package suggestion

import (
	"testing"

	"github.com/closetmate/closetmate/internal/domain"
)

func catalogue(names ...string) []domain.WardrobeItem {
	items := make([]domain.WardrobeItem, len(names))
	for i, n := range names {
		items[i] = domain.WardrobeItem{Name: n}
	}
	return items
}

func itemNames(items []domain.WardrobeItem) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

func assertNames(t *testing.T, got []domain.WardrobeItem, want ...string) {
	t.Helper()
	gotNames := itemNames(got)
	if len(gotNames) != len(want) {
		t.Fatalf("matched %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("matched %v, want %v", gotNames, want)
		}
	}
}

func TestMatch_ExactNormalized(t *testing.T) {
	cat := catalogue("Linen Shirt", "Shorts")

	got := Match("Top: Linen Shirt\nBottom: Shorts\nGreat for a sunny beach day!", cat)

	assertNames(t, got, "Linen Shirt", "Shorts")
}

func TestMatch_ParentheticalDiscarded(t *testing.T) {
	cat := catalogue("blue shirt")

	got := Match("Top: Blue Shirt (cotton)", cat)

	assertNames(t, got, "blue shirt")
}

func TestMatch_UnderscoresAndHyphens(t *testing.T) {
	cat := catalogue("blue_formal_shirt")

	got := Match("Top: Blue Formal Shirt", cat)

	assertNames(t, got, "blue_formal_shirt")
}

func TestMatch_SubstringEitherDirection(t *testing.T) {
	tests := []struct {
		name      string
		catalogue []domain.WardrobeItem
		narrative string
		want      []string
	}{
		{
			name:      "candidate contains catalogue name",
			catalogue: catalogue("Sneakers"),
			narrative: "Shoes: White Sneakers",
			want:      []string{"Sneakers"},
		},
		{
			name:      "catalogue name contains candidate",
			catalogue: catalogue("Red Silk Saree"),
			narrative: "Saree: Silk Saree",
			want:      []string{"Red Silk Saree"},
		},
		{
			name:      "exact beats substring regardless of order",
			catalogue: catalogue("Blue Shirt Dress", "Blue Shirt"),
			narrative: "Top: Blue Shirt",
			want:      []string{"Blue Shirt"},
		},
		{
			name:      "first substring match wins",
			catalogue: catalogue("Shirt", "Blue Shirt"),
			narrative: "Top: Blue Shirt",
			want:      []string{"Blue Shirt"}, // exact rule fires first
		},
		{
			name:      "ambiguous substring resolved by catalogue order",
			catalogue: catalogue("Shirt", "Blue Shirt"),
			narrative: "Top: Shirt Of Any Kind",
			want:      []string{"Shirt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNames(t, Match(tt.narrative, tt.catalogue), tt.want...)
		})
	}
}

func TestMatch_Deduplicates(t *testing.T) {
	cat := catalogue("Denim Jacket", "Jeans")

	narrative := "Top: Denim Jacket\nOuterwear: Denim Jacket\nBottom: Jeans"
	got := Match(narrative, cat)

	assertNames(t, got, "Denim Jacket", "Jeans")
}

func TestMatch_OrderIsFirstSeen(t *testing.T) {
	cat := catalogue("Shorts", "Linen Shirt")

	got := Match("Top: Linen Shirt\nBottom: Shorts", cat)

	assertNames(t, got, "Linen Shirt", "Shorts")
}

func TestMatch_PlaceholdersSkipped(t *testing.T) {
	cat := catalogue("Silk Saree", "Heels")

	narrative := "Top: Silk Saree\nBottom: None needed\nShoes: Not available in wardrobe\nAccessory: none"
	got := Match(narrative, cat)

	assertNames(t, got, "Silk Saree")
}

func TestMatch_NoCues(t *testing.T) {
	cat := catalogue("Linen Shirt")

	got := Match("Wear something breezy and comfortable today.", cat)

	if len(got) != 0 {
		t.Fatalf("matched %v, want none", itemNames(got))
	}
}

func TestMatch_UnmatchedCandidateDropped(t *testing.T) {
	cat := catalogue("Linen Shirt")

	got := Match("Top: Velvet Gown\nBottom: Linen Shirt", cat)

	// The hallucinated gown contributes nothing; the shirt still matches.
	assertNames(t, got, "Linen Shirt")
}

func TestMatch_EmptyCatalogue(t *testing.T) {
	got := Match("Top: Anything", nil)
	if len(got) != 0 {
		t.Fatalf("matched %v, want none", itemNames(got))
	}
}

func TestMatch_LabelRequiresSeparator(t *testing.T) {
	cat := catalogue("Linen Shirt")

	// "Top Linen Shirt" has no separator; not a structural cue.
	got := Match("Top Linen Shirt", cat)

	if len(got) != 0 {
		t.Fatalf("matched %v, want none", itemNames(got))
	}
}

func TestMatch_CaseInsensitiveLabel(t *testing.T) {
	cat := catalogue("Loafers")

	got := Match("shoes: Loafers", cat)

	assertNames(t, got, "Loafers")
}
