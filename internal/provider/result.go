// Package provider defines the result types returned by external
// collaborator adapters (advice generator, auto-tag classifier).
package provider

import "github.com/closetmate/closetmate/internal/domain"

// AdviceResult is what the advice generator returns on success.
// Items is the generator's own structured selection and may be empty; the
// narrative is always present.
type AdviceResult struct {
	Narrative string
	Items     []domain.WardrobeItem
	Occasion  string // matched occasion name, e.g. "beach"
}

// ClassifyResult is the auto-tag classifier's guess for an uploaded item.
// Both fields are optional.
type ClassifyResult struct {
	Name     *string
	Category *domain.Category
}
