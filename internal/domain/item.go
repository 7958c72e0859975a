package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a wardrobe owner. Profiles are unauthenticated identities;
// everything else in the system is scoped by ProfileID.
type Profile struct {
	ID        uuid.UUID
	Name      string
	IsOwner   bool
	CreatedAt time.Time
}

// ItemFilter narrows catalogue listings. Zero value means no filtering.
type ItemFilter struct {
	Category *Category
}

// WardrobeItem is a single catalogued garment. Name is unique within a
// profile's catalogue (case-insensitive via NormalizeName, case-preserving
// for display). ImageRef is an opaque reference to an externally stored
// image, if any.
type WardrobeItem struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Name      string
	Category  Category
	ImageRef  *string
	CreatedAt time.Time
}
