package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryLimit is the hard per-profile cap on retained history entries.
const HistoryLimit = 20

// Resolution is the outcome of one style-advice request. Weather is nil when
// the lookup failed (non-fatal). Items is an ordered, deduplicated subset of
// the catalogue snapshot used during the resolution; Narrative is the
// generator output verbatim. Immutable once assembled.
type Resolution struct {
	Occasion  string
	City      string
	Weather   *WeatherSnapshot
	Narrative string
	Items     []WardrobeItem
}

// HistoryEntry is one archived resolution. Entries are write-once; ordering
// is maintained by the ledger, not derived from CreatedAt.
type HistoryEntry struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Result    Resolution
	CreatedAt time.Time
}

// FavoriteOutfit is a frozen snapshot of a resolution the user chose to keep.
// ItemNames are plain labels; deleting the underlying wardrobe item later
// does not touch the favorite.
type FavoriteOutfit struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Occasion  string
	ItemNames []string
	Narrative string
	SavedAt   time.Time
}
