package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
)

type profileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsOwner   bool      `json:"is_owner"`
	CreatedAt time.Time `json:"created_at"`
}

func toProfileResponse(p domain.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		Name:      p.Name,
		IsOwner:   p.IsOwner,
		CreatedAt: p.CreatedAt,
	}
}

type itemResponse struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	ImageRef  *string   `json:"image_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toItemResponse(item domain.WardrobeItem) itemResponse {
	return itemResponse{
		ID:        item.ID,
		ProfileID: item.ProfileID,
		Name:      item.Name,
		Category:  item.Category.String(),
		ImageRef:  item.ImageRef,
		CreatedAt: item.CreatedAt,
	}
}

func toItemResponses(items []domain.WardrobeItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}

type resolutionResponse struct {
	Occasion  string                  `json:"occasion"`
	City      string                  `json:"city"`
	Weather   *domain.WeatherSnapshot `json:"weather,omitempty"`
	Narrative string                  `json:"narrative"`
	Items     []itemResponse          `json:"items"`
}

type historyEntryResponse struct {
	ID        uuid.UUID          `json:"id"`
	Result    resolutionResponse `json:"result"`
	CreatedAt time.Time          `json:"created_at"`
}

func toHistoryEntryResponse(entry domain.HistoryEntry) historyEntryResponse {
	return historyEntryResponse{
		ID: entry.ID,
		Result: resolutionResponse{
			Occasion:  entry.Result.Occasion,
			City:      entry.Result.City,
			Weather:   entry.Result.Weather,
			Narrative: entry.Result.Narrative,
			Items:     toItemResponses(entry.Result.Items),
		},
		CreatedAt: entry.CreatedAt,
	}
}

func toHistoryEntryResponses(entries []domain.HistoryEntry) []historyEntryResponse {
	out := make([]historyEntryResponse, len(entries))
	for i, entry := range entries {
		out[i] = toHistoryEntryResponse(entry)
	}
	return out
}

type favoriteResponse struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Occasion  string    `json:"occasion"`
	ItemNames []string  `json:"item_names"`
	Narrative string    `json:"narrative"`
	SavedAt   time.Time `json:"saved_at"`
}

func toFavoriteResponse(fav domain.FavoriteOutfit) favoriteResponse {
	return favoriteResponse{
		ID:        fav.ID,
		ProfileID: fav.ProfileID,
		Occasion:  fav.Occasion,
		ItemNames: fav.ItemNames,
		Narrative: fav.Narrative,
		SavedAt:   fav.SavedAt,
	}
}
