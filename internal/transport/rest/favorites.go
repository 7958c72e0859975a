package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/service/favorites"
)

type favoritesService interface {
	Save(ctx context.Context, in favorites.SaveInput) (domain.FavoriteOutfit, error)
	List(ctx context.Context, profileID uuid.UUID) ([]domain.FavoriteOutfit, error)
	Delete(ctx context.Context, favoriteID uuid.UUID) error
}

// FavoritesHandler serves saved outfit REST endpoints.
type FavoritesHandler struct {
	favorites favoritesService
	log       *slog.Logger
}

// NewFavoritesHandler creates a FavoritesHandler.
func NewFavoritesHandler(svc favoritesService, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: svc,
		log:       logger.With("handler", "favorites"),
	}
}

type saveFavoriteRequest struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Occasion  string    `json:"occasion"`
	ItemNames []string  `json:"item_names"`
	Narrative string    `json:"narrative"`
}

// Save stores a frozen outfit snapshot.
// POST /api/favorites
func (h *FavoritesHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	fav, err := h.favorites.Save(r.Context(), favorites.SaveInput{
		ProfileID: req.ProfileID,
		Occasion:  req.Occasion,
		ItemNames: req.ItemNames,
		Narrative: req.Narrative,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFavoriteResponse(fav))
}

// List returns the profile's favorites, newest first.
// GET /api/profiles/{profileID}/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseProfileID(w, r, h.log)
	if !ok {
		return
	}

	favs, err := h.favorites.List(r.Context(), profileID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]favoriteResponse, len(favs))
	for i, fav := range favs {
		out[i] = toFavoriteResponse(fav)
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete removes a favorite addressed by id alone.
// DELETE /api/favorites/{favoriteID}
func (h *FavoritesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	favoriteID, err := uuid.Parse(chi.URLParam(r, "favoriteID"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("favoriteID", "must be a UUID"))
		return
	}

	if err := h.favorites.Delete(r.Context(), favoriteID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
