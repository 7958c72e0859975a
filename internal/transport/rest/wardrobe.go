package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/service/wardrobe"
)

type wardrobeService interface {
	List(ctx context.Context, profileID uuid.UUID, filter domain.ItemFilter) ([]domain.WardrobeItem, error)
	Add(ctx context.Context, in wardrobe.AddInput) (domain.WardrobeItem, error)
	DeleteByName(ctx context.Context, profileID uuid.UUID, name string) error
	Analyze(ctx context.Context, profileID uuid.UUID) (wardrobe.Analysis, error)
}

// WardrobeHandler serves catalogue REST endpoints.
type WardrobeHandler struct {
	wardrobe wardrobeService
	log      *slog.Logger
}

// NewWardrobeHandler creates a WardrobeHandler.
func NewWardrobeHandler(svc wardrobeService, logger *slog.Logger) *WardrobeHandler {
	return &WardrobeHandler{
		wardrobe: svc,
		log:      logger.With("handler", "wardrobe"),
	}
}

// List returns the profile's catalogue, optionally filtered by ?category=.
// GET /api/profiles/{profileID}/items
func (h *WardrobeHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseProfileID(w, r, h.log)
	if !ok {
		return
	}

	var filter domain.ItemFilter
	if v := r.URL.Query().Get("category"); v != "" {
		cat := domain.Category(v)
		if !cat.IsValid() {
			handleError(w, r, h.log, domain.NewValidationError("category", "unknown category"))
			return
		}
		filter.Category = &cat
	}

	items, err := h.wardrobe.List(r.Context(), profileID, filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponses(items))
}

type addItemRequest struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	ImageRef  *string   `json:"image_ref"`
}

// Add stores a new catalogue item, auto-tagging from the image when name or
// category is left blank.
// POST /api/items
func (h *WardrobeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	item, err := h.wardrobe.Add(r.Context(), wardrobe.AddInput{
		ProfileID: req.ProfileID,
		Name:      req.Name,
		Category:  domain.Category(req.Category),
		ImageRef:  req.ImageRef,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// Delete removes an item addressed by name.
// DELETE /api/profiles/{profileID}/items/{name}
func (h *WardrobeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseProfileID(w, r, h.log)
	if !ok {
		return
	}

	if err := h.wardrobe.DeleteByName(r.Context(), profileID, chi.URLParam(r, "name")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type analyzeRequest struct {
	ProfileID uuid.UUID `json:"profile_id"`
}

// Analyze reports catalogue composition and coverage gaps.
// POST /api/items/analyze
func (h *WardrobeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	analysis, err := h.wardrobe.Analyze(r.Context(), req.ProfileID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func parseProfileID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		handleError(w, r, log, domain.NewValidationError("profileID", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
