package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/service/stylist"
)

type stylistService interface {
	Resolve(ctx context.Context, in stylist.StyleInput) (domain.HistoryEntry, error)
	Weather(ctx context.Context, city string) (*domain.WeatherSnapshot, error)
	ListHistory(ctx context.Context, profileID uuid.UUID) ([]domain.HistoryEntry, error)
	GetHistoryEntry(ctx context.Context, profileID, entryID uuid.UUID) (domain.HistoryEntry, error)
}

// StyleHandler serves resolution engine REST endpoints.
type StyleHandler struct {
	stylist stylistService
	log     *slog.Logger
}

// NewStyleHandler creates a StyleHandler.
func NewStyleHandler(svc stylistService, logger *slog.Logger) *StyleHandler {
	return &StyleHandler{
		stylist: svc,
		log:     logger.With("handler", "style"),
	}
}

type styleRequest struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Occasion  string    `json:"occasion"`
	City      string    `json:"city"`
}

// Resolve runs one style-advice resolution.
// POST /api/style
func (h *StyleHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req styleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.stylist.Resolve(r.Context(), stylist.StyleInput{
		ProfileID: req.ProfileID,
		Occasion:  req.Occasion,
		City:      req.City,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryEntryResponse(entry))
}

// Weather returns current conditions for the city.
// GET /api/weather/{city}
func (h *StyleHandler) Weather(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.stylist.Weather(r.Context(), chi.URLParam(r, "city"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// History returns the profile's retained resolutions, newest first.
// GET /api/profiles/{profileID}/history
func (h *StyleHandler) History(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseProfileID(w, r, h.log)
	if !ok {
		return
	}

	entries, err := h.stylist.ListHistory(r.Context(), profileID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryEntryResponses(entries))
}

// HistoryEntry returns one retained resolution.
// GET /api/profiles/{profileID}/history/{entryID}
func (h *StyleHandler) HistoryEntry(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseProfileID(w, r, h.log)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("entryID", "must be a UUID"))
		return
	}

	entry, err := h.stylist.GetHistoryEntry(r.Context(), profileID, entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryEntryResponse(entry))
}
