package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
)

type profileService interface {
	Create(ctx context.Context, name string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileHandler serves profile REST endpoints.
type ProfileHandler struct {
	profiles profileService
	log      *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		log:      logger.With("handler", "profile"),
	}
}

type createProfileRequest struct {
	Name string `json:"name"`
}

// Create registers a new profile.
// POST /api/profiles
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.profiles.Create(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(p))
}

// List returns all profiles.
// GET /api/profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]profileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = toProfileResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete removes a profile and everything scoped to it.
// DELETE /api/profiles/{profileID}
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("profileID", "must be a UUID"))
		return
	}

	if err := h.profiles.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
