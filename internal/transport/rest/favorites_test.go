package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/service/favorites"
)

type fakeFavorites struct {
	deleted []uuid.UUID
	err     error
}

func (f *fakeFavorites) Save(_ context.Context, _ favorites.SaveInput) (domain.FavoriteOutfit, error) {
	return domain.FavoriteOutfit{}, f.err
}

func (f *fakeFavorites) List(_ context.Context, _ uuid.UUID) ([]domain.FavoriteOutfit, error) {
	return nil, f.err
}

func (f *fakeFavorites) Delete(_ context.Context, favoriteID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, favoriteID)
	return nil
}

func newFavoritesRouter(svc favoritesService) http.Handler {
	h := NewFavoritesHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Delete("/api/favorites/{favoriteID}", h.Delete)
	return r
}

func TestFavoritesHandler_Delete_ByIDAlone(t *testing.T) {
	t.Parallel()

	svc := &fakeFavorites{}
	router := newFavoritesRouter(svc)
	favoriteID := uuid.New()

	// No query parameters; the path id is the whole address.
	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/"+favoriteID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []uuid.UUID{favoriteID}, svc.deleted)
}

func TestFavoritesHandler_Delete_Missing(t *testing.T) {
	t.Parallel()

	svc := &fakeFavorites{err: fmt.Errorf("favorite: %w", domain.ErrNotFound)}
	router := newFavoritesRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavoritesHandler_Delete_BadID(t *testing.T) {
	t.Parallel()

	router := newFavoritesRouter(&fakeFavorites{})

	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
