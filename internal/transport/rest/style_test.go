package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/service/stylist"
)

type fakeStylist struct {
	entry domain.HistoryEntry
	err   error
}

func (f *fakeStylist) Resolve(_ context.Context, _ stylist.StyleInput) (domain.HistoryEntry, error) {
	return f.entry, f.err
}

func (f *fakeStylist) Weather(_ context.Context, city string) (*domain.WeatherSnapshot, error) {
	return &domain.WeatherSnapshot{City: city}, f.err
}

func (f *fakeStylist) ListHistory(_ context.Context, _ uuid.UUID) ([]domain.HistoryEntry, error) {
	return []domain.HistoryEntry{f.entry}, f.err
}

func (f *fakeStylist) GetHistoryEntry(_ context.Context, _, _ uuid.UUID) (domain.HistoryEntry, error) {
	return f.entry, f.err
}

func newStyleRouter(svc stylistService) http.Handler {
	h := NewStyleHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Post("/api/style", h.Resolve)
	r.Get("/api/weather/{city}", h.Weather)
	r.Get("/api/profiles/{profileID}/history", h.History)
	r.Get("/api/profiles/{profileID}/history/{entryID}", h.HistoryEntry)
	return r
}

func TestStyleHandler_Resolve_Success(t *testing.T) {
	t.Parallel()

	entry := domain.HistoryEntry{
		ID: uuid.New(),
		Result: domain.Resolution{
			Occasion:  "beach day",
			City:      "Chennai",
			Narrative: "Top: Linen Shirt",
			Items:     []domain.WardrobeItem{{Name: "Linen Shirt", Category: domain.CategoryTop}},
		},
	}
	router := newStyleRouter(&fakeStylist{entry: entry})

	req := httptest.NewRequest(http.MethodPost, "/api/style",
		strings.NewReader(`{"profile_id":"`+uuid.NewString()+`","occasion":"beach day","city":"Chennai"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp historyEntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entry.ID, resp.ID)
	assert.Equal(t, "Top: Linen Shirt", resp.Result.Narrative)
	require.Len(t, resp.Result.Items, 1)
	assert.Equal(t, "Top", resp.Result.Items[0].Category)
}

func TestStyleHandler_Resolve_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"empty wardrobe", domain.ErrEmptyWardrobe, http.StatusUnprocessableEntity, "empty_wardrobe"},
		{"advisor down", domain.ErrAdviceUnavailable, http.StatusBadGateway, "advice_unavailable"},
		{"blank occasion", domain.NewValidationError("occasion", "must not be empty"), http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newStyleRouter(&fakeStylist{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/api/style",
				strings.NewReader(`{"profile_id":"`+uuid.NewString()+`","occasion":"x"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestStyleHandler_Resolve_BadJSON(t *testing.T) {
	t.Parallel()

	router := newStyleRouter(&fakeStylist{})

	req := httptest.NewRequest(http.MethodPost, "/api/style", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStyleHandler_HistoryEntry_BadID(t *testing.T) {
	t.Parallel()

	router := newStyleRouter(&fakeStylist{})

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+uuid.NewString()+"/history/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
