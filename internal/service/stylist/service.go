// Package stylist implements the style advice resolution engine.
//
// One resolution runs: load catalogue → look up weather (non-fatal) →
// generate advice → match narrative back to catalogue items → archive the
// result in the history ledger. The engine never calls external
// collaborators for an empty wardrobe and never archives a failed
// resolution.
package stylist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/config"
	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalogueRepo interface {
	List(ctx context.Context, profileID uuid.UUID, filter domain.ItemFilter) ([]domain.WardrobeItem, error)
}

type weatherProvider interface {
	Fetch(ctx context.Context, city string) (*domain.WeatherSnapshot, error)
}

type adviceGenerator interface {
	Generate(ctx context.Context, occasion string, items []domain.WardrobeItem, weather *domain.WeatherSnapshot) (*provider.AdviceResult, error)
}

type historyLedger interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error
	List(ctx context.Context, profileID uuid.UUID) ([]domain.HistoryEntry, error)
	GetByID(ctx context.Context, profileID, entryID uuid.UUID) (domain.HistoryEntry, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the resolution engine business logic.
type Service struct {
	log       *slog.Logger
	catalogue catalogueRepo
	weather   weatherProvider
	advisor   adviceGenerator
	history   historyLedger
	cfg       config.StylistConfig
}

// NewService creates a new Stylist service.
func NewService(
	logger *slog.Logger,
	catalogue catalogueRepo,
	weather weatherProvider,
	advisor adviceGenerator,
	history historyLedger,
	cfg config.StylistConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "stylist"),
		catalogue: catalogue,
		weather:   weather,
		advisor:   advisor,
		history:   history,
		cfg:       cfg,
	}
}

// Weather returns current conditions for the city, defaulting to the
// configured city when blank.
func (s *Service) Weather(ctx context.Context, city string) (*domain.WeatherSnapshot, error) {
	if city == "" {
		city = s.cfg.DefaultCity
	}
	return s.weather.Fetch(ctx, city)
}

// ListHistory returns the profile's retained resolutions, newest first.
func (s *Service) ListHistory(ctx context.Context, profileID uuid.UUID) ([]domain.HistoryEntry, error) {
	return s.history.List(ctx, profileID)
}

// GetHistoryEntry returns one retained resolution.
func (s *Service) GetHistoryEntry(ctx context.Context, profileID, entryID uuid.UUID) (domain.HistoryEntry, error) {
	return s.history.GetByID(ctx, profileID, entryID)
}
