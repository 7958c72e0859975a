// Package app wires configuration, adapters, services and transport
// together and owns the server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/adapter/memory/history"
	"github.com/closetmate/closetmate/internal/adapter/postgres"
	favoriterepo "github.com/closetmate/closetmate/internal/adapter/postgres/favorite"
	pghistory "github.com/closetmate/closetmate/internal/adapter/postgres/history"
	itemrepo "github.com/closetmate/closetmate/internal/adapter/postgres/item"
	profilerepo "github.com/closetmate/closetmate/internal/adapter/postgres/profile"
	"github.com/closetmate/closetmate/internal/adapter/provider/ollama"
	"github.com/closetmate/closetmate/internal/adapter/provider/openmeteo"
	"github.com/closetmate/closetmate/internal/adapter/provider/vision"
	"github.com/closetmate/closetmate/internal/config"
	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/provider"
	"github.com/closetmate/closetmate/internal/service/favorites"
	profilesvc "github.com/closetmate/closetmate/internal/service/profile"
	"github.com/closetmate/closetmate/internal/service/stylist"
	"github.com/closetmate/closetmate/internal/service/wardrobe"
	"github.com/closetmate/closetmate/internal/transport/middleware"
	"github.com/closetmate/closetmate/internal/transport/rest"
)

// historyLedger is the ledger contract shared by the postgres and memory
// backends, selected by history.driver.
type historyLedger interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error
	List(ctx context.Context, profileID uuid.UUID) ([]domain.HistoryEntry, error)
	GetByID(ctx context.Context, profileID, entryID uuid.UUID) (domain.HistoryEntry, error)
}

// itemClassifier abstracts over the HTTP classifier and the stub.
type itemClassifier interface {
	Classify(ctx context.Context, imageRef string) (*provider.ClassifyResult, error)
}

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, runs migrations, wires the services
// and serves HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("history_driver", cfg.History.Driver),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	txManager := postgres.NewTxManager(pool)

	// Adapters.
	weatherProvider := openmeteo.NewProvider(cfg.Weather, logger)
	advisor := ollama.NewClient(cfg.Advisor, logger)

	var classifier itemClassifier
	if cfg.Vision.URL != "" {
		classifier = vision.NewClassifier(cfg.Vision, logger)
	} else {
		classifier = vision.NewStub()
		logger.Info("vision url not set, using stub classifier")
	}

	// The driver switch covers the ledger only; every other repository is
	// postgres-backed regardless.
	var ledger historyLedger
	switch cfg.History.Driver {
	case "memory":
		ledger = history.New()
	default:
		ledger = pghistory.New(pool, txManager)
	}

	items := itemrepo.New(pool)

	// Services.
	profileService := profilesvc.NewService(logger, profilerepo.New(pool))
	wardrobeService := wardrobe.NewService(logger, items, classifier)
	stylistService := stylist.NewService(logger, items, weatherProvider, advisor, ledger, cfg.Stylist)
	favoritesService := favorites.NewService(logger, favoriterepo.New(pool))

	// Transport.
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Profiles:  rest.NewProfileHandler(profileService, logger),
		Wardrobe:  rest.NewWardrobeHandler(wardrobeService, logger),
		Style:     rest.NewStyleHandler(stylistService, logger),
		Favorites: rest.NewFavoritesHandler(favoritesService, logger),
		Limiter:   limiter,
		Stylist:   cfg.Stylist,
		CORS:      cfg.CORS,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped cleanly")
	return nil
}
