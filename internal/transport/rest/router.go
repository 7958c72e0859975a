// Package rest exposes the application over plain HTTP with chi routing.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/closetmate/closetmate/internal/config"
	"github.com/closetmate/closetmate/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Health    *HealthHandler
	Profiles  *ProfileHandler
	Wardrobe  *WardrobeHandler
	Style     *StyleHandler
	Favorites *FavoritesHandler
	Limiter   *middleware.RateLimiter
	Stylist   config.StylistConfig
	CORS      config.CORSConfig
}

// NewRouter assembles the HTTP routing tree with the shared middleware
// stack. The resolution endpoint additionally gets per-IP rate limiting.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	common := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)
	r.Use(common)

	r.Get("/health", deps.Health.Health)
	r.Get("/ready", deps.Health.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", deps.Profiles.List)
			r.Post("/", deps.Profiles.Create)
			r.Route("/{profileID}", func(r chi.Router) {
				r.Delete("/", deps.Profiles.Delete)
				r.Get("/items", deps.Wardrobe.List)
				r.Delete("/items/{name}", deps.Wardrobe.Delete)
				r.Get("/history", deps.Style.History)
				r.Get("/history/{entryID}", deps.Style.HistoryEntry)
				r.Get("/favorites", deps.Favorites.List)
			})
		})

		r.Post("/items", deps.Wardrobe.Add)
		r.Post("/items/analyze", deps.Wardrobe.Analyze)

		r.Get("/weather/{city}", deps.Style.Weather)

		r.Group(func(r chi.Router) {
			r.Use(deps.Limiter.Limit(deps.Stylist.StyleRatePerMin))
			r.Post("/style", deps.Style.Resolve)
		})

		r.Post("/favorites", deps.Favorites.Save)
		r.Delete("/favorites/{favoriteID}", deps.Favorites.Delete)
	})

	return r
}
