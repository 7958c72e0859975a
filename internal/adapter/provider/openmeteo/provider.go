// Package openmeteo fetches current weather conditions from the Open-Meteo
// API. Resolution is a two-step flow: geocoding search (city name to
// coordinates) followed by a current-conditions forecast request.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/closetmate/closetmate/internal/config"
	"github.com/closetmate/closetmate/internal/domain"
)

// Provider resolves city names to current weather conditions.
type Provider struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewProvider creates a Provider from WeatherConfig.
func NewProvider(cfg config.WeatherConfig, logger *slog.Logger) *Provider {
	return &Provider{
		geocodingURL: cfg.GeocodingURL,
		forecastURL:  cfg.ForecastURL,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		log:          logger.With("adapter", "openmeteo"),
	}
}

// Fetch resolves a city name to a weather snapshot. Any failure (network,
// unexpected status, unknown city) is returned as an error so the caller can
// distinguish a failed lookup from a valid zero or negative temperature.
func (p *Provider) Fetch(ctx context.Context, city string) (*domain.WeatherSnapshot, error) {
	loc, err := p.geocode(ctx, city)
	if err != nil {
		p.log.WarnContext(ctx, "geocoding failed", slog.String("city", city), slog.String("error", err.Error()))
		return nil, err
	}

	current, err := p.forecast(ctx, loc)
	if err != nil {
		p.log.WarnContext(ctx, "forecast failed", slog.String("city", loc.Name), slog.String("error", err.Error()))
		return nil, err
	}

	cond, desc := condition(current.WeatherCode)

	snapshot := &domain.WeatherSnapshot{
		City:        loc.Name,
		TempC:       current.Temperature,
		Humidity:    current.Humidity,
		Condition:   cond,
		Description: desc,
	}

	p.log.DebugContext(ctx, "weather fetched",
		slog.String("city", snapshot.City),
		slog.Float64("temp_c", snapshot.TempC),
		slog.String("condition", snapshot.Condition),
	)

	return snapshot, nil
}

// geocode resolves a city name to coordinates. An empty result set means the
// city is unknown, which is a lookup failure.
func (p *Provider) geocode(ctx context.Context, city string) (*geocodeResult, error) {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "1")
	q.Set("language", "en")

	var resp geocodeResponse
	if err := p.getJSON(ctx, p.geocodingURL, q, &resp); err != nil {
		return nil, fmt.Errorf("openmeteo: geocode %q: %w", city, err)
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("openmeteo: geocode %q: %w", city, domain.ErrNotFound)
	}

	return &resp.Results[0], nil
}

// forecast fetches current conditions for resolved coordinates.
func (p *Provider) forecast(ctx context.Context, loc *geocodeResult) (*currentConditions, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code")
	q.Set("timezone", "auto")

	var resp forecastResponse
	if err := p.getJSON(ctx, p.forecastURL, q, &resp); err != nil {
		return nil, fmt.Errorf("openmeteo: forecast %q: %w", loc.Name, err)
	}

	return &resp.Current, nil
}

func (p *Provider) getJSON(ctx context.Context, rawURL string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}
