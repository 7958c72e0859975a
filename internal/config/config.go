package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Weather  WeatherConfig  `yaml:"weather"`
	Advisor  AdvisorConfig  `yaml:"advisor"`
	Vision   VisionConfig   `yaml:"vision"`
	History  HistoryConfig  `yaml:"history"`
	Stylist  StylistConfig  `yaml:"stylist"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Migrate         bool          `yaml:"migrate"            env:"DATABASE_MIGRATE"            env-default:"true"`
}

// WeatherConfig holds Open-Meteo API settings.
type WeatherConfig struct {
	GeocodingURL string        `yaml:"geocoding_url" env:"WEATHER_GEOCODING_URL" env-default:"https://geocoding-api.open-meteo.com/v1/search"`
	ForecastURL  string        `yaml:"forecast_url"  env:"WEATHER_FORECAST_URL"  env-default:"https://api.open-meteo.com/v1/forecast"`
	Timeout      time.Duration `yaml:"timeout"       env:"WEATHER_TIMEOUT"       env-default:"10s"`
}

// AdvisorConfig holds advice generator (Ollama) settings.
type AdvisorConfig struct {
	BaseURL string        `yaml:"base_url" env:"ADVISOR_BASE_URL" env-default:"http://localhost:11434"`
	Model   string        `yaml:"model"    env:"ADVISOR_MODEL"    env-default:"llama3.2"`
	Timeout time.Duration `yaml:"timeout"  env:"ADVISOR_TIMEOUT"  env-default:"120s"`
}

// VisionConfig holds the auto-tag classifier endpoint. An empty URL disables
// auto-tagging (the stub classifier is used instead).
type VisionConfig struct {
	URL     string        `yaml:"url"     env:"VISION_URL"`
	Timeout time.Duration `yaml:"timeout" env:"VISION_TIMEOUT" env-default:"30s"`
}

// HistoryConfig selects the history ledger backend. The memory driver swaps
// only the ledger; profiles, items and favorites stay in PostgreSQL, so the
// database connection is required either way.
type HistoryConfig struct {
	Driver string `yaml:"driver" env:"HISTORY_DRIVER" env-default:"postgres"`
}

// StylistConfig holds resolution engine settings.
type StylistConfig struct {
	DefaultCity     string `yaml:"default_city"       env:"STYLIST_DEFAULT_CITY"       env-default:"Chennai"`
	StyleRatePerMin int    `yaml:"style_rate_per_min" env:"STYLIST_STYLE_RATE_PER_MIN" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
