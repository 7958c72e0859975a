package domain

// WeatherSnapshot is the current conditions for a city at resolution time.
// Snapshots are transient: fetched fresh per request, never cached.
type WeatherSnapshot struct {
	City        string  `json:"city"`
	TempC       float64 `json:"temp"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
}
