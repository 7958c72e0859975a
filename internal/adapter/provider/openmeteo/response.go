package openmeteo

// geocodeResponse is the Open-Meteo geocoding search payload.
type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type geocodeResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// forecastResponse is the Open-Meteo current-conditions payload.
type forecastResponse struct {
	Current currentConditions `json:"current"`
}

type currentConditions struct {
	Temperature float64 `json:"temperature_2m"`
	Humidity    int     `json:"relative_humidity_2m"`
	WeatherCode int     `json:"weather_code"`
}
