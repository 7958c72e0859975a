package openmeteo

// wmoConditions maps WMO weather interpretation codes to a short condition
// keyword and a human description.
var wmoConditions = map[int][2]string{
	0:  {"Clear", "clear sky"},
	1:  {"Clear", "mainly clear"},
	2:  {"Clouds", "partly cloudy"},
	3:  {"Clouds", "overcast"},
	45: {"Fog", "foggy"},
	48: {"Fog", "rime fog"},
	51: {"Drizzle", "light drizzle"},
	53: {"Drizzle", "moderate drizzle"},
	55: {"Drizzle", "dense drizzle"},
	61: {"Rain", "slight rain"},
	63: {"Rain", "moderate rain"},
	65: {"Rain", "heavy rain"},
	80: {"Rain", "rain showers"},
	95: {"Thunderstorm", "thunderstorm"},
}

// condition resolves a WMO code. Unknown codes map to ("Unknown", "unknown").
func condition(code int) (string, string) {
	if c, ok := wmoConditions[code]; ok {
		return c[0], c[1]
	}
	return "Unknown", "unknown"
}
