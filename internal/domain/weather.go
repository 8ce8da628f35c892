package domain

// WeatherSnapshot is the current weather at a hotel's coordinates.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"` // °C
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}
