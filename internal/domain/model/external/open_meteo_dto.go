package external

// GeocodingResponse represents the response from the Open-Meteo geocoding search API
type GeocodingResponse struct {
	Results          []GeocodingResultDTO `json:"results"`
	GenerationTimeMs float64              `json:"generationtime_ms"`
}

// GeocodingResultDTO represents a single place match
type GeocodingResultDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	Timezone    string  `json:"timezone"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
}

// ForecastResponse represents the response from the Open-Meteo forecast API
type ForecastResponse struct {
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Timezone   string            `json:"timezone"`
	DailyUnits map[string]string `json:"daily_units"`
	Daily      *DailyDTO         `json:"daily"`
}

// DailyDTO holds the daily series as parallel arrays, index i of every array is the same day
type DailyDTO struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weathercode"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
}

// APIErrorResponse represents error responses from the Open-Meteo APIs
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
