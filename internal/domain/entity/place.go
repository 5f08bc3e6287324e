package entity

// Place is the single best match returned by the geocoding lookup
type Place struct {
	Name        string  `json:"name"`
	CountryCode string  `json:"countryCode"`
	Country     string  `json:"country,omitempty"`
	Region      string  `json:"region,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}
