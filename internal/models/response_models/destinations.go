package response_models

// WeatherSnapshot is a point-in-time reading from the live weather
// collaborator, attached to a candidate only when the trip is imminent.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// DestinationCandidate is one suggested destination with the comparison
// info the traveler picks from. TravelCostEstimate maps transport mode
// (flight/train/bus) to a cost string.
type DestinationCandidate struct {
	Place              string            `json:"place"`
	Reason             string            `json:"reason"`
	WeatherSuitability string            `json:"weather_suitability"`
	TravelCostEstimate map[string]string `json:"travel_cost_estimate"`
	AccommodationRange string            `json:"accommodation_range"`
	SafetyRating       string            `json:"safety_rating"`
	Accessibility      string            `json:"accessibility"`
	PermitRequired     string            `json:"permit_required"`
	Photos             []string          `json:"photos"`
	Weather            *WeatherSnapshot  `json:"weather,omitempty"`
}
