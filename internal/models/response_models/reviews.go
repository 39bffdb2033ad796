package response_models

type ReviewDigest struct {
	Name          string   `json:"name"`
	AverageRating float64  `json:"average_rating"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	Tip           string   `json:"tip"`
}

// ReviewsSummary digests traveler sentiment for the places the
// itinerary touches.
type ReviewsSummary struct {
	Attractions []ReviewDigest `json:"attractions"`
	Restaurants []ReviewDigest `json:"restaurants"`
}
