package response_models

type Attraction struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	WhyVisit      string `json:"why_visit"`
	BestTimeOfDay string `json:"best_time_of_day"`
}

type CuisineItem struct {
	Dish              string   `json:"dish"`
	Description       string   `json:"description"`
	RecommendedPlaces []string `json:"recommended_places"`
}

// LocalInsights is the local-expert artifact: what to see and what to eat
// at the selected destination. The traveler picks subsets of both lists.
type LocalInsights struct {
	TopAttractions []Attraction  `json:"top_attractions"`
	LocalCuisine   []CuisineItem `json:"local_cuisine"`
}
