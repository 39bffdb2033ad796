package response_models

// Step type tags for ItineraryStep.Type.
const (
	StepTypeSpot          = "spot"
	StepTypeAccommodation = "accommodation"
	StepTypeRestaurant    = "restaurant"
	StepTypeCuisine       = "cuisine"
	StepTypeBreak         = "break"
	StepTypeTravel        = "travel"
)

// StepOption is one choice inside an accommodation, restaurant or travel
// step. The three variants share the "options" wire key, so the struct
// carries the union of their fields.
type StepOption struct {
	Name           string   `json:"name,omitempty"`
	Location       string   `json:"location,omitempty"`
	PriceRange     string   `json:"price_range,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	CuisinesServed []string `json:"cuisines_served,omitempty"`
	Mode           string   `json:"mode,omitempty"`
	Time           string   `json:"time,omitempty"`
	Cost           string   `json:"cost,omitempty"`
	ArrivalTime    string   `json:"arrival_time,omitempty"`
	DepartTime     string   `json:"depart_time,omitempty"`
}

// ItineraryStep is a tagged variant: Type selects which fields are
// meaningful. spot carries name/category/visit times; cuisine carries
// dish/origin; break carries duration/activity; travel carries from/to
// plus options; accommodation and restaurant carry options only.
type ItineraryStep struct {
	Type          string       `json:"type"`
	Name          string       `json:"name,omitempty"`
	Category      string       `json:"category,omitempty"`
	VisitTime     string       `json:"visit_time,omitempty"`
	MustVisitTime string       `json:"must_visit_time,omitempty"`
	Reason        string       `json:"reason,omitempty"`
	Dish          string       `json:"dish,omitempty"`
	Origin        string       `json:"origin,omitempty"`
	TimeToConsume string       `json:"time_to_consume,omitempty"`
	Duration      string       `json:"duration,omitempty"`
	Activity      string       `json:"activity,omitempty"`
	From          string       `json:"from,omitempty"`
	To            string       `json:"to,omitempty"`
	ArrivalTime   string       `json:"arrival_time,omitempty"`
	DepartTime    string       `json:"depart_time,omitempty"`
	Options       []StepOption `json:"options,omitempty"`
}

type ItineraryDay struct {
	Day   int             `json:"day"`
	Steps []ItineraryStep `json:"steps"`
}

// Itinerary holds the day-wise schedule. Days are contiguous from 1 to the
// trip duration; step order within a day is chronological.
type Itinerary struct {
	Days []ItineraryDay `json:"itinerary"`
}
