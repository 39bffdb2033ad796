package response_models

type StaySuggestion struct {
	Name                string `json:"name"`
	Type                string `json:"type"`
	Area                string `json:"area"`
	ApproxPricePerNight string `json:"approx_price_per_night"`
	Suits               string `json:"suits"`
	Vibe                string `json:"vibe"`
	Why                 string `json:"why"`
}

type Neighborhood struct {
	Name    string `json:"name"`
	GoodFor string `json:"good_for"`
	AvoidIf string `json:"avoid_if"`
}

type StayOptions struct {
	Stays         []StaySuggestion `json:"stays"`
	Neighborhoods []Neighborhood   `json:"neighborhoods"`
}
