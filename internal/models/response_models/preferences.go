package response_models

// BudgetRange is an inclusive min/max spend for one category, in whole
// currency units.
type BudgetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TripPreferences is everything the traveler tells the wizard up front.
// TotalBudget and StartDate are optional; zero/empty means not supplied.
// BudgetRange, when present, must cover all four categories (transport,
// accommodation, food, entertainment) or it is discarded as absent.
type TripPreferences struct {
	TravelType    string                  `json:"travel_type"`
	TotalBudget   int                     `json:"total_budget,omitempty"`
	BudgetRange   map[string]*BudgetRange `json:"budget_range,omitempty"`
	NoOfPeople    int                     `json:"no_of_people"`
	GroupType     string                  `json:"group_type"`
	Duration      int                     `json:"duration"`
	Interests     []string                `json:"interests"`
	StartDate     string                  `json:"start_date,omitempty"`
	PlanningStyle string                  `json:"planning_style,omitempty"`
}
