package response_models

// BudgetBreakdown is the budget-advisor artifact. BudgetRangeByCategory
// maps category to a [min, max] pair kept as strings since the backend
// mixes numbers and currency-formatted text; PerDayEstimatePerPerson maps
// category (plus "total") to a display string.
type BudgetBreakdown struct {
	BudgetRangeByCategory   map[string][]string `json:"budget_range"`
	PerDayEstimatePerPerson map[string]string   `json:"per_day_estimate_per_person"`
	Notes                   []string            `json:"notes"`
}
