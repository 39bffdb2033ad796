package utils

import (
	"yatra/internal/models/response_models"
)

// BudgetCategories are the four fixed spending categories every budget
// breakdown covers, in display order.
var BudgetCategories = []string{"transport", "accommodation", "food", "entertainment"}

// budgetBands holds the fraction-of-total band per category. The bands
// overlap and do not sum to 100%; the spread is a deliberate heuristic
// carried over unchanged, not an exact partition.
var budgetBands = map[string][2]float64{
	"transport":     {0.25, 0.35},
	"accommodation": {0.35, 0.45},
	"food":          {0.15, 0.25},
	"entertainment": {0.05, 0.15},
}

// DeriveBudgetRanges splits a total budget into per-category ranges. Caller
// supplied ranges win: if existing has at least one non-nil category it is
// returned untouched. Otherwise a non-negative total is split along the
// fixed bands, values floored to integers. Callers decide what an absent
// total means; a negative total yields nil.
func DeriveBudgetRanges(total int, existing map[string]*response_models.BudgetRange) map[string]*response_models.BudgetRange {
	for _, r := range existing {
		if r != nil {
			return existing
		}
	}

	if total < 0 {
		return nil
	}

	ranges := make(map[string]*response_models.BudgetRange, len(budgetBands))
	for category, band := range budgetBands {
		ranges[category] = &response_models.BudgetRange{
			Min: int(band[0] * float64(total)),
			Max: int(band[1] * float64(total)),
		}
	}
	return ranges
}

// CoversAllCategories reports whether ranges assigns a non-nil range to
// every fixed category. Partial coverage is treated as no coverage at all.
func CoversAllCategories(ranges map[string]*response_models.BudgetRange) bool {
	if len(ranges) == 0 {
		return false
	}
	for _, category := range BudgetCategories {
		if ranges[category] == nil {
			return false
		}
	}
	return true
}
