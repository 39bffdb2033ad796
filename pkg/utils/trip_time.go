package utils

import (
	"strings"
	"time"
)

const startDateLayout = "2006-01-02"

// PlanningStyleHolidayBased marks trips planned around a concrete start date.
const PlanningStyleHolidayBased = "holiday_based"

// PlanningStyleSeasonBased marks trips planned around a season rather than a date.
const PlanningStyleSeasonBased = "season_based"

// NormalizePlanningStyle maps user-facing labels ("Holiday based",
// "Season-based", "Not specified") onto the canonical style tokens.
// Unrecognized input normalizes to "".
func NormalizePlanningStyle(style string) string {
	normalized := strings.ToLower(strings.TrimSpace(style))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	switch normalized {
	case PlanningStyleHolidayBased:
		return PlanningStyleHolidayBased
	case PlanningStyleSeasonBased:
		return PlanningStyleSeasonBased
	default:
		return ""
	}
}

// ParseStartDate parses a YYYY-MM-DD trip start date.
func ParseStartDate(startDate string) (time.Time, bool) {
	t, err := time.Parse(startDateLayout, strings.TrimSpace(startDate))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ShouldFetchWeather decides whether a live weather lookup is worth doing.
// Live conditions are only actionable when the trip is imminent (starts
// within 3 days of today) and the user planned around a concrete holiday
// date rather than a season. Absent or unparseable inputs gate to false.
func ShouldFetchWeather(startDate, planningStyle string, today time.Time) bool {
	if startDate == "" || planningStyle == "" {
		return false
	}
	if NormalizePlanningStyle(planningStyle) != PlanningStyleHolidayBased {
		return false
	}

	start, ok := ParseStartDate(startDate)
	if !ok {
		return false
	}

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	daysUntilTrip := int(start.Sub(todayDate).Hours() / 24)

	return daysUntilTrip >= 0 && daysUntilTrip <= 3
}
