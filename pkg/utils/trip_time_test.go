package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedToday = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func TestShouldFetchWeatherImminentHolidayTrip(t *testing.T) {
	assert.True(t, ShouldFetchWeather("2025-06-12", PlanningStyleHolidayBased, fixedToday))
}

func TestShouldFetchWeatherBoundaries(t *testing.T) {
	// Same day and three days out are inside the window.
	assert.True(t, ShouldFetchWeather("2025-06-10", PlanningStyleHolidayBased, fixedToday))
	assert.True(t, ShouldFetchWeather("2025-06-13", PlanningStyleHolidayBased, fixedToday))

	// The day before and four days out are not.
	assert.False(t, ShouldFetchWeather("2025-06-09", PlanningStyleHolidayBased, fixedToday))
	assert.False(t, ShouldFetchWeather("2025-06-14", PlanningStyleHolidayBased, fixedToday))
}

func TestShouldFetchWeatherFarAwayTrip(t *testing.T) {
	assert.False(t, ShouldFetchWeather("2025-06-20", PlanningStyleHolidayBased, fixedToday))
}

func TestShouldFetchWeatherSeasonBased(t *testing.T) {
	assert.False(t, ShouldFetchWeather("2025-06-12", PlanningStyleSeasonBased, fixedToday))
}

func TestShouldFetchWeatherAnchorsToUTCDate(t *testing.T) {
	// 04:30 on June 11 in IST is still June 10 in UTC; the window must
	// follow the UTC date, so callers pass now.UTC().
	ist := time.FixedZone("IST", 5*60*60+30*60)
	localNow := time.Date(2025, 6, 11, 4, 30, 0, 0, ist)

	assert.True(t, ShouldFetchWeather("2025-06-13", PlanningStyleHolidayBased, localNow.UTC()))
	assert.False(t, ShouldFetchWeather("2025-06-14", PlanningStyleHolidayBased, localNow.UTC()))
}

func TestShouldFetchWeatherBadInputs(t *testing.T) {
	assert.False(t, ShouldFetchWeather("", PlanningStyleHolidayBased, fixedToday))
	assert.False(t, ShouldFetchWeather("2025-06-12", "", fixedToday))
	assert.False(t, ShouldFetchWeather("June 12th", PlanningStyleHolidayBased, fixedToday))
	assert.False(t, ShouldFetchWeather("2025-06-12", "whenever", fixedToday))
}

func TestNormalizePlanningStyle(t *testing.T) {
	assert.Equal(t, PlanningStyleHolidayBased, NormalizePlanningStyle("Holiday based"))
	assert.Equal(t, PlanningStyleHolidayBased, NormalizePlanningStyle("holiday-based"))
	assert.Equal(t, PlanningStyleSeasonBased, NormalizePlanningStyle(" Season Based "))
	assert.Equal(t, "", NormalizePlanningStyle("Not specified"))
	assert.Equal(t, "", NormalizePlanningStyle(""))
}

func TestParseStartDate(t *testing.T) {
	parsed, ok := ParseStartDate("2025-06-12")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), parsed)

	_, ok = ParseStartDate("12/06/2025")
	assert.False(t, ok)
}
