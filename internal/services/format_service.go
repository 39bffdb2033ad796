package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"

	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

const (
	unknownPlace     = "Unknown"
	noReasonProvided = "No reason provided."
	missingField     = "—"
)

// FormatServiceInterface turns raw model text into fully-populated
// artifacts. Every method returns a usable value even for garbage input;
// the boolean reports whether the text actually parsed, so callers can
// mark the stage degraded while still moving on.
type FormatServiceInterface interface {
	FormatCitySuggestions(raw string) ([]response_models.DestinationCandidate, bool)
	FormatLocalInsights(raw string) (*response_models.LocalInsights, bool)
	FormatItinerary(raw string, duration int) (*response_models.Itinerary, bool)
	FormatSafetyBrief(raw string) (*response_models.SafetyBrief, bool)
	FormatPackingList(raw string) (*response_models.PackingList, bool)
	FormatBudgetBreakdown(raw string) (*response_models.BudgetBreakdown, bool)
	FormatTransportOptions(raw string) (*response_models.TransportOptions, bool)
	FormatStayOptions(raw string) (*response_models.StayOptions, bool)
	FormatReviewsSummary(raw string) (*response_models.ReviewsSummary, bool)
}

type FormatService struct{}

func NewFormatService() FormatServiceInterface {
	return &FormatService{}
}

func extractInto(raw string, out interface{}) bool {
	payload, ok := utils.ExtractJSON(raw)
	if !ok {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		log.Printf("Failed to unmarshal extracted JSON: %v", err)
		return false
	}
	return true
}

func (f *FormatService) FormatCitySuggestions(raw string) ([]response_models.DestinationCandidate, bool) {
	var parsed []response_models.DestinationCandidate
	ok := extractInto(raw, &parsed)

	formatted := make([]response_models.DestinationCandidate, 0, len(parsed))
	for _, item := range parsed {
		if item.Place == "" {
			item.Place = unknownPlace
		}
		if item.Reason == "" {
			item.Reason = noReasonProvided
		}
		if item.WeatherSuitability == "" {
			item.WeatherSuitability = missingField
		}
		if item.TravelCostEstimate == nil {
			item.TravelCostEstimate = map[string]string{}
		}
		if item.AccommodationRange == "" {
			item.AccommodationRange = missingField
		}
		if item.SafetyRating == "" {
			item.SafetyRating = missingField
		}
		if item.Accessibility == "" {
			item.Accessibility = missingField
		}
		if item.PermitRequired == "" {
			item.PermitRequired = missingField
		}
		if item.Photos == nil {
			item.Photos = []string{}
		}
		formatted = append(formatted, item)
	}
	return formatted, ok
}

func (f *FormatService) FormatLocalInsights(raw string) (*response_models.LocalInsights, bool) {
	var parsed response_models.LocalInsights
	ok := extractInto(raw, &parsed)

	insights := response_models.LocalInsights{
		TopAttractions: make([]response_models.Attraction, 0, len(parsed.TopAttractions)),
		LocalCuisine:   make([]response_models.CuisineItem, 0, len(parsed.LocalCuisine)),
	}
	for _, attraction := range parsed.TopAttractions {
		if attraction.Name == "" {
			continue
		}
		insights.TopAttractions = append(insights.TopAttractions, attraction)
	}
	for _, cuisine := range parsed.LocalCuisine {
		if cuisine.Dish == "" {
			continue
		}
		if cuisine.RecommendedPlaces == nil {
			cuisine.RecommendedPlaces = []string{}
		}
		insights.LocalCuisine = append(insights.LocalCuisine, cuisine)
	}
	return &insights, ok
}

// FormatItinerary renumbers days to run contiguously from 1 and fits the
// schedule to the requested duration: excess days are cut and missing days
// padded with a free-time day, so the itinerary always covers exactly the
// whole trip even when the model skips or invents days.
func (f *FormatService) FormatItinerary(raw string, duration int) (*response_models.Itinerary, bool) {
	var parsed response_models.Itinerary
	ok := extractInto(raw, &parsed)

	days := make([]response_models.ItineraryDay, 0, len(parsed.Days))
	for _, day := range parsed.Days {
		if len(day.Steps) == 0 {
			continue
		}
		steps := make([]response_models.ItineraryStep, 0, len(day.Steps))
		for _, step := range day.Steps {
			if step.Type == "" {
				continue
			}
			steps = append(steps, step)
		}
		if len(steps) == 0 {
			continue
		}
		day.Steps = steps
		days = append(days, day)
	}

	sort.SliceStable(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	for i := range days {
		days[i].Day = i + 1
	}
	if duration > 0 && len(days) > duration {
		days = days[:duration]
	}
	for len(days) < duration {
		days = append(days, response_models.ItineraryDay{
			Day: len(days) + 1,
			Steps: []response_models.ItineraryStep{
				{
					Type:     response_models.StepTypeBreak,
					Duration: "Full day",
					Activity: "Free time",
				},
			},
		})
	}

	return &response_models.Itinerary{Days: days}, ok
}

func (f *FormatService) FormatSafetyBrief(raw string) (*response_models.SafetyBrief, bool) {
	var parsed response_models.SafetyBrief
	ok := extractInto(raw, &parsed)

	if parsed.OverallRiskLevel == "" {
		parsed.OverallRiskLevel = unknownPlace
	}
	if parsed.CommonScams == nil {
		parsed.CommonScams = []string{}
	}
	if parsed.NeighborhoodSafety == nil {
		parsed.NeighborhoodSafety = []response_models.NeighborhoodNote{}
	}
	if parsed.LocalLawsAndNorms == nil {
		parsed.LocalLawsAndNorms = []string{}
	}
	if parsed.EmergencyContacts == nil {
		parsed.EmergencyContacts = map[string]string{}
	}
	if parsed.SoloTravelTips == nil {
		parsed.SoloTravelTips = []string{}
	}
	return &parsed, ok
}

func (f *FormatService) FormatPackingList(raw string) (*response_models.PackingList, bool) {
	var parsed response_models.PackingList
	ok := extractInto(raw, &parsed)

	if parsed.Season == "" {
		parsed.Season = unknownPlace
	}
	groups := []*[]response_models.PackingItem{
		&parsed.Essentials,
		&parsed.Clothing,
		&parsed.Footwear,
		&parsed.ToiletriesHealth,
		&parsed.Gadgets,
		&parsed.DocumentsMoney,
		&parsed.OptionalActivitySpecific,
	}
	for _, group := range groups {
		kept := make([]response_models.PackingItem, 0, len(*group))
		for _, item := range *group {
			if item.Item == "" {
				continue
			}
			kept = append(kept, item)
		}
		*group = kept
	}
	return &parsed, ok
}

// FormatBudgetBreakdown tolerates the model mixing numbers and strings in
// the range pairs and estimates, coercing everything to strings and
// guaranteeing an entry for each budget category.
func (f *FormatService) FormatBudgetBreakdown(raw string) (*response_models.BudgetBreakdown, bool) {
	var parsed struct {
		BudgetRange             map[string][]interface{} `json:"budget_range"`
		PerDayEstimatePerPerson map[string]interface{}   `json:"per_day_estimate_per_person"`
		Notes                   []interface{}            `json:"notes"`
	}
	ok := extractInto(raw, &parsed)

	breakdown := response_models.BudgetBreakdown{
		BudgetRangeByCategory:   make(map[string][]string, len(utils.BudgetCategories)),
		PerDayEstimatePerPerson: make(map[string]string, len(parsed.PerDayEstimatePerPerson)),
		Notes:                   make([]string, 0, len(parsed.Notes)),
	}
	for key, pair := range parsed.BudgetRange {
		coerced := make([]string, 0, len(pair))
		for _, v := range pair {
			coerced = append(coerced, coerceToString(v))
		}
		breakdown.BudgetRangeByCategory[key] = coerced
	}
	for _, category := range utils.BudgetCategories {
		if _, present := breakdown.BudgetRangeByCategory[category]; !present {
			breakdown.BudgetRangeByCategory[category] = []string{}
		}
	}
	for key, v := range parsed.PerDayEstimatePerPerson {
		breakdown.PerDayEstimatePerPerson[key] = coerceToString(v)
	}
	for _, note := range parsed.Notes {
		if s := coerceToString(note); s != "" {
			breakdown.Notes = append(breakdown.Notes, s)
		}
	}
	return &breakdown, ok
}

func (f *FormatService) FormatTransportOptions(raw string) (*response_models.TransportOptions, bool) {
	var parsed response_models.TransportOptions
	ok := extractInto(raw, &parsed)

	options := response_models.TransportOptions{
		Intercity: make([]response_models.IntercityOption, 0, len(parsed.Intercity)),
		InCity:    make([]response_models.InCityOption, 0, len(parsed.InCity)),
	}
	for _, option := range parsed.Intercity {
		if option.Mode == "" {
			continue
		}
		options.Intercity = append(options.Intercity, option)
	}
	for _, option := range parsed.InCity {
		if option.Mode == "" {
			continue
		}
		options.InCity = append(options.InCity, option)
	}
	return &options, ok
}

func (f *FormatService) FormatStayOptions(raw string) (*response_models.StayOptions, bool) {
	var parsed response_models.StayOptions
	ok := extractInto(raw, &parsed)

	options := response_models.StayOptions{
		Stays:         make([]response_models.StaySuggestion, 0, len(parsed.Stays)),
		Neighborhoods: make([]response_models.Neighborhood, 0, len(parsed.Neighborhoods)),
	}
	for _, stay := range parsed.Stays {
		if stay.Name == "" {
			continue
		}
		options.Stays = append(options.Stays, stay)
	}
	for _, hood := range parsed.Neighborhoods {
		if hood.Name == "" {
			continue
		}
		options.Neighborhoods = append(options.Neighborhoods, hood)
	}
	return &options, ok
}

func (f *FormatService) FormatReviewsSummary(raw string) (*response_models.ReviewsSummary, bool) {
	var parsed response_models.ReviewsSummary
	ok := extractInto(raw, &parsed)

	summary := response_models.ReviewsSummary{
		Attractions: make([]response_models.ReviewDigest, 0, len(parsed.Attractions)),
		Restaurants: make([]response_models.ReviewDigest, 0, len(parsed.Restaurants)),
	}
	summary.Attractions = appendValidDigests(summary.Attractions, parsed.Attractions)
	summary.Restaurants = appendValidDigests(summary.Restaurants, parsed.Restaurants)
	return &summary, ok
}

func appendValidDigests(dst, src []response_models.ReviewDigest) []response_models.ReviewDigest {
	for _, digest := range src {
		if digest.Name == "" {
			continue
		}
		if digest.Pros == nil {
			digest.Pros = []string{}
		}
		if digest.Cons == nil {
			digest.Cons = []string{}
		}
		dst = append(dst, digest)
	}
	return dst
}

func coerceToString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
