package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// AgentServiceInterface runs one generation call per planning stage and
// returns the model's raw text. Parsing and normalization live in the
// format service; callers decide what a failure means for the wizard.
type AgentServiceInterface interface {
	RunCitySelection(ctx context.Context, prefs *response_models.TripPreferences) (string, error)
	RunLocalInsights(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error)
	RunItinerary(ctx context.Context, prefs *response_models.TripPreferences, place string, attractions []string, cuisines []string) (string, error)
	RunSafetyBrief(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error)
	RunPackingList(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error)
	RunBudgetBreakdown(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error)
	RunTransportOptions(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error)
	RunStaySuggestions(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error)
	RunReviews(ctx context.Context, place string) (string, error)
}

type AgentService struct {
	aiClient utils.GenerationClientInterface
}

func NewAgentService(aiClient utils.GenerationClientInterface) AgentServiceInterface {
	return &AgentService{aiClient: aiClient}
}

func (a *AgentService) generate(ctx context.Context, stage string, prompt string) (string, error) {
	raw, err := a.aiClient.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("Generation failed at %s stage: %v", stage, err)
		return "", utils.ErrUnexpectedBehaviorOfAI
	}
	return raw, nil
}

// writePreferencesContext renders the shared preference block that most
// stage prompts open with.
func writePreferencesContext(b *strings.Builder, prefs *response_models.TripPreferences) {
	b.WriteString("User Preferences:\n")
	b.WriteString(fmt.Sprintf("- Travel type: %s\n", prefs.TravelType))
	b.WriteString(fmt.Sprintf("- People: %d (%s)\n", prefs.NoOfPeople, prefs.GroupType))
	b.WriteString(fmt.Sprintf("- Duration: %d days\n", prefs.Duration))
	b.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(prefs.Interests, ", ")))
	if prefs.TotalBudget > 0 {
		b.WriteString(fmt.Sprintf("- Total budget: %d\n", prefs.TotalBudget))
	}
	for _, category := range utils.BudgetCategories {
		if r, ok := prefs.BudgetRange[category]; ok && r != nil {
			b.WriteString(fmt.Sprintf("- Budget for %s: %d-%d\n", category, r.Min, r.Max))
		}
	}
	if prefs.StartDate != "" {
		b.WriteString(fmt.Sprintf("- Start date: %s\n", prefs.StartDate))
	}
	if prefs.PlanningStyle != "" {
		b.WriteString(fmt.Sprintf("- Planning style: %s\n", prefs.PlanningStyle))
	}
}

func (a *AgentService) RunCitySelection(ctx context.Context, prefs *response_models.TripPreferences) (string, error) {
	var prompt strings.Builder

	prompt.WriteString("You are a travel planning expert for destinations across India. ")
	prompt.WriteString("Based on the given user preferences, suggest 4 possible travel destinations that best match them.\n\n")
	writePreferencesContext(&prompt, prefs)

	prompt.WriteString("\nFor each destination include:\n")
	prompt.WriteString("- place: Name of the destination\n")
	prompt.WriteString("- reason: Why it matches the user's preferences\n")
	prompt.WriteString("- weather_suitability: Best season/months and average temperature during that period\n")
	prompt.WriteString("- travel_cost_estimate: Estimated round-trip cost for flight, train, and bus\n")
	prompt.WriteString("- accommodation_range: Average per-night stay cost (budget to premium)\n")
	prompt.WriteString("- safety_rating: 'Low', 'Moderate', or 'High'\n")
	prompt.WriteString("- accessibility: How to reach (nearest airport/railway, road quality)\n")
	prompt.WriteString("- permit_required: 'Yes' or 'No', with details if yes\n\n")

	prompt.WriteString("Your final response MUST be ONLY the raw JSON array, no commentary or markdown fences. ")
	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(`[
  {
    "place": "Destination name",
    "reason": "Why it matches",
    "weather_suitability": "Best months, avg temp",
    "travel_cost_estimate": {
      "flight": "xxxx-xxxx",
      "train": "xxxx-xxxx",
      "bus": "xxxx-xxxx"
    },
    "accommodation_range": "xxxx-xxxx/night",
    "safety_rating": "Low/Moderate/High",
    "accessibility": "Nearest airport/railway, road condition",
    "permit_required": "Yes/No (details)"
  }
]`)

	return a.generate(ctx, "city selection", prompt.String())
}

func (a *AgentService) RunLocalInsights(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Provide detailed local insights about %s customized to the user.\n\n", place))
	writePreferencesContext(&prompt, prefs)

	prompt.WriteString("\nReturn ONLY JSON:\n")
	prompt.WriteString(`{
  "top_attractions": [
    {
      "name": "string",
      "description": "string",
      "category": "Historical|Natural|Cultural|Spiritual|Adventure|Other",
      "why_visit": "string",
      "best_time_of_day": "string"
    }
  ],
  "local_cuisine": [
    {
      "dish": "string",
      "description": "string",
      "recommended_places": ["string"]
    }
  ]
}`)

	return a.generate(ctx, "local insights", prompt.String())
}

func (a *AgentService) RunItinerary(
	ctx context.Context,
	prefs *response_models.TripPreferences,
	place string,
	attractions []string,
	cuisines []string,
) (string, error) {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create a detailed travel itinerary for a trip to %s.\n\n", place))
	writePreferencesContext(&prompt, prefs)
	prompt.WriteString(fmt.Sprintf("- Selected attractions: %s\n", strings.Join(attractions, ", ")))
	prompt.WriteString(fmt.Sprintf("- Selected cuisines: %s\n", strings.Join(cuisines, ", ")))

	prompt.WriteString("\nYour job:\n")
	prompt.WriteString(fmt.Sprintf("- Distribute attractions and cuisines across %d days.\n", prefs.Duration))
	prompt.WriteString("- Consider budget, group type, and transit time between spots.\n")
	prompt.WriteString("- Include variety across days and insert breaks.\n")
	prompt.WriteString("- Add travel steps (mode/time/approx cost) between locations.\n\n")

	prompt.WriteString("Return ONLY valid JSON in this structure:\n")
	prompt.WriteString(`{
  "itinerary": [
    {
      "day": 1,
      "steps": [
        {
          "type": "spot",
          "name": "string",
          "category": "string",
          "visit_time": "string",
          "must_visit_time": "string",
          "reason": "string",
          "arrival_time": "string",
          "depart_time": "string"
        },
        {
          "type": "accommodation",
          "options": [
            {
              "name": "string",
              "location": "string",
              "price_range": "string",
              "rating": 4.5,
              "arrival_time": "string",
              "depart_time": "string"
            }
          ]
        },
        {
          "type": "restaurant",
          "options": [
            {
              "name": "string",
              "location": "string",
              "rating": 4.2,
              "cuisines_served": ["string"],
              "arrival_time": "string",
              "depart_time": "string"
            }
          ]
        },
        {
          "type": "cuisine",
          "dish": "string",
          "origin": "string",
          "time_to_consume": "string"
        },
        {
          "type": "break",
          "duration": "string",
          "activity": "string",
          "arrival_time": "string",
          "depart_time": "string"
        },
        {
          "type": "travel",
          "from": "string",
          "to": "string",
          "options": [
            {
              "mode": "string",
              "time": "string",
              "cost": "string",
              "arrival_time": "string",
              "depart_time": "string"
            }
          ]
        }
      ]
    }
  ]
}`)

	return a.generate(ctx, "itinerary", prompt.String())
}

func (a *AgentService) RunSafetyBrief(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Provide concise safety guidance for %s tailored to this traveler.\n\n", place))
	writePreferencesContext(&prompt, prefs)

	prompt.WriteString("\nReturn ONLY JSON:\n")
	prompt.WriteString(`{
  "overall_risk_level": "Low|Moderate|High",
  "common_scams": ["string"],
  "neighborhood_safety": [
    {
      "area": "string",
      "note": "string",
      "best_time_to_visit": "string"
    }
  ],
  "local_laws_and_norms": ["string"],
  "health": {
    "food_water_safety": "string",
    "mosquito_advice": "string",
    "altitude_note": "string"
  },
  "emergency_contacts": {
    "all_emergencies": "112",
    "police": "100",
    "ambulance": "108",
    "fire": "101"
  },
  "solo_travel_tips": ["string"]
}`)

	return a.generate(ctx, "safety brief", prompt.String())
}

func (a *AgentService) RunPackingList(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Generate a practical packing list for %s. Infer the likely season from the start date.\n\n", place))
	writePreferencesContext(&prompt, prefs)

	prompt.WriteString("\nReturn ONLY JSON:\n")
	prompt.WriteString(`{
  "season": "Winter|Summer|Monsoon|Transitional",
  "essentials": [{"item":"string","why":"string","qty":"string"}],
  "clothing": [{"item":"string","why":"string","qty":"string"}],
  "footwear": [{"item":"string","why":"string","qty":"string"}],
  "toiletries_health": [{"item":"string","why":"string","qty":"string"}],
  "gadgets": [{"item":"string","why":"string","qty":"string"}],
  "documents_money": [{"item":"string","why":"string","qty":"string"}],
  "optional_activity_specific": [{"item":"string","why":"string","qty":"string"}]
}`)

	return a.generate(ctx, "packing list", prompt.String())
}

func (a *AgentService) RunBudgetBreakdown(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString("If a total budget is given, allocate it into ranges for transport, accommodation, food, entertainment. ")
	prompt.WriteString(fmt.Sprintf("If per-category ranges are given, validate them and add per-day estimates for %d days and %d people.\n\n",
		prefs.Duration, prefs.NoOfPeople))
	writePreferencesContext(&prompt, prefs)
	if place != "" {
		prompt.WriteString(fmt.Sprintf("- Destination: %s\n", place))
	}

	prompt.WriteString("\nReturn ONLY JSON:\n")
	prompt.WriteString(`{
  "budget_range": {
    "transport": ["min","max"],
    "accommodation": ["min","max"],
    "food": ["min","max"],
    "entertainment": ["min","max"]
  },
  "per_day_estimate_per_person": {
    "transport": "amount",
    "accommodation": "amount",
    "food": "amount",
    "entertainment": "amount",
    "total": "amount"
  },
  "notes": ["string"]
}`)

	return a.generate(ctx, "budget breakdown", prompt.String())
}

func (a *AgentService) RunTransportOptions(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Recommend intercity and in-city transport options for %s.\n\n", place))
	writePreferencesContext(&prompt, prefs)

	prompt.WriteString("\nReturn ONLY JSON:\n")
	prompt.WriteString(`{
  "intercity": [
    {
      "mode": "Flight|Train|Volvo Bus|Self-drive|Cab",
      "from": "Common origin (generic)",
      "to": "` + place + `",
      "time": "e.g., 2h",
      "approx_cost": "amount",
      "pro_tip": "string"
    }
  ],
  "in_city": [
    {
      "mode": "Metro|Local Bus|Auto|Cab|Rental Scooter|Walk",
      "when_to_use": "string",
      "approx_cost": "amount",
      "coverage": "Area/neighborhood coverage",
      "pro_tip": "string"
    }
  ]
}`)

	return a.generate(ctx, "transport options", prompt.String())
}

func (a *AgentService) RunStaySuggestions(ctx context.Context, prefs *response_models.TripPreferences, place string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Propose accommodation options in %s across budget tiers.\n\n", place))
	writePreferencesContext(&prompt, prefs)

	prompt.WriteString("\nReturn ONLY JSON:\n")
	prompt.WriteString(`{
  "stays": [
    {
      "name": "string",
      "type": "Hostel|Budget Hotel|Boutique|Resort|Homestay|Heritage",
      "area": "string",
      "approx_price_per_night": "amount",
      "suits": "Solo|Couple|Family|Friends",
      "vibe": "Calm|Nightlife|Scenic|Central|Heritage",
      "why": "string"
    }
  ],
  "neighborhoods": [
    {
      "name": "string",
      "good_for": ["string"],
      "avoid_if": ["string"]
    }
  ]
}`)

	return a.generate(ctx, "stay suggestions", prompt.String())
}

func (a *AgentService) RunReviews(ctx context.Context, place string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Summarize likely reviews and ratings patterns for %s (typical traveler sentiment).\n\n", place))

	prompt.WriteString("Return ONLY JSON:\n")
	prompt.WriteString(`{
  "attractions": [
    {
      "name": "string",
      "average_rating": 4.3,
      "pros": ["string"],
      "cons": ["string"],
      "tip": "string"
    }
  ],
  "restaurants": [
    {
      "name": "string",
      "average_rating": 4.2,
      "pros": ["string"],
      "cons": ["string"],
      "tip": "string"
    }
  ]
}`)

	return a.generate(ctx, "reviews", prompt.String())
}
