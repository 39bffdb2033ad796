package response_models

// Stage indices for the planning wizard. The wizard advances one stage
// per forward step; the export stage is terminal.
const (
	StageSuggestions = iota
	StageDestination
	StageInsights
	StageItinerary
	StageSafety
	StagePacking
	StageBudget
	StageTransport
	StageStay
	StageReviews
	StageExport
)

var StageNames = [...]string{
	"suggestions",
	"destination",
	"insights",
	"itinerary",
	"safety",
	"packing",
	"budget",
	"transport",
	"stay",
	"reviews",
	"export",
}

// StageName returns a printable name for a stage index.
func StageName(stage int) string {
	if stage < 0 || stage >= len(StageNames) {
		return "unknown"
	}
	return StageNames[stage]
}

// WizardState is the full accumulated state of a planning session. It is
// persisted as a JSON blob and every artifact slot is filled in stage
// order, so earlier slots are stable once the wizard moves past them.
type WizardState struct {
	Stage               int                    `json:"stage"`
	Preferences         *TripPreferences       `json:"preferences,omitempty"`
	Suggestions         []DestinationCandidate `json:"suggestions,omitempty"`
	SelectedPlace       string                 `json:"selected_place,omitempty"`
	LocalInfo           *LocalInsights         `json:"local_info,omitempty"`
	SelectedAttractions []string               `json:"selected_attractions,omitempty"`
	SelectedCuisines    []string               `json:"selected_cuisines,omitempty"`
	Itinerary           *Itinerary             `json:"itinerary,omitempty"`
	Safety              *SafetyBrief           `json:"safety,omitempty"`
	Packing             *PackingList           `json:"packing,omitempty"`
	Budget              *BudgetBreakdown       `json:"budget,omitempty"`
	Transport           *TransportOptions      `json:"transport,omitempty"`
	Accommodation       *StayOptions           `json:"accommodation,omitempty"`
	Reviews             *ReviewsSummary        `json:"reviews,omitempty"`
	DegradedStages      []string               `json:"degraded_stages,omitempty"`
}

// SessionView is what the API returns for a session lookup.
type SessionView struct {
	SessionID string      `json:"session_id"`
	StageName string      `json:"stage_name"`
	State     WizardState `json:"state"`
}

// TripPlan is the export payload body, with every artifact present even
// when empty so downstream consumers get a stable shape.
type TripPlan struct {
	Preferences         *TripPreferences       `json:"preferences"`
	SelectedPlace       string                 `json:"selected_place"`
	Suggestions         []DestinationCandidate `json:"suggestions"`
	LocalInfo           *LocalInsights         `json:"local_info"`
	SelectedAttractions []string               `json:"selected_attractions"`
	SelectedCuisines    []string               `json:"selected_cuisines"`
	Itinerary           *Itinerary             `json:"itinerary"`
	Safety              *SafetyBrief           `json:"safety"`
	Packing             *PackingList           `json:"packing"`
	Budget              *BudgetBreakdown       `json:"budget"`
	Transport           *TransportOptions      `json:"transport"`
	Accommodation       *StayOptions           `json:"accommodation"`
	Reviews             *ReviewsSummary        `json:"reviews"`
}

type TripPlanExport struct {
	TripPlan TripPlan `json:"tripPlan"`
}
