package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

// WizardServiceInterface drives a planning session through its stages.
// Forward consumes the current stage's input and generates the next
// artifact; generation failures degrade the stage with a defaulted
// artifact instead of stalling the session.
type WizardServiceInterface interface {
	CreateSession(ctx context.Context, userID string, prefs *response_models.TripPreferences) (*response_models.SessionView, error)
	GetSession(ctx context.Context, sessionID string, userID string) (*response_models.SessionView, error)
	Forward(ctx context.Context, sessionID string, userID string, req *request_models.ForwardRequest) (*response_models.SessionView, error)
	Back(ctx context.Context, sessionID string, userID string) (*response_models.SessionView, error)
	Reset(ctx context.Context, sessionID string, userID string) (*response_models.SessionView, error)
	Export(ctx context.Context, sessionID string, userID string) (*response_models.TripPlanExport, error)
}

type WizardService struct {
	sessionRepo    repositories.SessionRepository
	agentService   AgentServiceInterface
	formatService  FormatServiceInterface
	weatherService WeatherServiceInterface
	photoService   PhotoServiceInterface
}

func NewWizardService(
	sessionRepo repositories.SessionRepository,
	agentService AgentServiceInterface,
	formatService FormatServiceInterface,
	weatherService WeatherServiceInterface,
	photoService PhotoServiceInterface,
) WizardServiceInterface {
	return &WizardService{
		sessionRepo:    sessionRepo,
		agentService:   agentService,
		formatService:  formatService,
		weatherService: weatherService,
		photoService:   photoService,
	}
}

func (w *WizardService) CreateSession(ctx context.Context, userID string, prefs *response_models.TripPreferences) (*response_models.SessionView, error) {
	state := response_models.WizardState{Stage: response_models.StageSuggestions}
	if prefs != nil {
		normalizePreferences(prefs)
		state.Preferences = prefs
	}

	blob, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	session, err := w.sessionRepo.CreateSession(ctx, userID, state.Stage, blob)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return sessionView(session.ID.String(), &state), nil
}

func (w *WizardService) GetSession(ctx context.Context, sessionID string, userID string) (*response_models.SessionView, error) {
	_, state, err := w.loadSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	return sessionView(sessionID, state), nil
}

func (w *WizardService) Forward(ctx context.Context, sessionID string, userID string, req *request_models.ForwardRequest) (*response_models.SessionView, error) {
	_, state, err := w.loadSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &request_models.ForwardRequest{}
	}

	switch state.Stage {
	case response_models.StageSuggestions:
		err = w.forwardSuggestions(ctx, state, req)
	case response_models.StageDestination:
		err = w.forwardDestination(ctx, state, req)
	case response_models.StageInsights:
		err = w.forwardInsights(ctx, state, req)
	case response_models.StageItinerary:
		w.runArtifactStage(ctx, state, "safety")
	case response_models.StageSafety:
		w.runArtifactStage(ctx, state, "packing")
	case response_models.StagePacking:
		w.runArtifactStage(ctx, state, "budget")
	case response_models.StageBudget:
		w.runArtifactStage(ctx, state, "transport")
	case response_models.StageTransport:
		w.runArtifactStage(ctx, state, "stay")
	case response_models.StageStay:
		w.runArtifactStage(ctx, state, "reviews")
	case response_models.StageReviews:
		// reviews are already generated; the step just reaches export
	default:
		return nil, utils.ErrStageOutOfOrder
	}
	if err != nil {
		return nil, err
	}

	state.Stage++
	if err := w.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return sessionView(sessionID, state), nil
}

func (w *WizardService) Back(ctx context.Context, sessionID string, userID string) (*response_models.SessionView, error) {
	_, state, err := w.loadSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	if state.Stage > 0 {
		state.Stage--
		if err := w.saveState(ctx, sessionID, state); err != nil {
			return nil, err
		}
	}
	return sessionView(sessionID, state), nil
}

func (w *WizardService) Reset(ctx context.Context, sessionID string, userID string) (*response_models.SessionView, error) {
	_, state, err := w.loadSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	*state = response_models.WizardState{Stage: response_models.StageSuggestions}
	if err := w.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return sessionView(sessionID, state), nil
}

// Export assembles the final plan from stored artifacts. It never calls
// a generator; everything was produced on the way here.
func (w *WizardService) Export(ctx context.Context, sessionID string, userID string) (*response_models.TripPlanExport, error) {
	_, state, err := w.loadSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if state.Stage != response_models.StageExport {
		return nil, utils.ErrStageOutOfOrder
	}

	suggestions := state.Suggestions
	if suggestions == nil {
		suggestions = []response_models.DestinationCandidate{}
	}
	attractions := state.SelectedAttractions
	if attractions == nil {
		attractions = []string{}
	}
	cuisines := state.SelectedCuisines
	if cuisines == nil {
		cuisines = []string{}
	}

	return &response_models.TripPlanExport{
		TripPlan: response_models.TripPlan{
			Preferences:         state.Preferences,
			SelectedPlace:       state.SelectedPlace,
			Suggestions:         suggestions,
			LocalInfo:           state.LocalInfo,
			SelectedAttractions: attractions,
			SelectedCuisines:    cuisines,
			Itinerary:           state.Itinerary,
			Safety:              state.Safety,
			Packing:             state.Packing,
			Budget:              state.Budget,
			Transport:           state.Transport,
			Accommodation:       state.Accommodation,
			Reviews:             state.Reviews,
		},
	}, nil
}

// --- stage handlers ---

func (w *WizardService) forwardSuggestions(ctx context.Context, state *response_models.WizardState, req *request_models.ForwardRequest) error {
	prefs := req.Preferences
	if prefs == nil {
		prefs = state.Preferences
	}
	if prefs == nil || prefs.Duration <= 0 || prefs.NoOfPeople <= 0 {
		return utils.ErrInvalidInput
	}

	normalizePreferences(prefs)
	state.Preferences = prefs

	degraded := false
	raw, err := w.agentService.RunCitySelection(ctx, prefs)
	var suggestions []response_models.DestinationCandidate
	if err != nil {
		degraded = true
		suggestions = []response_models.DestinationCandidate{}
	} else {
		var ok bool
		suggestions, ok = w.formatService.FormatCitySuggestions(raw)
		if !ok || len(suggestions) == 0 {
			degraded = true
		}
	}

	// The imminence window is anchored to the UTC date, not server-local time.
	fetchWeather := utils.ShouldFetchWeather(prefs.StartDate, prefs.PlanningStyle, time.Now().UTC())
	for i := range suggestions {
		place := suggestions[i].Place
		if place == "" || place == unknownPlace {
			continue
		}
		suggestions[i].Photos = w.photoService.SearchPhotos(ctx, place)
		if fetchWeather {
			snapshot, err := w.weatherService.GetCurrentWeather(ctx, place)
			if err != nil {
				log.Printf("Weather lookup failed for %s: %v", place, err)
				continue
			}
			suggestions[i].Weather = snapshot
		}
	}

	state.Suggestions = suggestions
	if degraded {
		markDegraded(state, "suggestions")
	}
	return nil
}

func (w *WizardService) forwardDestination(ctx context.Context, state *response_models.WizardState, req *request_models.ForwardRequest) error {
	if req.Place == "" {
		return utils.ErrSelectionRequired
	}
	// With real suggestions on hand, the pick must be one of them. A
	// degraded suggestions stage offers nothing to match against, so
	// any non-empty place is accepted.
	if len(state.Suggestions) > 0 {
		found := false
		for _, candidate := range state.Suggestions {
			if candidate.Place == req.Place {
				found = true
				break
			}
		}
		if !found {
			return utils.ErrInvalidInput
		}
	}
	state.SelectedPlace = req.Place

	raw, err := w.agentService.RunLocalInsights(ctx, state.Preferences, state.SelectedPlace)
	if err != nil {
		state.LocalInfo = &response_models.LocalInsights{
			TopAttractions: []response_models.Attraction{},
			LocalCuisine:   []response_models.CuisineItem{},
		}
		markDegraded(state, "insights")
		return nil
	}

	insights, ok := w.formatService.FormatLocalInsights(raw)
	state.LocalInfo = insights
	if !ok {
		markDegraded(state, "insights")
	}
	return nil
}

func (w *WizardService) forwardInsights(ctx context.Context, state *response_models.WizardState, req *request_models.ForwardRequest) error {
	attractions := dedupe(req.SelectedAttractions)
	cuisines := dedupe(req.SelectedCuisines)

	if state.LocalInfo != nil {
		if len(state.LocalInfo.TopAttractions) > 0 {
			offered := make(map[string]bool, len(state.LocalInfo.TopAttractions))
			for _, attraction := range state.LocalInfo.TopAttractions {
				offered[attraction.Name] = true
			}
			attractions = filterByOffered(attractions, offered)
		}
		if len(state.LocalInfo.LocalCuisine) > 0 {
			offered := make(map[string]bool, len(state.LocalInfo.LocalCuisine))
			for _, cuisine := range state.LocalInfo.LocalCuisine {
				offered[cuisine.Dish] = true
			}
			cuisines = filterByOffered(cuisines, offered)
		}
	}

	if len(attractions) == 0 && len(cuisines) == 0 {
		return utils.ErrSelectionRequired
	}
	state.SelectedAttractions = attractions
	state.SelectedCuisines = cuisines

	duration := state.Preferences.Duration
	raw, err := w.agentService.RunItinerary(ctx, state.Preferences, state.SelectedPlace, attractions, cuisines)
	if err != nil {
		itinerary, _ := w.formatService.FormatItinerary("", duration)
		state.Itinerary = itinerary
		markDegraded(state, "itinerary")
		return nil
	}

	itinerary, ok := w.formatService.FormatItinerary(raw, duration)
	state.Itinerary = itinerary
	if !ok {
		markDegraded(state, "itinerary")
	}
	return nil
}

// runArtifactStage generates one of the input-free artifacts. These
// stages take nothing from the request and can always fall back to a
// defaulted artifact.
func (w *WizardService) runArtifactStage(ctx context.Context, state *response_models.WizardState, artifact string) {
	prefs := state.Preferences
	place := state.SelectedPlace

	var raw string
	var err error
	switch artifact {
	case "safety":
		raw, err = w.agentService.RunSafetyBrief(ctx, prefs, place)
	case "packing":
		raw, err = w.agentService.RunPackingList(ctx, prefs, place)
	case "budget":
		raw, err = w.agentService.RunBudgetBreakdown(ctx, prefs, place)
	case "transport":
		raw, err = w.agentService.RunTransportOptions(ctx, prefs, place)
	case "stay":
		raw, err = w.agentService.RunStaySuggestions(ctx, prefs, place)
	case "reviews":
		raw, err = w.agentService.RunReviews(ctx, place)
	}
	if err != nil {
		raw = ""
	}

	ok := true
	switch artifact {
	case "safety":
		state.Safety, ok = w.formatService.FormatSafetyBrief(raw)
	case "packing":
		state.Packing, ok = w.formatService.FormatPackingList(raw)
	case "budget":
		state.Budget, ok = w.formatService.FormatBudgetBreakdown(raw)
	case "transport":
		state.Transport, ok = w.formatService.FormatTransportOptions(raw)
	case "stay":
		state.Accommodation, ok = w.formatService.FormatStayOptions(raw)
	case "reviews":
		state.Reviews, ok = w.formatService.FormatReviewsSummary(raw)
	}

	if err != nil || !ok {
		markDegraded(state, artifact)
	}
}

// --- helpers ---

func (w *WizardService) loadSession(ctx context.Context, sessionID string, userID string) (*db_models.TripSession, *response_models.WizardState, error) {
	session, err := w.sessionRepo.GetSessionById(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.UserID != userID {
		return nil, nil, utils.ErrSessionNotFound
	}

	var state response_models.WizardState
	if len(session.State) > 0 {
		if err := json.Unmarshal(session.State, &state); err != nil {
			log.Printf("Corrupt session state for %s: %v", sessionID, err)
			return nil, nil, utils.ErrDatabaseError
		}
	}
	return session, &state, nil
}

func (w *WizardService) saveState(ctx context.Context, sessionID string, state *response_models.WizardState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := w.sessionRepo.UpdateSessionState(ctx, sessionID, state.Stage, blob); err != nil {
		if err == utils.ErrSessionNotFound {
			return err
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func normalizePreferences(prefs *response_models.TripPreferences) {
	prefs.PlanningStyle = utils.NormalizePlanningStyle(prefs.PlanningStyle)
	// Partial category coverage counts as no coverage; a zero total is an
	// absent one, not a zero budget.
	if !utils.CoversAllCategories(prefs.BudgetRange) {
		prefs.BudgetRange = nil
		if prefs.TotalBudget > 0 {
			prefs.BudgetRange = utils.DeriveBudgetRanges(prefs.TotalBudget, nil)
		}
	}
}

func sessionView(sessionID string, state *response_models.WizardState) *response_models.SessionView {
	return &response_models.SessionView{
		SessionID: sessionID,
		StageName: response_models.StageName(state.Stage),
		State:     *state,
	}
}

func markDegraded(state *response_models.WizardState, stageName string) {
	for _, name := range state.DegradedStages {
		if name == stageName {
			return
		}
	}
	state.DegradedStages = append(state.DegradedStages, stageName)
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		unique = append(unique, v)
	}
	return unique
}

func filterByOffered(values []string, offered map[string]bool) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if offered[v] {
			kept = append(kept, v)
		}
	}
	return kept
}
