package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// --- test doubles ---

type memorySessionRepo struct {
	sessions map[string]*db_models.TripSession
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[string]*db_models.TripSession)}
}

func (m *memorySessionRepo) CreateSession(_ context.Context, userID string, stage int, state []byte) (*db_models.TripSession, error) {
	session := &db_models.TripSession{
		UserID: userID,
		Stage:  stage,
		State:  state,
	}
	session.ID = uuid.New()
	m.sessions[session.ID.String()] = session
	return session, nil
}

func (m *memorySessionRepo) GetSessionById(_ context.Context, sessionID string) (*db_models.TripSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (m *memorySessionRepo) UpdateSessionState(_ context.Context, sessionID string, stage int, state []byte) error {
	session, ok := m.sessions[sessionID]
	if !ok {
		return utils.ErrSessionNotFound
	}
	session.Stage = stage
	session.State = state
	return nil
}

type stubAgentService struct {
	citySelection string
	localInsights string
	itinerary     string
	generic       string
	failStages    map[string]bool
	calls         []string
}

func newStubAgentService() *stubAgentService {
	return &stubAgentService{
		citySelection: `[{"place": "Hampi", "reason": "ruins"}, {"place": "Gokarna", "reason": "beaches"}]`,
		localInsights: `{"top_attractions": [{"name": "Virupaksha Temple"}, {"name": "Matanga Hill"}], "local_cuisine": [{"dish": "Bisi Bele Bath"}]}`,
		itinerary:     `{"itinerary": [{"day": 1, "steps": [{"type": "spot", "name": "Virupaksha Temple"}]}]}`,
		generic:       `{}`,
		failStages:    map[string]bool{},
	}
}

func (s *stubAgentService) run(stage, raw string) (string, error) {
	s.calls = append(s.calls, stage)
	if s.failStages[stage] {
		return "", errors.New("generation down")
	}
	return raw, nil
}

func (s *stubAgentService) RunCitySelection(_ context.Context, _ *response_models.TripPreferences) (string, error) {
	return s.run("city_selection", s.citySelection)
}

func (s *stubAgentService) RunLocalInsights(_ context.Context, _ *response_models.TripPreferences, _ string) (string, error) {
	return s.run("local_insights", s.localInsights)
}

func (s *stubAgentService) RunItinerary(_ context.Context, _ *response_models.TripPreferences, _ string, _ []string, _ []string) (string, error) {
	return s.run("itinerary", s.itinerary)
}

func (s *stubAgentService) RunSafetyBrief(_ context.Context, _ *response_models.TripPreferences, _ string) (string, error) {
	return s.run("safety", `{"overall_risk_level": "Low"}`)
}

func (s *stubAgentService) RunPackingList(_ context.Context, _ *response_models.TripPreferences, _ string) (string, error) {
	return s.run("packing", `{"season": "Winter"}`)
}

func (s *stubAgentService) RunBudgetBreakdown(_ context.Context, _ *response_models.TripPreferences, _ string) (string, error) {
	return s.run("budget", `{"budget_range": {"transport": ["100", "200"]}}`)
}

func (s *stubAgentService) RunTransportOptions(_ context.Context, _ *response_models.TripPreferences, _ string) (string, error) {
	return s.run("transport", `{"intercity": [{"mode": "Train"}]}`)
}

func (s *stubAgentService) RunStaySuggestions(_ context.Context, _ *response_models.TripPreferences, _ string) (string, error) {
	return s.run("stay", `{"stays": [{"name": "Zostel"}]}`)
}

func (s *stubAgentService) RunReviews(_ context.Context, _ string) (string, error) {
	return s.run("reviews", `{"attractions": [{"name": "Matanga Hill", "average_rating": 4.6}]}`)
}

type stubWeatherService struct {
	calls    []string
	snapshot *response_models.WeatherSnapshot
}

func (s *stubWeatherService) GetCurrentWeather(_ context.Context, cityName string) (*response_models.WeatherSnapshot, error) {
	s.calls = append(s.calls, cityName)
	return s.snapshot, nil
}

type stubPhotoService struct {
	calls []string
}

func (s *stubPhotoService) SearchPhotos(_ context.Context, query string) []string {
	s.calls = append(s.calls, query)
	return []string{"https://images.example.com/" + query}
}

// --- fixtures ---

func basePreferences() *response_models.TripPreferences {
	return &response_models.TripPreferences{
		TravelType:  "Leisure",
		TotalBudget: 60000,
		NoOfPeople:  2,
		GroupType:   "Couple",
		Duration:    3,
		Interests:   []string{"History", "Food"},
	}
}

func newTestWizard(agent *stubAgentService, weather *stubWeatherService, photos *stubPhotoService) (WizardServiceInterface, *memorySessionRepo) {
	repo := newMemorySessionRepo()
	svc := NewWizardService(repo, agent, NewFormatService(), weather, photos)
	return svc, repo
}

// --- tests ---

func TestWizardFullWalkToExport(t *testing.T) {
	ctx := context.Background()
	agent := newStubAgentService()
	svc, _ := newTestWizard(agent, &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "suggestions", view.StageName)

	sessionID := view.SessionID

	view, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{Preferences: basePreferences()})
	require.NoError(t, err)
	assert.Equal(t, "destination", view.StageName)
	require.Len(t, view.State.Suggestions, 2)
	assert.True(t, utils.CoversAllCategories(view.State.Preferences.BudgetRange))

	view, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{Place: "Hampi"})
	require.NoError(t, err)
	assert.Equal(t, "insights", view.StageName)
	assert.Equal(t, "Hampi", view.State.SelectedPlace)
	require.NotNil(t, view.State.LocalInfo)
	assert.Len(t, view.State.LocalInfo.TopAttractions, 2)

	view, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{
		SelectedAttractions: []string{"Virupaksha Temple"},
		SelectedCuisines:    []string{"Bisi Bele Bath"},
	})
	require.NoError(t, err)
	assert.Equal(t, "itinerary", view.StageName)
	require.NotNil(t, view.State.Itinerary)
	assert.Len(t, view.State.Itinerary.Days, 3)

	expectStages := []string{"safety", "packing", "budget", "transport", "stay", "reviews", "export"}
	for _, want := range expectStages {
		view, err = svc.Forward(ctx, sessionID, "user-1", nil)
		require.NoError(t, err)
		assert.Equal(t, want, view.StageName)
	}

	assert.NotNil(t, view.State.Safety)
	assert.NotNil(t, view.State.Packing)
	assert.NotNil(t, view.State.Budget)
	assert.NotNil(t, view.State.Transport)
	assert.NotNil(t, view.State.Accommodation)
	assert.NotNil(t, view.State.Reviews)
	assert.Empty(t, view.State.DegradedStages)

	export, err := svc.Export(ctx, sessionID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Hampi", export.TripPlan.SelectedPlace)
	assert.Equal(t, []string{"Virupaksha Temple"}, export.TripPlan.SelectedAttractions)
	require.NotNil(t, export.TripPlan.Itinerary)

	// No further forward progress past the final stage.
	_, err = svc.Forward(ctx, sessionID, "user-1", nil)
	assert.ErrorIs(t, err, utils.ErrStageOutOfOrder)

	// Export triggered no extra generation calls.
	assert.Len(t, agent.calls, 9)
}

func TestWizardForwardRequiresPreferences(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(newStubAgentService(), &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", nil)
	require.NoError(t, err)

	_, err = svc.Forward(ctx, view.SessionID, "user-1", nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	bad := basePreferences()
	bad.Duration = 0
	_, err = svc.Forward(ctx, view.SessionID, "user-1", &request_models.ForwardRequest{Preferences: bad})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestWizardPartialBudgetCoverageTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(newStubAgentService(), &stubWeatherService{}, &stubPhotoService{})

	prefs := basePreferences()
	prefs.BudgetRange = map[string]*response_models.BudgetRange{
		"transport": {Min: 1, Max: 2},
	}

	view, err := svc.CreateSession(ctx, "user-1", prefs)
	require.NoError(t, err)
	view, err = svc.Forward(ctx, view.SessionID, "user-1", nil)
	require.NoError(t, err)

	// The partial map is replaced by a full derivation from the total.
	require.True(t, utils.CoversAllCategories(view.State.Preferences.BudgetRange))
	assert.Equal(t, 15000, view.State.Preferences.BudgetRange["transport"].Min)
}

func TestWizardSeededPreferencesUsedOnForward(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(newStubAgentService(), &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", basePreferences())
	require.NoError(t, err)

	view, err = svc.Forward(ctx, view.SessionID, "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "destination", view.StageName)
}

func TestWizardDestinationGuards(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(newStubAgentService(), &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", basePreferences())
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = svc.Forward(ctx, sessionID, "user-1", nil)
	require.NoError(t, err)

	_, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{})
	assert.ErrorIs(t, err, utils.ErrSelectionRequired)

	_, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{Place: "Atlantis"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	view, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{Place: "Gokarna"})
	require.NoError(t, err)
	assert.Equal(t, "Gokarna", view.State.SelectedPlace)
}

func TestWizardDegradedSuggestionsAcceptAnyPlace(t *testing.T) {
	ctx := context.Background()
	agent := newStubAgentService()
	agent.failStages["city_selection"] = true
	svc, _ := newTestWizard(agent, &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", basePreferences())
	require.NoError(t, err)
	sessionID := view.SessionID

	view, err = svc.Forward(ctx, sessionID, "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "destination", view.StageName)
	assert.Empty(t, view.State.Suggestions)
	assert.Contains(t, view.State.DegradedStages, "suggestions")

	view, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{Place: "Atlantis"})
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", view.State.SelectedPlace)
}

func TestWizardInsightsSelectionGuards(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(newStubAgentService(), &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", basePreferences())
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = svc.Forward(ctx, sessionID, "user-1", nil)
	require.NoError(t, err)
	_, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{Place: "Hampi"})
	require.NoError(t, err)

	// Nothing selected.
	_, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{})
	assert.ErrorIs(t, err, utils.ErrSelectionRequired)

	// Only names the backend never offered.
	_, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{
		SelectedAttractions: []string{"Eiffel Tower"},
	})
	assert.ErrorIs(t, err, utils.ErrSelectionRequired)

	// Duplicates collapse and off-list names drop; order is preserved.
	view, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{
		SelectedAttractions: []string{"Matanga Hill", "Eiffel Tower", "Matanga Hill", "Virupaksha Temple"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Matanga Hill", "Virupaksha Temple"}, view.State.SelectedAttractions)
}

func TestWizardDegradedStageStillAdvances(t *testing.T) {
	ctx := context.Background()
	agent := newStubAgentService()
	agent.failStages["safety"] = true
	svc, _ := newTestWizard(agent, &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", basePreferences())
	require.NoError(t, err)
	sessionID := view.SessionID

	_, err = svc.Forward(ctx, sessionID, "user-1", nil)
	require.NoError(t, err)
	_, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{Place: "Hampi"})
	require.NoError(t, err)
	_, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{
		SelectedAttractions: []string{"Virupaksha Temple"},
	})
	require.NoError(t, err)

	view, err = svc.Forward(ctx, sessionID, "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "safety", view.StageName)
	require.NotNil(t, view.State.Safety)
	assert.Equal(t, "Unknown", view.State.Safety.OverallRiskLevel)
	assert.Contains(t, view.State.DegradedStages, "safety")
}

func TestWizardBackAndReset(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(newStubAgentService(), &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", basePreferences())
	require.NoError(t, err)
	sessionID := view.SessionID

	// Back at the first stage is a no-op.
	view, err = svc.Back(ctx, sessionID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "suggestions", view.StageName)

	_, err = svc.Forward(ctx, sessionID, "user-1", nil)
	require.NoError(t, err)
	view, err = svc.Forward(ctx, sessionID, "user-1", &request_models.ForwardRequest{Place: "Hampi"})
	require.NoError(t, err)
	assert.Equal(t, "insights", view.StageName)

	view, err = svc.Back(ctx, sessionID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "destination", view.StageName)
	// Artifacts survive stepping back.
	assert.NotEmpty(t, view.State.Suggestions)

	view, err = svc.Reset(ctx, sessionID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "suggestions", view.StageName)
	assert.Empty(t, view.State.Suggestions)
	assert.Nil(t, view.State.Preferences)
	assert.Empty(t, view.State.SelectedPlace)
}

func TestWizardExportRequiresFinalStage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(newStubAgentService(), &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", basePreferences())
	require.NoError(t, err)

	_, err = svc.Export(ctx, view.SessionID, "user-1")
	assert.ErrorIs(t, err, utils.ErrStageOutOfOrder)
}

func TestWizardWeatherGate(t *testing.T) {
	ctx := context.Background()

	t.Run("imminent holiday trip fetches weather", func(t *testing.T) {
		weather := &stubWeatherService{snapshot: &response_models.WeatherSnapshot{Temperature: 28.5, Description: "clear sky"}}
		photos := &stubPhotoService{}
		svc, _ := newTestWizard(newStubAgentService(), weather, photos)

		prefs := basePreferences()
		prefs.StartDate = time.Now().UTC().Add(48 * time.Hour).Format("2006-01-02")
		prefs.PlanningStyle = "holiday_based"

		view, err := svc.CreateSession(ctx, "user-1", prefs)
		require.NoError(t, err)
		view, err = svc.Forward(ctx, view.SessionID, "user-1", nil)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"Hampi", "Gokarna"}, weather.calls)
		for _, suggestion := range view.State.Suggestions {
			require.NotNil(t, suggestion.Weather)
			assert.Equal(t, "clear sky", suggestion.Weather.Description)
		}
		assert.Len(t, photos.calls, 2)
	})

	t.Run("season based trip skips weather", func(t *testing.T) {
		weather := &stubWeatherService{snapshot: &response_models.WeatherSnapshot{}}
		svc, _ := newTestWizard(newStubAgentService(), weather, &stubPhotoService{})

		prefs := basePreferences()
		prefs.StartDate = time.Now().UTC().Add(48 * time.Hour).Format("2006-01-02")
		prefs.PlanningStyle = "season_based"

		view, err := svc.CreateSession(ctx, "user-1", prefs)
		require.NoError(t, err)
		view, err = svc.Forward(ctx, view.SessionID, "user-1", nil)
		require.NoError(t, err)

		assert.Empty(t, weather.calls)
		for _, suggestion := range view.State.Suggestions {
			assert.Nil(t, suggestion.Weather)
		}
	})
}

func TestWizardOwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestWizard(newStubAgentService(), &stubWeatherService{}, &stubPhotoService{})

	view, err := svc.CreateSession(ctx, "user-1", basePreferences())
	require.NoError(t, err)

	_, err = svc.GetSession(ctx, view.SessionID, "someone-else")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	_, err = svc.GetSession(ctx, uuid.NewString(), "user-1")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
