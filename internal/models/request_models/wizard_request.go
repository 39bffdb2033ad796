package request_models

import "yatra/internal/models/response_models"

// CreateSessionRequest optionally seeds preferences at creation time.
type CreateSessionRequest struct {
	Preferences *response_models.TripPreferences `json:"preferences,omitempty"`
}

// ForwardRequest carries the per-stage input for a forward step. Which
// fields matter depends on the session's current stage: preferences at
// the suggestions stage, place at the destination stage, selections at
// the insights stage. Later stages take no input.
type ForwardRequest struct {
	Preferences         *response_models.TripPreferences `json:"preferences,omitempty"`
	Place               string                           `json:"place,omitempty"`
	SelectedAttractions []string                         `json:"selected_attractions,omitempty"`
	SelectedCuisines    []string                         `json:"selected_cuisines,omitempty"`
}
