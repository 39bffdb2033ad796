package response_models

type NeighborhoodNote struct {
	Area            string `json:"area"`
	Note            string `json:"note"`
	BestTimeToVisit string `json:"best_time_to_visit"`
}

type HealthNotes struct {
	FoodWaterSafety string `json:"food_water_safety"`
	MosquitoAdvice  string `json:"mosquito_advice"`
	AltitudeNote    string `json:"altitude_note"`
}

type SafetyBrief struct {
	OverallRiskLevel   string             `json:"overall_risk_level"`
	CommonScams        []string           `json:"common_scams"`
	NeighborhoodSafety []NeighborhoodNote `json:"neighborhood_safety"`
	LocalLawsAndNorms  []string           `json:"local_laws_and_norms"`
	Health             HealthNotes        `json:"health"`
	EmergencyContacts  map[string]string  `json:"emergency_contacts"`
	SoloTravelTips     []string           `json:"solo_travel_tips"`
}
