package db_models

// TripSession persists one wizard run. State holds the serialized
// WizardState blob; Stage is duplicated out of the blob for cheap
// filtering without unmarshalling.
type TripSession struct {
	BaseModel
	UserID string `gorm:"index"`
	Stage  int
	State  []byte `gorm:"type:jsonb"`
}
