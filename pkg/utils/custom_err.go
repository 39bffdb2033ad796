package utils

import "errors"

var (
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrSelectionRequired      = errors.New("at least one attraction or cuisine must be selected")
	ErrStageOutOfOrder        = errors.New("operation not allowed at the current stage")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("generation backend returned an unusable response")
)
