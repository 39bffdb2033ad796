package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, userID string, stage int, state []byte) (*dbm.TripSession, error)
	GetSessionById(ctx context.Context, sessionID string) (*dbm.TripSession, error)
	UpdateSessionState(ctx context.Context, sessionID string, stage int, state []byte) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, userID string, stage int, state []byte) (*dbm.TripSession, error) {
	session := dbm.TripSession{
		UserID: userID,
		Stage:  stage,
		State:  state,
	}
	if err := r.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) GetSessionById(ctx context.Context, sessionID string) (*dbm.TripSession, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}

	var session dbm.TripSession
	err = r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepository) UpdateSessionState(ctx context.Context, sessionID string, stage int, state []byte) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return utils.ErrSessionNotFound
	}

	result := r.db.WithContext(ctx).
		Model(&dbm.TripSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stage": stage,
			"state": state,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrSessionNotFound
	}
	return nil
}
