package impl

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type SessionRepositoryImpl struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) repositories.SessionRepository {
	return &SessionRepositoryImpl{DB: db}
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *models.Session) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

func (r *SessionRepositoryImpl) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	if err := r.DB.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) DeleteByToken(ctx context.Context, token string) error {
	return r.DB.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}

func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
