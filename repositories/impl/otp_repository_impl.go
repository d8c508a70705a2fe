package impl

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type OtpRepositoryImpl struct {
	DB *gorm.DB
}

func NewOtpRepository(db *gorm.DB) repositories.OtpRepository {
	return &OtpRepositoryImpl{DB: db}
}

func (r *OtpRepositoryImpl) Create(ctx context.Context, otp *models.OtpRequest) error {
	return r.DB.WithContext(ctx).Create(otp).Error
}

func (r *OtpRepositoryImpl) FindLatestUsable(ctx context.Context, phone string, now time.Time) (*models.OtpRequest, error) {
	var otp models.OtpRequest
	err := r.DB.WithContext(ctx).
		Where("phone = ? AND used = ? AND expires_at > ?", phone, false, now).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &otp, nil
}

func (r *OtpRepositoryImpl) IncrementAttempts(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Model(&models.OtpRequest{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + ?", 1)).Error
}

func (r *OtpRepositoryImpl) MarkUsed(ctx context.Context, id, parentID string) (bool, error) {
	result := r.DB.WithContext(ctx).Model(&models.OtpRequest{}).
		Where("id = ? AND used = ?", id, false).
		Updates(map[string]interface{}{
			"used":      true,
			"parent_id": parentID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *OtpRepositoryImpl) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).Where("expires_at < ?", cutoff).Delete(&models.OtpRequest{})
	return result.RowsAffected, result.Error
}
