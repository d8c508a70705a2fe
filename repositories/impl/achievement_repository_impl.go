package impl

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepositoryImpl struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) repositories.AchievementRepository {
	return &AchievementRepositoryImpl{DB: db}
}

func (r *AchievementRepositoryImpl) CreateIfAbsent(ctx context.Context, achievement *models.Achievement) (bool, error) {
	result := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "child_id"}, {Name: "kind"}, {Name: "threshold"}},
			DoNothing: true,
		}).
		Create(achievement)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *AchievementRepositoryImpl) ListByChild(ctx context.Context, childID string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.DB.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("unlocked_at ASC").
		Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepositoryImpl) ListRecentByChild(ctx context.Context, childID string, limit int) ([]models.Achievement, error) {
	var achievements []models.Achievement
	query := r.DB.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("unlocked_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&achievements).Error
	return achievements, err
}
