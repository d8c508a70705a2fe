package impl

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"

	"gorm.io/gorm"
)

type StarLogRepositoryImpl struct {
	DB *gorm.DB
}

func NewStarLogRepository(db *gorm.DB) repositories.StarLogRepository {
	return &StarLogRepositoryImpl{DB: db}
}

func (r *StarLogRepositoryImpl) Create(ctx context.Context, log *models.StarLog) error {
	return r.DB.WithContext(ctx).Create(log).Error
}

func (r *StarLogRepositoryImpl) DistinctDays(ctx context.Context, childID, since string) ([]string, error) {
	var days []string
	query := r.DB.WithContext(ctx).Model(&models.StarLog{}).Where("child_id = ?", childID)
	if since != "" {
		query = query.Where("day >= ?", since)
	}
	err := query.Distinct("day").Order("day DESC").Pluck("day", &days).Error
	return days, err
}

func (r *StarLogRepositoryImpl) TotalStars(ctx context.Context, childID string) (int, error) {
	var total int
	err := r.DB.WithContext(ctx).Model(&models.StarLog{}).
		Where("child_id = ?", childID).
		Select("COALESCE(SUM(stars), 0)").
		Scan(&total).Error
	return total, err
}

func (r *StarLogRepositoryImpl) SumByDay(ctx context.Context, childID, from, to string) ([]models.DayStars, error) {
	var rows []models.DayStars
	err := r.DB.WithContext(ctx).Model(&models.StarLog{}).
		Select("day, SUM(stars) AS stars").
		Where("child_id = ? AND day >= ? AND day < ?", childID, from, to).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}
