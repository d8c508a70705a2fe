package repositories

import (
	"StarBoard/models"
	"context"
)

type AchievementRepository interface {
	// CreateIfAbsent inserts the achievement unless one already exists for the
	// same child, kind and threshold. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, achievement *models.Achievement) (bool, error)
	ListByChild(ctx context.Context, childID string) ([]models.Achievement, error)
	ListRecentByChild(ctx context.Context, childID string, limit int) ([]models.Achievement, error)
}
