package repositories

import (
	"StarBoard/models"
	"context"
)

type StarLogRepository interface {
	Create(ctx context.Context, log *models.StarLog) error
	// DistinctDays returns the day keys with at least one log, optionally
	// limited to days on or after since (empty means no lower bound).
	DistinctDays(ctx context.Context, childID, since string) ([]string, error)
	TotalStars(ctx context.Context, childID string) (int, error)
	// SumByDay groups logs in [from, to) by day.
	SumByDay(ctx context.Context, childID, from, to string) ([]models.DayStars, error)
}
