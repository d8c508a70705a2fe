package repositories

import (
	"StarBoard/models"
	"context"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id string) (*models.Task, error)
	ListActiveByChild(ctx context.Context, childID string) ([]models.Task, error)
	SetActive(ctx context.Context, id string, active bool) error
}
