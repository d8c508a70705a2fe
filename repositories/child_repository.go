package repositories

import (
	"StarBoard/models"
	"context"
)

type ChildRepository interface {
	Create(ctx context.Context, child *models.Child) error
	FindByID(ctx context.Context, id string) (*models.Child, error)
	ListByParent(ctx context.Context, parentID string) ([]models.Child, error)
}
