package repositories

import (
	"StarBoard/models"
	"context"
)

type ParentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Parent, error)
	FindByPhone(ctx context.Context, phone string) (*models.Parent, error)
	FindOrCreateByPhone(ctx context.Context, phone string) (*models.Parent, error)
	UpdateDeviceToken(ctx context.Context, id, token string) error
}
