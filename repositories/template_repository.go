package repositories

import (
	"StarBoard/models"
	"context"
)

type TemplateRepository interface {
	List(ctx context.Context) ([]models.TaskTemplate, error)
	FindByKey(ctx context.Context, key string) (*models.TaskTemplate, error)
	Upsert(ctx context.Context, template *models.TaskTemplate) error
	// SeedMissing inserts the templates whose keys do not exist yet.
	SeedMissing(ctx context.Context, templates []models.TaskTemplate) error
}
