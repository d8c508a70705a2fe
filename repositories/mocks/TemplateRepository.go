package mocks

import (
	"StarBoard/models"
	"context"

	"github.com/stretchr/testify/mock"
)

// TemplateRepository is a mock type for the TemplateRepository type
type TemplateRepository struct {
	mock.Mock
}

func (m *TemplateRepository) List(ctx context.Context) ([]models.TaskTemplate, error) {
	args := m.Called(ctx)
	templates, _ := args.Get(0).([]models.TaskTemplate)
	return templates, args.Error(1)
}

func (m *TemplateRepository) FindByKey(ctx context.Context, key string) (*models.TaskTemplate, error) {
	args := m.Called(ctx, key)
	template, _ := args.Get(0).(*models.TaskTemplate)
	return template, args.Error(1)
}

func (m *TemplateRepository) Upsert(ctx context.Context, template *models.TaskTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *TemplateRepository) SeedMissing(ctx context.Context, templates []models.TaskTemplate) error {
	args := m.Called(ctx, templates)
	return args.Error(0)
}
