package impl

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TemplateRepositoryImpl struct {
	DB *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) repositories.TemplateRepository {
	return &TemplateRepositoryImpl{DB: db}
}

func (r *TemplateRepositoryImpl) List(ctx context.Context) ([]models.TaskTemplate, error) {
	var templates []models.TaskTemplate
	err := r.DB.WithContext(ctx).Order("position ASC, id ASC").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepositoryImpl) FindByKey(ctx context.Context, key string) (*models.TaskTemplate, error) {
	var template models.TaskTemplate
	if err := r.DB.WithContext(ctx).Where("template_key = ?", key).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepositoryImpl) Upsert(ctx context.Context, template *models.TaskTemplate) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "template_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "stars", "category", "emoji", "position"}),
		}).
		Create(template).Error
}

func (r *TemplateRepositoryImpl) SeedMissing(ctx context.Context, templates []models.TaskTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "template_key"}}, DoNothing: true}).
		Create(&templates).Error
}
