package impl

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ChildRepositoryImpl struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) repositories.ChildRepository {
	return &ChildRepositoryImpl{DB: db}
}

func (r *ChildRepositoryImpl) Create(ctx context.Context, child *models.Child) error {
	return r.DB.WithContext(ctx).Create(child).Error
}

func (r *ChildRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Child, error) {
	var child models.Child
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&child).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}

func (r *ChildRepositoryImpl) ListByParent(ctx context.Context, parentID string) ([]models.Child, error) {
	var children []models.Child
	err := r.DB.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&children).Error
	return children, err
}
