package impl

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParentRepositoryImpl struct {
	DB *gorm.DB
}

func NewParentRepository(db *gorm.DB) repositories.ParentRepository {
	return &ParentRepositoryImpl{DB: db}
}

func (r *ParentRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Parent, error) {
	var parent models.Parent
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parent, nil
}

func (r *ParentRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*models.Parent, error) {
	var parent models.Parent
	if err := r.DB.WithContext(ctx).Where("phone = ?", phone).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parent, nil
}

// FindOrCreateByPhone returns the parent for the phone, creating the account on
// first login. A concurrent insert for the same phone is absorbed by the
// unique index and the existing row is returned.
func (r *ParentRepositoryImpl) FindOrCreateByPhone(ctx context.Context, phone string) (*models.Parent, error) {
	parent, err := r.FindByPhone(ctx, phone)
	if err != nil || parent != nil {
		return parent, err
	}

	created := models.Parent{Phone: phone}
	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "phone"}}, DoNothing: true}).
		Create(&created).Error; err != nil {
		return nil, fmt.Errorf("create parent: %w", err)
	}

	parent, err = r.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("parent %s vanished after insert", phone)
	}
	return parent, nil
}

func (r *ParentRepositoryImpl) UpdateDeviceToken(ctx context.Context, id, token string) error {
	return r.DB.WithContext(ctx).Model(&models.Parent{}).
		Where("id = ?", id).
		Update("device_token", token).Error
}
