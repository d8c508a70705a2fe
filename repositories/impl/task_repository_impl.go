package impl

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TaskRepositoryImpl struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{DB: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.DB.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ListActiveByChild(ctx context.Context, childID string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.DB.WithContext(ctx).
		Where("child_id = ? AND active = ?", childID, true).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	return r.DB.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", id).
		Update("active", active).Error
}
