package controllers

import (
	"StarBoard/models"
	"StarBoard/services"
	"context"
	"time"
)

// AuthServiceInterface определяет методы входа по коду
type AuthServiceInterface interface {
	RequestOtp(ctx context.Context, phone string) (time.Time, error)
	VerifyOtp(ctx context.Context, phone, code string) (*models.Parent, *models.Session, error)
	CurrentParent(ctx context.Context, token string) (*models.Parent, error)
	Logout(ctx context.Context, token string) error
}

type ChildServiceInterface interface {
	AddChild(ctx context.Context, parent *models.Parent, in services.AddChildInput) (*models.Child, error)
}

type TaskServiceInterface interface {
	AddTask(ctx context.Context, parent *models.Parent, in services.AddTaskInput) (*models.Task, error)
	AddTaskFromTemplate(ctx context.Context, parent *models.Parent, childID, templateKey string) (*models.Task, error)
	SetTaskActive(ctx context.Context, parent *models.Parent, taskID string, active bool) error
}

type RewardServiceInterface interface {
	LogStars(ctx context.Context, parent *models.Parent, in services.LogStarsInput) (*services.RewardResult, error)
}

type DashboardServiceInterface interface {
	Dashboard(ctx context.Context, parent *models.Parent) (*services.Dashboard, error)
	MonthStars(ctx context.Context, parent *models.Parent, childID string, year, month int) ([]models.DayStars, error)
}

type ParentServiceInterface interface {
	Profile(ctx context.Context, parent *models.Parent) (*services.Profile, error)
	RegisterDevice(ctx context.Context, parent *models.Parent, token string) error
}

type TemplateServiceInterface interface {
	List(ctx context.Context) ([]models.TaskTemplate, error)
}
