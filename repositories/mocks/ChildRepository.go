package mocks

import (
	"StarBoard/models"
	"context"

	"github.com/stretchr/testify/mock"
)

// ChildRepository is a mock type for the ChildRepository type
type ChildRepository struct {
	mock.Mock
}

func (m *ChildRepository) Create(ctx context.Context, child *models.Child) error {
	args := m.Called(ctx, child)
	return args.Error(0)
}

func (m *ChildRepository) FindByID(ctx context.Context, id string) (*models.Child, error) {
	args := m.Called(ctx, id)
	child, _ := args.Get(0).(*models.Child)
	return child, args.Error(1)
}

func (m *ChildRepository) ListByParent(ctx context.Context, parentID string) ([]models.Child, error) {
	args := m.Called(ctx, parentID)
	children, _ := args.Get(0).([]models.Child)
	return children, args.Error(1)
}
