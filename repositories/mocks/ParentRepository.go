package mocks

import (
	"StarBoard/models"
	"context"

	"github.com/stretchr/testify/mock"
)

// ParentRepository is a mock type for the ParentRepository type
type ParentRepository struct {
	mock.Mock
}

func (m *ParentRepository) FindByID(ctx context.Context, id string) (*models.Parent, error) {
	args := m.Called(ctx, id)
	parent, _ := args.Get(0).(*models.Parent)
	return parent, args.Error(1)
}

func (m *ParentRepository) FindByPhone(ctx context.Context, phone string) (*models.Parent, error) {
	args := m.Called(ctx, phone)
	parent, _ := args.Get(0).(*models.Parent)
	return parent, args.Error(1)
}

func (m *ParentRepository) FindOrCreateByPhone(ctx context.Context, phone string) (*models.Parent, error) {
	args := m.Called(ctx, phone)
	parent, _ := args.Get(0).(*models.Parent)
	return parent, args.Error(1)
}

func (m *ParentRepository) UpdateDeviceToken(ctx context.Context, id, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}
