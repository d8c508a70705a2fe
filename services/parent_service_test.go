package services

import (
	"StarBoard/models"
	"StarBoard/repositories/mocks"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterDevice(t *testing.T) {
	// Создаем моки для репозиториев
	mockParentRepo := new(mocks.ParentRepository)
	mockChildRepo := new(mocks.ChildRepository)
	parentService := NewParentService(mockParentRepo, mockChildRepo)

	parent := &models.Parent{ID: "parent-1", Phone: "+15554001"}
	mockParentRepo.On("UpdateDeviceToken", mock.Anything, "parent-1", "fcm-token").Return(nil)

	err := parentService.RegisterDevice(context.Background(), parent, "  fcm-token ")

	assert.NoError(t, err)
	assert.Equal(t, "fcm-token", parent.DeviceToken)
	mockParentRepo.AssertExpectations(t)
}

func TestRegisterDeviceEmptyToken(t *testing.T) {
	mockParentRepo := new(mocks.ParentRepository)
	parentService := NewParentService(mockParentRepo, new(mocks.ChildRepository))

	err := parentService.RegisterDevice(context.Background(), &models.Parent{ID: "parent-1"}, " ")

	assert.ErrorIs(t, err, ErrDeviceTokenEmpty)
	mockParentRepo.AssertNotCalled(t, "UpdateDeviceToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterDeviceRepositoryError(t *testing.T) {
	mockParentRepo := new(mocks.ParentRepository)
	parentService := NewParentService(mockParentRepo, new(mocks.ChildRepository))
	mockParentRepo.On("UpdateDeviceToken", mock.Anything, "parent-1", "t").Return(errors.New("db down"))

	err := parentService.RegisterDevice(context.Background(), &models.Parent{ID: "parent-1"}, "t")

	assert.Error(t, err)
	assert.False(t, IsUserError(err))
}

func TestProfile(t *testing.T) {
	mockParentRepo := new(mocks.ParentRepository)
	mockChildRepo := new(mocks.ChildRepository)
	parentService := NewParentService(mockParentRepo, mockChildRepo)

	parent := &models.Parent{ID: "parent-1", Phone: "+15554002"}
	mockChildRepo.On("ListByParent", mock.Anything, "parent-1").Return([]models.Child{{ID: "c1", Name: "Mia"}}, nil)

	profile, err := parentService.Profile(context.Background(), parent)

	assert.NoError(t, err)
	assert.Equal(t, parent, profile.Parent)
	assert.Len(t, profile.Children, 1)
	mockChildRepo.AssertExpectations(t)
}

func TestProfileWithoutChildren(t *testing.T) {
	mockChildRepo := new(mocks.ChildRepository)
	parentService := NewParentService(new(mocks.ParentRepository), mockChildRepo)
	mockChildRepo.On("ListByParent", mock.Anything, "parent-1").Return(nil, nil)

	profile, err := parentService.Profile(context.Background(), &models.Parent{ID: "parent-1"})

	assert.NoError(t, err)
	assert.NotNil(t, profile.Children)
	assert.Empty(t, profile.Children)

	_, err = parentService.Profile(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
