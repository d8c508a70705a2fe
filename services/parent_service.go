package services

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"fmt"
	"strings"
)

type ParentService struct {
	ParentRepo repositories.ParentRepository
	ChildRepo  repositories.ChildRepository
}

func NewParentService(parentRepo repositories.ParentRepository, childRepo repositories.ChildRepository) *ParentService {
	return &ParentService{ParentRepo: parentRepo, ChildRepo: childRepo}
}

// Profile is what GET /api/me returns.
type Profile struct {
	Parent   *models.Parent `json:"parent"`
	Children []models.Child `json:"children"`
}

func (s *ParentService) Profile(ctx context.Context, parent *models.Parent) (*Profile, error) {
	if parent == nil {
		return nil, ErrNotLoggedIn
	}
	children, err := s.ChildRepo.ListByParent(ctx, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	if children == nil {
		children = []models.Child{}
	}
	return &Profile{Parent: parent, Children: children}, nil
}

// RegisterDevice stores the FCM token used for achievement pushes.
func (s *ParentService) RegisterDevice(ctx context.Context, parent *models.Parent, token string) error {
	if parent == nil {
		return ErrNotLoggedIn
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrDeviceTokenEmpty
	}
	if err := s.ParentRepo.UpdateDeviceToken(ctx, parent.ID, token); err != nil {
		return fmt.Errorf("update device token: %w", err)
	}
	parent.DeviceToken = token
	return nil
}
