package services

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ChildColors is the palette used when a child is added without a color.
var ChildColors = []string{"#8ae0c1", "#7cc7ff", "#f7b1ff", "#ffd07c", "#b3c7ff"}

type ChildService struct {
	Repos repositories.Manager
}

func NewChildService(repos repositories.Manager) *ChildService {
	return &ChildService{Repos: repos}
}

type AddChildInput struct {
	Name  string
	Age   *int
	Color string
}

func (s *ChildService) AddChild(ctx context.Context, parent *models.Parent, in AddChildInput) (*models.Child, error) {
	if parent == nil {
		return nil, ErrNotLoggedIn
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrChildNameRequired
	}

	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = ChildColors[rand.IntN(len(ChildColors))]
	}

	child := models.Child{
		ParentID: parent.ID,
		Name:     name,
		Age:      in.Age,
		ColorTag: color,
	}
	if err := s.Repos.Children().Create(ctx, &child); err != nil {
		return nil, fmt.Errorf("create child: %w", err)
	}
	return &child, nil
}

func (s *ChildService) ListChildren(ctx context.Context, parent *models.Parent) ([]models.Child, error) {
	if parent == nil {
		return nil, ErrNotLoggedIn
	}
	return s.Repos.Children().ListByParent(ctx, parent.ID)
}

// ownedChild loads the child and checks it belongs to the parent. A missing
// child and a foreign child both yield denied.
func ownedChild(ctx context.Context, repos repositories.Manager, parent *models.Parent, childID string, denied error) (*models.Child, error) {
	childID = strings.TrimSpace(childID)
	if childID == "" {
		return nil, ErrChildRequired
	}
	child, err := repos.Children().FindByID(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("lookup child: %w", err)
	}
	if child == nil || child.ParentID != parent.ID {
		return nil, denied
	}
	return child, nil
}
