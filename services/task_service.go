package services

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"fmt"
	"strings"
)

type TaskService struct {
	Repos     repositories.Manager
	Templates *TemplateService
}

func NewTaskService(repos repositories.Manager, templates *TemplateService) *TaskService {
	return &TaskService{Repos: repos, Templates: templates}
}

type AddTaskInput struct {
	ChildID     string
	Title       string
	Description string
	Stars       *int
	Schedule    string
}

func (s *TaskService) AddTask(ctx context.Context, parent *models.Parent, in AddTaskInput) (*models.Task, error) {
	if parent == nil {
		return nil, ErrNotLoggedIn
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTaskTitleRequired
	}
	child, err := ownedChild(ctx, s.Repos, parent, in.ChildID, ErrNoPermissionTask)
	if err != nil {
		return nil, err
	}

	stars := 1
	if in.Stars != nil && *in.Stars > 0 {
		stars = *in.Stars
	}

	task := models.Task{
		ChildID:     child.ID,
		ParentID:    parent.ID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Stars:       stars,
		Schedule:    strings.TrimSpace(in.Schedule),
		Active:      true,
	}
	if err := s.Repos.Tasks().Create(ctx, &task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

// AddTaskFromTemplate copies a template's title, description and stars into a
// new task for the child.
func (s *TaskService) AddTaskFromTemplate(ctx context.Context, parent *models.Parent, childID, templateKey string) (*models.Task, error) {
	if parent == nil {
		return nil, ErrNotLoggedIn
	}
	template, err := s.Templates.Find(ctx, strings.TrimSpace(templateKey))
	if err != nil {
		return nil, err
	}

	stars := template.Stars
	return s.AddTask(ctx, parent, AddTaskInput{
		ChildID:     childID,
		Title:       template.Title,
		Description: template.Description,
		Stars:       &stars,
	})
}

// SetTaskActive archives or restores a task.
func (s *TaskService) SetTaskActive(ctx context.Context, parent *models.Parent, taskID string, active bool) error {
	if parent == nil {
		return ErrNotLoggedIn
	}
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return ErrInvalidTask
	}
	task, err := s.Repos.Tasks().FindByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("lookup task: %w", err)
	}
	if task == nil || task.ParentID != parent.ID {
		return ErrInvalidTask
	}
	if task.Active == active {
		return nil
	}
	return s.Repos.Tasks().SetActive(ctx, task.ID, active)
}
