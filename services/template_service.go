package services

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// DefaultTemplates are seeded on startup. Existing keys are left untouched so
// imported edits survive restarts.
var DefaultTemplates = []models.TaskTemplate{
	{Key: "bedtime", Title: "Bedtime on time", Description: "In bed by 21:30, lights off and no phone", Stars: 2, Category: "routine", Emoji: "🌙", Position: 1},
	{Key: "tidy_toys", Title: "Tidy up toys", Description: "Put the toy corner in order after playing", Stars: 1, Category: "tidying", Emoji: "🧸", Position: 2},
	{Key: "homework", Title: "Homework done", Description: "Finish today's homework on time and check it", Stars: 3, Category: "learning", Emoji: "📚", Position: 3},
	{Key: "helper", Title: "Kind little helper", Description: "Help the family with one small thing", Stars: 1, Category: "responsibility", Emoji: "🤝", Position: 4},
	{Key: "brush_teeth", Title: "Brush teeth alone", Description: "Brush carefully for 2 minutes morning and evening", Stars: 1, Category: "health", Emoji: "🪥", Position: 5},
	{Key: "share_feelings", Title: "Share feelings", Description: "Before bed, tell one happy or worrying thing", Stars: 1, Category: "emotions", Emoji: "💬", Position: 6},
}

type TemplateService struct {
	Repo repositories.TemplateRepository

	cache []models.TaskTemplate
	mutex sync.RWMutex
}

func NewTemplateService(repo repositories.TemplateRepository) *TemplateService {
	return &TemplateService{Repo: repo}
}

// SeedDefaults inserts the default templates whose keys are missing.
func (s *TemplateService) SeedDefaults(ctx context.Context) error {
	defaults := make([]models.TaskTemplate, len(DefaultTemplates))
	copy(defaults, DefaultTemplates)
	if err := s.Repo.SeedMissing(ctx, defaults); err != nil {
		return fmt.Errorf("seed templates: %w", err)
	}
	s.Invalidate()
	return nil
}

// List returns all templates ordered by position, served from memory after
// the first load.
func (s *TemplateService) List(ctx context.Context) ([]models.TaskTemplate, error) {
	s.mutex.RLock()
	if s.cache != nil {
		cached := s.cache
		s.mutex.RUnlock()
		return cached, nil
	}
	s.mutex.RUnlock()

	templates, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if templates == nil {
		templates = []models.TaskTemplate{}
	}

	s.mutex.Lock()
	s.cache = templates
	s.mutex.Unlock()

	return templates, nil
}

func (s *TemplateService) Find(ctx context.Context, key string) (*models.TaskTemplate, error) {
	if key == "" {
		return nil, ErrTemplateNotFound
	}
	templates, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].Key == key {
			t := templates[i]
			return &t, nil
		}
	}
	return nil, ErrTemplateNotFound
}

// Import upserts templates by key and drops the cache.
func (s *TemplateService) Import(ctx context.Context, templates []models.TaskTemplate) (int, error) {
	count := 0
	for i := range templates {
		if err := s.Repo.Upsert(ctx, &templates[i]); err != nil {
			s.Invalidate()
			return count, fmt.Errorf("upsert template %q: %w", templates[i].Key, err)
		}
		count++
	}
	s.Invalidate()
	slog.InfoContext(ctx, "Templates imported", "count", count)
	return count, nil
}

func (s *TemplateService) Invalidate() {
	s.mutex.Lock()
	s.cache = nil
	s.mutex.Unlock()
}
