package services

import (
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"fmt"
	"time"
)

const (
	recentAchievements = 6
	streakWindowDays   = 40
)

type DashboardService struct {
	Repos     repositories.Manager
	Calendar  *Calendar
	Templates *TemplateService
}

func NewDashboardService(repos repositories.Manager, calendar *Calendar, templates *TemplateService) *DashboardService {
	return &DashboardService{Repos: repos, Calendar: calendar, Templates: templates}
}

type ChildSummary struct {
	Child        models.Child         `json:"child"`
	Tasks        []models.Task        `json:"tasks"`
	Achievements []models.Achievement `json:"achievements"`
	TodayStars   int                  `json:"today_stars"`
	Calendar     []models.DayStars    `json:"calendar"`
	TotalStars   int                  `json:"total_stars"`
	Streak       int                  `json:"streak"`
}

type Dashboard struct {
	Phone     string                `json:"phone"`
	Children  []ChildSummary        `json:"children"`
	Templates []models.TaskTemplate `json:"templates"`
}

// Dashboard gathers everything the parent's home screen shows. It never writes.
func (s *DashboardService) Dashboard(ctx context.Context, parent *models.Parent) (*Dashboard, error) {
	if parent == nil {
		return nil, ErrNotLoggedIn
	}

	children, err := s.Repos.Children().ListByParent(ctx, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}

	today := s.Calendar.Today()
	todayKey := s.Calendar.DayKey(today)
	monthFrom, monthTo := s.Calendar.MonthRange(today.Year(), today.Month())
	since := today.AddDate(0, 0, -streakWindowDays).Format(models.DayLayout)

	summaries := make([]ChildSummary, 0, len(children))
	for _, child := range children {
		summary := ChildSummary{Child: child}

		if summary.Tasks, err = s.Repos.Tasks().ListActiveByChild(ctx, child.ID); err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		if summary.Achievements, err = s.Repos.Achievements().ListRecentByChild(ctx, child.ID, recentAchievements); err != nil {
			return nil, fmt.Errorf("list achievements: %w", err)
		}
		if summary.Calendar, err = s.Repos.StarLogs().SumByDay(ctx, child.ID, monthFrom, monthTo); err != nil {
			return nil, fmt.Errorf("month stars: %w", err)
		}
		for _, day := range summary.Calendar {
			if day.Day == todayKey {
				summary.TodayStars = day.Stars
			}
		}
		if summary.TotalStars, err = s.Repos.StarLogs().TotalStars(ctx, child.ID); err != nil {
			return nil, fmt.Errorf("total stars: %w", err)
		}

		days, err := s.Repos.StarLogs().DistinctDays(ctx, child.ID, since)
		if err != nil {
			return nil, fmt.Errorf("star days: %w", err)
		}
		summary.Streak = ComputeStreak(days, today)

		if summary.Tasks == nil {
			summary.Tasks = []models.Task{}
		}
		if summary.Achievements == nil {
			summary.Achievements = []models.Achievement{}
		}
		if summary.Calendar == nil {
			summary.Calendar = []models.DayStars{}
		}
		summaries = append(summaries, summary)
	}

	templates, err := s.Templates.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{Phone: parent.Phone, Children: summaries, Templates: templates}, nil
}

// MonthStars returns per-day star sums for one month of a child the parent owns.
func (s *DashboardService) MonthStars(ctx context.Context, parent *models.Parent, childID string, year, month int) ([]models.DayStars, error) {
	if parent == nil {
		return nil, ErrNotLoggedIn
	}
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidMonth
	}
	child, err := ownedChild(ctx, s.Repos, parent, childID, ErrChildNotFound)
	if err != nil {
		return nil, err
	}

	from, to := s.Calendar.MonthRange(year, time.Month(month))
	days, err := s.Repos.StarLogs().SumByDay(ctx, child.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("month stars: %w", err)
	}
	if days == nil {
		days = []models.DayStars{}
	}
	return days, nil
}
