package services

import (
	"StarBoard/metrics"
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// StreakBonus grants Stars extra stars the first time a streak reaches Days.
type StreakBonus struct {
	Days  int
	Stars int
}

// StreakBonuses is ordered by Days ascending.
var StreakBonuses = []StreakBonus{
	{Days: 3, Stars: 1},
	{Days: 7, Stars: 2},
	{Days: 14, Stars: 3},
}

// TotalMilestones unlock an achievement (no bonus) once lifetime stars reach them.
var TotalMilestones = []int{20, 50, 100, 200}

// AchievementNotifier tells a parent about newly unlocked achievements.
type AchievementNotifier interface {
	NotifyAchievements(ctx context.Context, parent *models.Parent, child *models.Child, unlocked []models.Achievement) error
}

type RewardService struct {
	Repos     repositories.Manager
	Calendar  *Calendar
	Publisher StarEventPublisher
	Notifier  AchievementNotifier
}

func NewRewardService(repos repositories.Manager, calendar *Calendar) *RewardService {
	return &RewardService{Repos: repos, Calendar: calendar}
}

type AddStarsInput struct {
	ChildID string
	TaskID  *string
	Stars   int
	Note    string
}

type RewardResult struct {
	Streak       int                  `json:"streak"`
	BonusAwarded int                  `json:"bonus_awarded"`
	Unlocked     []models.Achievement `json:"achievements"`
}

// AddStarsForChild appends a star log for today, recomputes the streak and
// grants streak bonuses and milestone achievements that were not granted yet.
// Everything runs in one transaction; the unique achievement index makes the
// grants idempotent under concurrent calls.
func (s *RewardService) AddStarsForChild(ctx context.Context, in AddStarsInput) (*RewardResult, error) {
	today := s.Calendar.Today()
	todayKey := s.Calendar.DayKey(today)
	result := &RewardResult{Unlocked: []models.Achievement{}}

	err := s.Repos.Transaction(ctx, func(tx repositories.Manager) error {
		entry := models.StarLog{
			ChildID: in.ChildID,
			TaskID:  in.TaskID,
			Stars:   in.Stars,
			Note:    in.Note,
			Day:     todayKey,
		}
		if err := tx.StarLogs().Create(ctx, &entry); err != nil {
			return fmt.Errorf("create star log: %w", err)
		}

		days, err := tx.StarLogs().DistinctDays(ctx, in.ChildID, "")
		if err != nil {
			return fmt.Errorf("load star days: %w", err)
		}
		result.Streak = ComputeStreak(days, today)

		for _, bonus := range StreakBonuses {
			if result.Streak < bonus.Days {
				break
			}
			achievement := models.Achievement{
				ChildID:     in.ChildID,
				Kind:        models.AchievementKindStreak,
				Threshold:   bonus.Days,
				Title:       fmt.Sprintf("%d-day streak", bonus.Days),
				Description: fmt.Sprintf("Kept the streak going, %d bonus stars", bonus.Stars),
			}
			inserted, err := tx.Achievements().CreateIfAbsent(ctx, &achievement)
			if err != nil {
				return fmt.Errorf("create streak achievement: %w", err)
			}
			if !inserted {
				continue
			}

			bonusLog := models.StarLog{
				ChildID: in.ChildID,
				Stars:   bonus.Stars,
				IsBonus: true,
				Note:    fmt.Sprintf("streak bonus %d days", bonus.Days),
				Day:     todayKey,
			}
			if err := tx.StarLogs().Create(ctx, &bonusLog); err != nil {
				return fmt.Errorf("create bonus log: %w", err)
			}
			result.BonusAwarded += bonus.Stars
			result.Unlocked = append(result.Unlocked, achievement)
		}

		total, err := tx.StarLogs().TotalStars(ctx, in.ChildID)
		if err != nil {
			return fmt.Errorf("sum stars: %w", err)
		}
		for _, limit := range TotalMilestones {
			if total < limit {
				break
			}
			achievement := models.Achievement{
				ChildID:     in.ChildID,
				Kind:        models.AchievementKindTotal,
				Threshold:   limit,
				Title:       fmt.Sprintf("%d stars collected", limit),
				Description: "Keep it up!",
			}
			inserted, err := tx.Achievements().CreateIfAbsent(ctx, &achievement)
			if err != nil {
				return fmt.Errorf("create total achievement: %w", err)
			}
			if inserted {
				result.Unlocked = append(result.Unlocked, achievement)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.StarsLogged.Add(float64(in.Stars))
	metrics.BonusStars.Add(float64(result.BonusAwarded))
	for _, a := range result.Unlocked {
		metrics.AchievementsUnlocked.WithLabelValues(a.Kind).Inc()
	}
	return result, nil
}

type LogStarsInput struct {
	ChildID string
	TaskID  string
	Stars   *int
	Note    string
}

// LogStars is the parent-facing action: it checks that the child and the
// optional task belong to the parent and the task to that child, then records the stars. When no star
// count is given the task's value is used, falling back to 1.
func (s *RewardService) LogStars(ctx context.Context, parent *models.Parent, in LogStarsInput) (*RewardResult, error) {
	if parent == nil {
		return nil, ErrNotLoggedIn
	}
	child, err := ownedChild(ctx, s.Repos, parent, in.ChildID, ErrNoPermissionStar)
	if err != nil {
		return nil, err
	}

	stars := 1
	var taskID *string
	if id := strings.TrimSpace(in.TaskID); id != "" {
		task, err := s.Repos.Tasks().FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("lookup task: %w", err)
		}
		if task == nil || task.ParentID != parent.ID || task.ChildID != child.ID {
			return nil, ErrInvalidTask
		}
		taskID = &task.ID
		if task.Stars > 0 {
			stars = task.Stars
		}
	}
	if in.Stars != nil && *in.Stars > 0 {
		stars = *in.Stars
	}

	result, err := s.AddStarsForChild(ctx, AddStarsInput{
		ChildID: child.ID,
		TaskID:  taskID,
		Stars:   stars,
		Note:    strings.TrimSpace(in.Note),
	})
	if err != nil {
		return nil, err
	}

	s.announce(ctx, parent, child, stars, result)
	return result, nil
}

// announce runs after commit; failures here never undo the logged stars.
func (s *RewardService) announce(ctx context.Context, parent *models.Parent, child *models.Child, stars int, result *RewardResult) {
	if s.Publisher != nil {
		s.Publisher.PublishStars(parent.ID, models.StarEvent{
			Type:         models.StarEventType,
			ParentID:     parent.ID,
			ChildID:      child.ID,
			ChildName:    child.Name,
			Stars:        stars,
			Streak:       result.Streak,
			BonusAwarded: result.BonusAwarded,
			Achievements: result.Unlocked,
			Timestamp:    time.Now(),
		})
	}

	if s.Notifier != nil && len(result.Unlocked) > 0 {
		if err := s.Notifier.NotifyAchievements(ctx, parent, child, result.Unlocked); err != nil {
			slog.WarnContext(ctx, "Failed to send achievement notification",
				"parent_id", parent.ID, "child_id", child.ID, "error", err)
		}
	}
}
