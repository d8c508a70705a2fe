package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AchievementKindStreak = "streak"
	AchievementKindTotal  = "total"
)

// Achievement is unique per (child, kind, threshold); the index is what keeps
// bonuses from being granted twice.
type Achievement struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	ChildID     string    `json:"child_id" gorm:"uniqueIndex:idx_achievement_once,priority:1;size:36;not null"`
	Kind        string    `json:"kind" gorm:"uniqueIndex:idx_achievement_once,priority:2;size:16;not null"`
	Threshold   int       `json:"threshold" gorm:"uniqueIndex:idx_achievement_once,priority:3;not null"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at" gorm:"autoCreateTime"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
