package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayLayout is the format of StarLog.Day keys.
const DayLayout = "2006-01-02"

// StarLog is an append-only record of stars earned by a child on one calendar day.
// Day holds the date in the configured application time zone.
type StarLog struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ChildID   string    `json:"child_id" gorm:"index:idx_star_logs_child_day,priority:1;size:36;not null"`
	TaskID    *string   `json:"task_id,omitempty" gorm:"size:36"`
	Stars     int       `json:"stars" gorm:"not null"`
	IsBonus   bool      `json:"is_bonus" gorm:"not null;default:false"`
	Note      string    `json:"note,omitempty"`
	Day       string    `json:"day" gorm:"index:idx_star_logs_child_day,priority:2;size:10;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *StarLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// DayStars is the sum of stars logged for one day.
type DayStars struct {
	Day   string `json:"date"`
	Stars int    `json:"stars"`
}
