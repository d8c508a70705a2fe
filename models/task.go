package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	ChildID     string    `json:"child_id" gorm:"index;size:36;not null"`
	ParentID    string    `json:"parent_id" gorm:"index;size:36;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Stars       int       `json:"stars" gorm:"not null;default:1"`
	Schedule    string    `json:"schedule,omitempty"` // free text, e.g. "every evening"
	Active      bool      `json:"active" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
