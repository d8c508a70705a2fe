package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Child struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ParentID  string    `json:"parent_id" gorm:"index;size:36;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Age       *int      `json:"age"`
	ColorTag  string    `json:"color_tag" gorm:"size:16"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Child) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
