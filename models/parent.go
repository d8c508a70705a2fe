package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Parent struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Phone       string    `json:"phone" gorm:"uniqueIndex;size:32;not null"`
	Name        string    `json:"name"`
	DeviceToken string    `json:"-"` // FCM токен устройства родителя
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Parent) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
