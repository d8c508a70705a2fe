package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OtpRequest struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Phone     string    `json:"phone" gorm:"index;size:32;not null"`
	CodeHash  string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
	Used      bool      `json:"used" gorm:"not null;default:false"`
	Attempts  int       `json:"attempts" gorm:"not null;default:0"`
	ParentID  *string   `json:"parent_id,omitempty" gorm:"size:36"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *OtpRequest) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// IsUsable reports whether the code can still be checked at the given moment.
func (o *OtpRequest) IsUsable(now time.Time) bool {
	return !o.Used && now.Before(o.ExpiresAt)
}
