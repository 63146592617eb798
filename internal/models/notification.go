package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string         `gorm:"size:20;not null" json:"type"` // order, expiry, system
	Message   string         `gorm:"type:text;not null" json:"message"`
	Read      bool           `gorm:"not null;default:false" json:"read"`
}

func (Notification) TableName() string {
	return "notifications"
}
