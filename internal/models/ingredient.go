package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a single pantry item owned by a user. Rows are created by
// manual entry, receipt scans or order fulfillment and only removed when the
// user deletes them.
type Ingredient struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Quantity   float64        `gorm:"not null;default:0" json:"quantity"`
	Unit       string         `gorm:"size:50" json:"unit"`
	Category   string         `gorm:"size:50" json:"category"`
	ExpiryDate *time.Time     `json:"expiry_date,omitempty"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
