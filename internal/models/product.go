package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Product is a catalog entry that can be added to a cart. NormalizedName is
// unique so that concurrent fulfillment runs for the same ingredient name
// upsert onto one row instead of creating duplicates.
type Product struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	NormalizedName string          `gorm:"size:255;not null;uniqueIndex" json:"-"`
	Unit           string          `gorm:"size:50;not null;default:'pcs'" json:"unit"`
	Price          float64         `json:"price"`
	Category       string          `gorm:"size:50" json:"category"`
	Store          string          `gorm:"size:100" json:"store"`
	OwnerID        *uuid.UUID      `gorm:"type:uuid" json:"owner_id,omitempty"`
	Embedding      pgvector.Vector `gorm:"type:vector(3)" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
