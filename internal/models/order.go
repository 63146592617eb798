package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Status    string         `gorm:"size:20;not null;default:'placed'" json:"status"`
	Total     float64        `json:"total"`
	Items     []OrderItem    `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots the product name, unit and price at order time so the
// order history survives later catalog edits.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Unit      string    `gorm:"size:50" json:"unit"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
