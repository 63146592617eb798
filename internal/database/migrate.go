package database

import (
	"gorm.io/gorm"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/models"
)

// RunMigrations brings the schema up to date. On Postgres the pgvector
// extension is created first so the product embedding column migrates.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return err
		}
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Notification{},
	)
}
