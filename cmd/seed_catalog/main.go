package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/config"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/database"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/models"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/service"
)

type seedProduct struct {
	name     string
	unit     string
	price    float64
	category string
	store    string
}

var staples = []seedProduct{
	{"Whole Milk", "l", 1.49, "dairy", "FreshMart"},
	{"Eggs", "pcs", 0.35, "dairy", "FreshMart"},
	{"Butter", "g", 2.99, "dairy", "FreshMart"},
	{"All-Purpose Flour", "kg", 1.89, "baking", "FreshMart"},
	{"Sugar", "kg", 1.29, "baking", "FreshMart"},
	{"Olive Oil", "ml", 5.49, "pantry", "FreshMart"},
	{"Salt", "g", 0.99, "pantry", "FreshMart"},
	{"Black Pepper", "g", 1.99, "pantry", "FreshMart"},
	{"Garlic", "head", 0.79, "vegetable", "GreenGrocer"},
	{"Onion", "pcs", 0.59, "vegetable", "GreenGrocer"},
	{"Tomato", "pcs", 0.89, "vegetable", "GreenGrocer"},
	{"Chicken Breast", "kg", 7.99, "meat", "ButcherBlock"},
	{"Rice", "kg", 2.49, "grain", "FreshMart"},
	{"Pasta", "g", 1.79, "grain", "FreshMart"},
	{"Cheddar Cheese", "g", 3.99, "dairy", "FreshMart"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	for _, p := range staples {
		product := models.Product{
			ID:             uuid.New(),
			Name:           p.name,
			NormalizedName: service.NormalizeProductName(p.name),
			Unit:           p.unit,
			Price:          p.price,
			Category:       p.category,
			Store:          p.store,
			Embedding:      service.GenerateEmbedding(p.name),
		}
		err := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "normalized_name"}}, DoNothing: true}).
			Create(&product).Error
		if err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.name, err)
		}
	}

	log.Printf("Seeded %d catalog products", len(staples))
}
