package main

import (
	"context"
	"log"
	"time"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/config"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Wait for Postgres to accept connections before migrating.
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := database.WaitReady(ctx, cfg); err != nil {
		log.Fatalf("Database not ready: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations applied")
}
