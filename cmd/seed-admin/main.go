// Command seed-admin creates an admin account from SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD when no admin with that email exists yet.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"go-booking/config"
	"go-booking/models"
	"go-booking/repositories"
	"go-booking/services"
	"go-booking/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.StoreDriver != config.DriverMongo {
		log.Fatalf("seed-admin needs STORE_DRIVER=%s", config.DriverMongo)
	}

	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := utils.ConnectDB(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB connection error: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DBName)
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("MongoDB index setup failed: %v", err)
	}
	admins := repositories.NewAdminRepository(db)

	if _, err := admins.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin %s already exists, nothing to do", email)
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Fatalf("Lookup failed: %v", err)
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Hashing password failed: %v", err)
	}
	admin := &models.Admin{Email: email, Password: hash}
	if err := admins.Create(ctx, admin); err != nil {
		log.Fatalf("Creating admin failed: %v", err)
	}
	log.Printf("Created admin %s (%s)", email, admin.ID.Hex())
}
