package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"garage/internal/auth"
	"garage/internal/config"
	"garage/internal/db"
	"garage/internal/model"
	"garage/internal/repository"
)

// Seed bootstraps the database with an ADMIN user (credentials from
// SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD) and a small demo data set so a
// fresh install is usable immediately. Existing rows are left untouched.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.Vehicle{},
		&model.WorkOrder{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	if err := seedAdmin(ctx, userRepo, cfg.SeedAdminUser, cfg.SeedAdminPass); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := seedDemoData(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Println("Seed completed successfully!")
}

func seedAdmin(ctx context.Context, users repository.UserRepository, username, password string) error {
	if _, err := users.FindByUsername(ctx, username); err == nil {
		log.Printf("Admin user %q already exists, skipping", username)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin user %q", username)
	return nil
}

func seedDemoData(ctx context.Context, gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Client{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Clients already present, skipping demo data")
		return nil
	}

	email := "jane@example.com"
	client := &model.Client{
		Name:        "Jane Doe",
		PhoneNumber: "+34 600 111 222",
		Email:       &email,
	}
	if err := gormDB.WithContext(ctx).Create(client).Error; err != nil {
		return err
	}

	vehicle := &model.Vehicle{
		VehicleType: "Car",
		BrandModel:  "Toyota Corolla",
		Kilometers:  120000,
		PlateNumber: "ABC-123",
		OwnerID:     client.ID,
	}
	if err := gormDB.WithContext(ctx).Create(vehicle).Error; err != nil {
		return err
	}

	log.Printf("Seeded demo client %d with vehicle %d", client.ID, vehicle.ID)
	return nil
}
