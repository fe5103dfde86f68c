package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayfinder/internal/config"
	"stayfinder/internal/db"
	"stayfinder/internal/model"
	"stayfinder/internal/repository"
)

const seedPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Listing{}, &model.Booking{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	listings := repository.NewListingRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	seedUsers := []model.User{
		{FullName: "Alice Host", Email: "alice@host.com", PasswordHash: string(hash), Role: model.RoleHost},
		{FullName: "Bob Guest", Email: "bob@guest.com", PasswordHash: string(hash), Role: model.RoleUser},
	}

	created := 0
	for i := range seedUsers {
		existing, err := users.FindByEmail(ctx, seedUsers[i].Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", seedUsers[i].Email, err)
		}
		if existing != nil {
			seedUsers[i] = *existing
			continue
		}
		if err := users.Create(ctx, &seedUsers[i]); err != nil {
			log.Fatalf("Failed to create user %s: %v", seedUsers[i].Email, err)
		}
		created++
	}
	log.Printf("Users seeded (%d created)", created)

	host := seedUsers[0]
	seedListings := []model.Listing{
		{
			Title:         "Cozy Apartment in Mumbai",
			Location:      "Bandra, Mumbai",
			Description:   "A cozy 1BHK apartment in the heart of Mumbai.",
			PricePerNight: decimal.NewFromInt(1800),
			Images: datatypes.NewJSONSlice([]string{
				"https://images.unsplash.com/photo-1506744038136-46273834b3fb",
				"https://images.unsplash.com/photo-1465101046530-73398c7f28ca",
			}),
			AvailableDates: datatypes.NewJSONSlice([]model.DateRange{
				{From: date(2025, 7, 1), To: date(2025, 7, 10)},
				{From: date(2025, 8, 1), To: date(2025, 8, 15)},
			}),
			HostID: host.ID,
		},
		{
			Title:         "Modern Flat in Bangalore",
			Location:      "Indiranagar, Bangalore",
			Description:   "A modern 2BHK flat with all amenities.",
			PricePerNight: decimal.NewFromInt(2500),
			Images: datatypes.NewJSONSlice([]string{
				"https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd",
				"https://images.unsplash.com/photo-1507089947368-19c1da9775ae",
			}),
			AvailableDates: datatypes.NewJSONSlice([]model.DateRange{
				{From: date(2025, 6, 20), To: date(2025, 6, 30)},
			}),
			HostID: host.ID,
		},
	}

	existing, err := listings.FindByHost(ctx, host.ID)
	if err != nil {
		log.Fatalf("Failed to list host listings: %v", err)
	}
	have := map[string]bool{}
	for _, l := range existing {
		have[l.Title] = true
	}

	created = 0
	for i := range seedListings {
		if have[seedListings[i].Title] {
			continue
		}
		if err := listings.Create(ctx, &seedListings[i]); err != nil {
			log.Fatalf("Failed to create listing %q: %v", seedListings[i].Title, err)
		}
		created++
	}
	log.Printf("Listings seeded (%d created)", created)

	log.Println("Seed completed successfully!")
	log.Printf("  - Host login:  alice@host.com / %s", seedPassword)
	log.Printf("  - Guest login: bob@guest.com / %s", seedPassword)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
