package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stayfinder/internal/auth"
	"stayfinder/internal/cache"
	"stayfinder/internal/config"
	"stayfinder/internal/db"
	"stayfinder/internal/handler"
	"stayfinder/internal/health"
	"stayfinder/internal/model"
	"stayfinder/internal/repository"
	"stayfinder/internal/router"
	"stayfinder/internal/service"
)

// @title StayFinder API
// @version 1.0
// @description Vacation-rental marketplace API: hosts list properties, guests book them.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Booking{},
			&model.Listing{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Listing{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	identities := auth.NewIdentityCache(cacheClient)

	// Initialize services
	userService := service.NewUserService(userRepo, jwtService)
	listingService := service.NewListingService(listingRepo)
	bookingService := service.NewBookingService(bookingRepo, listingRepo, cfg.StrictBookings())

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	listingHandler := handler.NewListingHandler(listingService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

	checker := health.NewDB(gormDB, health.DefaultTTL)
	healthHandler := handler.NewHealthHandler(checker)

	// Register routes
	router.Register(
		e,
		cfg,
		userRepo,
		identities,
		checker,
		userHandler,
		listingHandler,
		bookingHandler,
		uploadHandler,
		healthHandler,
	)

	log.Printf("booking validation mode: %s", cfg.BookingValidation)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
