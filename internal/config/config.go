package config

import (
	"os"
	"strconv"
)

// Booking validation modes. Lenient replicates the historical behavior of the
// booking flow (no date-range or status-precondition checks); strict enforces
// from < to, rejects overlapping bookings, and refuses to re-transition a
// booking that is already confirmed or cancelled.
const (
	BookingValidationLenient = "lenient"
	BookingValidationStrict  = "strict"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env               string
	ServerPort        string
	MySQLDSN          string
	RedisAddr         string
	RedisDB           int
	RedisPass         string
	JWTSecret         string
	UploadDir         string
	BookingValidation string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		Env:               getEnv("APP_ENV", "development"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/stayfinder?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		BookingValidation: getEnv("BOOKING_VALIDATION", BookingValidationLenient),
	}
}

// StrictBookings reports whether strict booking validation is enabled.
func (c *Config) StrictBookings() bool {
	return c.BookingValidation == BookingValidationStrict
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
