package config

import (
	"os"
	"strconv"
	"time"

	"restaurant-manager-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs access tokens, read from env with a dev fallback.
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_manager_dev_secret"))

// TokenTTL is the access-token validity window.
var TokenTTL = time.Duration(getEnvInt("JWT_TTL_HOURS", 1)) * time.Hour

// Load reads .env (if present) and refreshes the derived settings.
// Call once at startup, before InitDB.
func Load() {
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_manager_dev_secret"))
	TokenTTL = time.Duration(getEnvInt("JWT_TTL_HOURS", 1)) * time.Hour
}

func Port() string {
	return getEnv("PORT", "8080")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func InitDB() {
	var err error
	// No TranslateError: the duplicate-key mapping needs the driver's
	// "UNIQUE constraint failed: table.column" text to name the field
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodCategory{},
		&models.FoodItem{},
		&models.Table{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
}
