package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Anky1388/SFIRN/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MealLog{},
		&models.NGO{},
		&models.AttendanceRecord{},
		&models.AttendanceLog{},
		&models.Menu{},
		&models.MenuItem{},
		&models.RedistributionLog{},
		&models.Prediction{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// MessLocation returns the mess's coordinates from MESS_LAT/MESS_LNG.
// Matching and the nearby endpoint use this as the pickup origin.
func MessLocation() (lat, lng float64) {
	lat, _ = strconv.ParseFloat(os.Getenv("MESS_LAT"), 64)
	lng, _ = strconv.ParseFloat(os.Getenv("MESS_LNG"), 64)
	return lat, lng
}
