package database

import (
	"fmt"
	"os"

	"zap-shift/logger"
	log_model "zap-shift/models/log"
	parcelModel "zap-shift/models/parcel"
	paymentModel "zap-shift/models/payment"
	riderModel "zap-shift/models/rider"
	trackingModel "zap-shift/models/tracking"
	userModel "zap-shift/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the process-wide database handle and migrates the schema.
// Called once at startup; every component receives the same handle.
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := DB.AutoMigrate(
		&userModel.User{},
		&parcelModel.Parcel{},
		&riderModel.Rider{},
		&trackingModel.TrackingEvent{},
		&paymentModel.PaymentRecord{},
		&log_model.Log{},
	); err != nil {
		logger.Error("Failed to migrate database schema", err)
		return nil, err
	}
	logger.Success("Database migration completed successfully")

	return DB, nil
}
