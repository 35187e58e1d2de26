package config

import (
	"fmt"
	"log"
	"os"

	"hotelmate/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func getDBConfigByEnv(env string) (string, error) {
	var user, password, host, port, name string

	switch env {
	case "dev":
		user = os.Getenv("DEV_DB_USER")
		password = os.Getenv("DEV_DB_PASSWORD")
		host = os.Getenv("DEV_DB_HOST")
		port = os.Getenv("DEV_DB_PORT")
		name = os.Getenv("DEV_DB_NAME")
	case "qc":
		user = os.Getenv("QC_DB_USER")
		password = os.Getenv("QC_DB_PASSWORD")
		host = os.Getenv("QC_DB_HOST")
		port = os.Getenv("QC_DB_PORT")
		name = os.Getenv("QC_DB_NAME")
	case "prod":
		user = os.Getenv("PROD_DB_USER")
		password = os.Getenv("PROD_DB_PASSWORD")
		host = os.Getenv("PROD_DB_HOST")
		port = os.Getenv("PROD_DB_PORT")
		name = os.Getenv("PROD_DB_NAME")
	default:
		return "", fmt.Errorf("unknown environment: %s", env)
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require TimeZone=%s",
		host, user, password, name, port, GetEnvDefault("DB_TIMEZONE", "Asia/Ho_Chi_Minh")), nil
}

// OpenDB mở kết nối theo ENV; ENV=local dùng sqlite tại SQLITE_PATH
func OpenDB(env string) (*gorm.DB, error) {
	if env == "local" {
		return OpenSQLite(GetEnvDefault("SQLITE_PATH", "hotelmate.db"))
	}

	dsn, err := getDBConfigByEnv(env)
	if err != nil {
		return nil, err
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite chỉ cho một writer
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func ConnectDB() error {
	var err error
	DB, err = OpenDB(os.Getenv("ENV"))
	if err != nil {
		return fmt.Errorf("fail to connect to db: %w", err)
	}

	log.Println("Successfully connected to db")
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.RatePlan{}, &models.HotelRate{}, &models.RoomAvailability{})
}
