package config

import (
	"recipe-study-backend/internal/utils"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	dbPath := utils.GetConfig("DB_PATH")
	if dbPath == "" {
		dbPath = "user_study.db"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
