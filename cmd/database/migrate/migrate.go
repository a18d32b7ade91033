package migration

import (
	"recipe-study-backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Participant{}); err != nil {
		log.Fatalf("Error migrating participant database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Interaction{}); err != nil {
		log.Fatalf("Error migrating interaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.QuestionnaireResponse{}); err != nil {
		log.Fatalf("Error migrating questionnaire database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
