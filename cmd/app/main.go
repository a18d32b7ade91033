package main

import (
	"recipe-study-backend/cmd/config"
	migration "recipe-study-backend/cmd/database/migrate"
	"recipe-study-backend/internal/utils"
	"recipe-study-backend/pkg/catalog"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	csvPath := utils.GetConfig("RECIPES_CSV")
	if csvPath == "" {
		csvPath = "data/processed_recipes.csv"
	}
	recipeCatalog := catalog.LoadOrSample(csvPath)
	if err := catalog.Seed(db, recipeCatalog); err != nil {
		log.Fatalf("failed to seed recipe catalog: %v", err)
	}

	app, err := config.NewApp(db, recipeCatalog)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
