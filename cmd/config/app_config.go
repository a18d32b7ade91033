package config

import (
	"recipe-study-backend/internal/api/handlers"
	"recipe-study-backend/internal/api/routes"
	"recipe-study-backend/internal/middleware"
	"recipe-study-backend/internal/utils"
	"recipe-study-backend/pkg/assignment"
	"recipe-study-backend/pkg/catalog"
	"recipe-study-backend/pkg/recommender"
	"recipe-study-backend/pkg/stats"
	"recipe-study-backend/pkg/study"
	"math/rand"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, recipeCatalog *catalog.Catalog) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// anonymous cookie session holding the participant id
	sessions := session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
	})

	// Repository
	studyRepository := study.NewStudyRepository(db)
	statsRepository := stats.NewStatsRepository(db)

	// Service
	assigner := assignment.NewVersionAssigner(rand.NewSource(time.Now().UnixNano()))
	studyService := study.NewStudyService(studyRepository, assigner)
	recommenderService := recommender.NewRecommender(recipeCatalog)
	statsService := stats.NewStatsService(statsRepository)

	// Handler
	studyHandler := handlers.NewStudyHandler(studyService, recommenderService, validator, sessions)
	adminHandler := handlers.NewAdminHandler(statsService)

	// routes
	routesConfig := routes.Config{
		App:          app,
		StudyHandler: studyHandler,
		AdminHandler: adminHandler,
		Middleware:   middlewares,
		Sessions:     sessions,
	}
	routesConfig.Setup()
	return app, nil
}
