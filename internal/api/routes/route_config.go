package routes

import (
	"recipe-study-backend/internal/api/handlers"
	"recipe-study-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type Config struct {
	App          *fiber.App
	StudyHandler handlers.StudyHandler
	AdminHandler handlers.AdminHandler
	Middleware   middleware.Middleware
	Sessions     *session.Store
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.StudyRoutes()
	c.AdminRoutes()
}

func (c *Config) StudyRoutes() {
	participant := c.Middleware.ParticipantMiddleware(c.Sessions)

	c.App.Get("/", c.StudyHandler.Welcome)
	c.App.Get("/register", c.StudyHandler.RegisterForm)
	c.App.Post("/register", c.StudyHandler.Register)
	c.App.Get("/thank_you", c.StudyHandler.ThankYou)

	// everything past registration needs an active study session
	c.App.Get("/instructions", participant, c.StudyHandler.Instructions)
	c.App.Get("/study", participant, c.StudyHandler.Study)
	c.App.Post("/rate_recipe", participant, c.StudyHandler.RateRecipe)
	c.App.Get("/questionnaire", participant, c.StudyHandler.QuestionnaireForm)
	c.App.Post("/questionnaire", participant, c.StudyHandler.SubmitQuestionnaire)
}

func (c *Config) AdminRoutes() {
	admin := c.App.Group("/admin", c.Middleware.AdminMiddleware())
	admin.Get("/stats", c.AdminHandler.GetStats)
}
