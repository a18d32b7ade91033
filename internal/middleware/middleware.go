package middleware

import (
	"recipe-study-backend/domain"
	"recipe-study-backend/internal/api/presenters"
	"recipe-study-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session key holding the participant identifier. The assigned study
// version is deliberately not stored client-side; it lives only on the
// participant row.
const SessionParticipantKey = "participant_id"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		ParticipantMiddleware(store *session.Store) fiber.Handler
		AdminMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowCredentials: false,
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Admin-Key",
	})
}

// ParticipantMiddleware requires an active study session and exposes the
// participant id to handlers via locals.
func (m *middleware) ParticipantMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
		participantID, ok := sess.Get(SessionParticipantKey).(string)
		if !ok || participantID == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrNoActiveSession)
		}
		c.Locals(SessionParticipantKey, participantID)
		return c.Next()
	}
}

// AdminMiddleware guards the operator dashboard with the configured static
// key. An empty ADMIN_KEY leaves the dashboard open for local runs.
func (m *middleware) AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminKey := utils.GetConfig("ADMIN_KEY")
		if adminKey != "" && c.Get("X-Admin-Key") != adminKey {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, nil)
		}
		return c.Next()
	}
}
