package presenters

import (
	"recipe-study-backend/domain"
	"recipe-study-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse reports a failed request. Internal errors never leak their
// detail in production mode; the participant gets a generic apology.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	if status >= fiber.StatusInternalServerError && utils.GetConfig("IS_PROD") == "true" {
		detail = domain.MessageInternalError
	}
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
