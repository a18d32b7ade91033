package handlers

import (
	"recipe-study-backend/domain"
	"recipe-study-backend/internal/api/presenters"
	"recipe-study-backend/pkg/stats"

	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetStats(c *fiber.Ctx) error
	}

	adminHandler struct {
		statsService stats.StatsService
	}
)

func NewAdminHandler(statsService stats.StatsService) AdminHandler {
	return &adminHandler{statsService: statsService}
}

func (h *adminHandler) GetStats(c *fiber.Ctx) error {
	res, err := h.statsService.GetStudyStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetStats, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}
