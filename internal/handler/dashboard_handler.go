package handler

import (
	"time"

	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo, now: time.Now}
}

// GetStats always reports on the server's current local date.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	date := h.now().Format(model.DateLayout)

	stats, err := h.repo.GetDashboardStats(date)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
