package rest

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

type healthStatus struct {
	Status string `json:"status"`
}

func (h *Handler) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn(ctx, "health check failed", "error", err.Error())
		return c.Status(fiber.StatusServiceUnavailable).JSON(healthStatus{Status: "DOWN"})
	}
	return c.JSON(healthStatus{Status: "UP"})
}
