package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultServiceName = "checkout"

var startedAt = time.Now()

// HealthCheck reports liveness along with the fiber app name and how long
// the process has been up.
func HealthCheck(c *fiber.Ctx) error {
	service := c.App().Config().AppName
	if service == "" {
		service = defaultServiceName
	}

	return c.JSON(fiber.Map{
		"status":         "ok",
		"service":        service,
		"uptime_seconds": int64(time.Since(startedAt).Seconds()),
	})
}
