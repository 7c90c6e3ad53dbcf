package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/utils"
)

func HealthCheck(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "healthy"
		if err := app.DB.Ping(c.Context()); err != nil {
			status = "degraded"
		}
		return utils.SendSuccess(c, fiber.Map{
			"status":  status,
			"version": app.Version,
			"commit":  app.Commit,
		}, "Health check successful")
	}
}
