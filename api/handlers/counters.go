package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/utils"
)

// CounterAdjustRequest moves a named counter by amount (defaults to 1).
type CounterAdjustRequest struct {
	Amount int64 `json:"amount"`
}

func CountersSummary(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		values, err := app.Counters.Summary(c.Context(), identity.UserID, app.Config.CounterNames())
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, values, "Counters retrieved successfully")
	}
}

func CountersIncrement(app *App) fiber.Handler {
	return counterAdjust(app, 1)
}

func CountersDecrement(app *App) fiber.Handler {
	return counterAdjust(app, -1)
}

func counterAdjust(app *App, sign int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		name := c.Params("name")
		if !app.Config.CounterRegistered(name) {
			return utils.SendBadRequest(c, "Unknown counter", map[string]string{
				"counter": name,
			})
		}

		req := CounterAdjustRequest{Amount: 1}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return utils.SendBadRequest(c, "Invalid request body", map[string]string{
					"error": err.Error(),
				})
			}
		}
		if req.Amount <= 0 {
			return utils.SendBadRequest(c, "Amount must be a positive integer", nil)
		}

		value, err := app.Counters.Adjust(c.Context(), identity.UserID, name, sign*req.Amount)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, fiber.Map{
			"counter": name,
			"value":   value,
		}, "Counter adjusted successfully")
	}
}
