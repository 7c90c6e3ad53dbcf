package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/utils"
)

func UsersMe(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		ctx := c.Context()

		user, err := app.Users.GetByID(ctx, identity.UserID)
		if err != nil {
			return err
		}
		stats, err := app.Users.GetStats(ctx, identity.UserID)
		if err != nil {
			return err
		}
		streak, err := app.Users.GetStreak(ctx, identity.UserID)
		if err != nil {
			return err
		}

		return utils.SendSuccess(c, fiber.Map{
			"user":   user,
			"stats":  stats,
			"streak": streak,
		}, "Profile retrieved successfully")
	}
}

func UsersBadges(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		badges, err := app.Users.ListBadges(c.Context(), identity.UserID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, badges, "Badges retrieved successfully")
	}
}

func UsersStreak(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		streak, err := app.Users.GetStreak(c.Context(), identity.UserID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, streak, "Streak retrieved successfully")
	}
}
