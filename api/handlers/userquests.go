package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/utils"
)

// StartQuestRequest begins an attempt at a quest for the given periode
// token ("2026-08-31" for daily quests, "2026-W36" for weekly ones).
type StartQuestRequest struct {
	QuestID int64  `json:"quest_id"`
	Periode string `json:"periode"`
}

// ProgressRequest advances an attempt by increment units.
type ProgressRequest struct {
	Increment int `json:"increment"`
}

func UserQuestsStart(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req StartQuestRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", map[string]string{
				"error": err.Error(),
			})
		}

		attempt, err := app.Quests.Start(c.Context(), identity.UserID, req.QuestID, req.Periode)
		if err != nil {
			return err
		}
		return utils.SendCreated(c, attempt, "Quest started successfully")
	}
}

func UserQuestsProgress(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		attemptID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid attempt ID", map[string]string{
				"attempt_id": c.Params("id"),
			})
		}

		var req ProgressRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", map[string]string{
				"error": err.Error(),
			})
		}

		result, err := app.Quests.Progress(c.Context(), identity.UserID, attemptID, req.Increment)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, result, "Progress recorded successfully")
	}
}

func UserQuestsComplete(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		attemptID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid attempt ID", map[string]string{
				"attempt_id": c.Params("id"),
			})
		}

		result, err := app.Quests.Complete(c.Context(), identity.UserID, attemptID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, result, "Quest completed successfully")
	}
}

func UserQuestsDetail(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		attemptID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid attempt ID", map[string]string{
				"attempt_id": c.Params("id"),
			})
		}

		attempt, err := app.Quests.Get(c.Context(), identity.UserID, attemptID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, attempt, "Quest attempt retrieved successfully")
	}
}

func UserQuestsList(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		attempts, err := app.Quests.List(c.Context(), identity.UserID, c.Query("periode"))
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, attempts, "Quest attempts retrieved successfully")
	}
}
