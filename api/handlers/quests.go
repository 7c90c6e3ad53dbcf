package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/utils"
	"github.com/ecoquest/ecoquest/ecoquest/database/models"
)

// QuestRequest is the admin create/update payload for a quest definition.
type QuestRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Points      int64      `json:"points"`
	Target      int        `json:"target"`
	Deadline    *time.Time `json:"deadline"`
	Active      *bool      `json:"active"`
}

func QuestsList(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quests, err := app.Catalog.List(c.Context(), c.Query("search"))
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, quests, "Quests retrieved successfully")
	}
}

func QuestsDetail(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		questID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid quest ID", map[string]string{
				"quest_id": c.Params("id"),
			})
		}

		q, err := app.Catalog.GetByID(c.Context(), questID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, q, "Quest retrieved successfully")
	}
}

func QuestsCreate(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req QuestRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", map[string]string{
				"error": err.Error(),
			})
		}

		q := questFromRequest(&req)
		if err := app.Catalog.Create(c.Context(), q); err != nil {
			return err
		}

		slog.Info("Quest created",
			slog.Int64("quest_id", q.ID),
			slog.String("name", q.Name))

		return utils.SendCreated(c, q, "Quest created successfully")
	}
}

func QuestsUpdate(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		questID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid quest ID", map[string]string{
				"quest_id": c.Params("id"),
			})
		}

		var req QuestRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", map[string]string{
				"error": err.Error(),
			})
		}

		q := questFromRequest(&req)
		q.ID = questID
		if err := app.Catalog.Update(c.Context(), q); err != nil {
			return err
		}

		slog.Info("Quest updated", slog.Int64("quest_id", questID))

		return utils.SendSuccess(c, q, "Quest updated successfully")
	}
}

func QuestsDelete(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		questID, err := parseInt64(c.Params("id"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid quest ID", map[string]string{
				"quest_id": c.Params("id"),
			})
		}

		if err := app.Catalog.Delete(c.Context(), questID); err != nil {
			return err
		}

		slog.Info("Quest deleted", slog.Int64("quest_id", questID))

		return utils.SendNoContent(c)
	}
}

func questFromRequest(req *QuestRequest) *models.Quest {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &models.Quest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Points:      req.Points,
		Target:      req.Target,
		Deadline:    req.Deadline,
		Active:      active,
	}
}
