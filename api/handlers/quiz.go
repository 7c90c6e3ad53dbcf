package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/utils"
	"github.com/ecoquest/ecoquest/ecoquest/quiz"
)

// QuizSubmitRequest carries the day's answers.
type QuizSubmitRequest struct {
	Answers []quiz.Answer `json:"answers"`
}

func QuizDaily(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		questions, err := app.Quiz.Daily(c.Context())
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, questions, "Daily quiz retrieved successfully")
	}
}

func QuizSubmit(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req QuizSubmitRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", map[string]string{
				"error": err.Error(),
			})
		}

		result, err := app.Quiz.Submit(c.Context(), identity.UserID, req.Answers)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, result, "Quiz submitted successfully")
	}
}
