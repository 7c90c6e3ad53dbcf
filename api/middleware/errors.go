package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/utils"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
)

// CustomErrorHandler maps domain errors to HTTP responses. Handlers can
// return engine errors directly and rely on this mapping.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validationErr *quest.ValidationError
		notFoundErr   *quest.NotFoundError
		forbiddenErr  *quest.ForbiddenError
		conflictErr   *quest.ConflictError
		expiredErr    *quest.ExpiredError
		periodeErr    *quest.PeriodeMismatchError
		stateErr      *quest.InvalidStateError
	)

	switch {
	case errors.As(err, &validationErr):
		return utils.SendBadRequest(c, validationErr.Error(), nil)
	case errors.As(err, &notFoundErr):
		return utils.SendNotFound(c, notFoundErr.Error())
	case errors.As(err, &forbiddenErr):
		return utils.SendForbidden(c, forbiddenErr.Error())
	case errors.As(err, &conflictErr):
		return utils.SendConflict(c, conflictErr.Error(), nil)
	case errors.As(err, &expiredErr):
		return utils.SendError(c, fiber.StatusBadRequest, "QUEST_EXPIRED", expiredErr.Error(), nil)
	case errors.As(err, &periodeErr):
		return utils.SendError(c, fiber.StatusBadRequest, "PERIODE_MISMATCH", periodeErr.Error(), nil)
	case errors.As(err, &stateErr):
		return utils.SendError(c, fiber.StatusBadRequest, "INVALID_STATE", stateErr.Error(), nil)
	}

	if e, ok := err.(*fiber.Error); ok {
		return utils.SendError(c, e.Code, "HTTP_ERROR", e.Message, nil)
	}

	slog.Error("Unhandled request error",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))

	return utils.SendInternalServerError(c, "Internal Server Error")
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		return c.Next()
	}
}
