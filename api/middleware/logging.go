package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ecoquest/ecoquest/api/utils"
)

// LoggingMiddleware logs HTTP requests in a structured format and tags
// each request with a request ID.
func LoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		duration := time.Since(start)

		statusCode := c.Response().StatusCode()
		logLevel := slog.LevelInfo
		if statusCode >= 400 && statusCode < 500 {
			logLevel = slog.LevelWarn
		} else if statusCode >= 500 {
			logLevel = slog.LevelError
		}

		logger := slog.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", statusCode),
			slog.Duration("duration", duration),
			slog.String("ip", utils.GetIPAddress(c)),
			slog.Int("size", len(c.Response().Body())),
		)

		if identity, ok := utils.ExtractIdentity(c); ok {
			logger = logger.With(slog.Int64("user_id", identity.UserID))
		}

		if err != nil {
			logger = logger.With(slog.String("error", err.Error()))
		}

		message := "HTTP request processed"
		if err != nil {
			message = "HTTP request failed"
		}

		logger.Log(c.Context(), logLevel, message)

		return err
	}
}

// AuditLogMiddleware logs important administrative actions
func AuditLogMiddleware(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		var userID int64
		if identity, ok := utils.ExtractIdentity(c); ok {
			userID = identity.UserID
		}

		statusCode := c.Response().StatusCode()
		success := err == nil && statusCode >= 200 && statusCode < 300

		slog.Info("Admin action completed",
			slog.String("action", action),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Bool("success", success),
			slog.Int("status", statusCode),
			slog.Duration("duration", time.Since(start)),
			slog.String("ip", utils.GetIPAddress(c)),
			slog.Int64("user_id", userID),
		)

		return err
	}
}
