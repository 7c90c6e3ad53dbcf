package middleware

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/models"
	"github.com/ecoquest/ecoquest/api/utils"
)

// Identity headers set by the authenticating gateway. The service trusts
// them as-is; token verification happens upstream.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// AuthRequired ensures the request carries a gateway identity and stores
// it in the context for handlers.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := identityFromHeaders(c)
		if err != nil {
			slog.Debug("Auth required: no valid identity", slog.String("error", err.Error()))
			return utils.SendUnauthorized(c, "Authentication required")
		}

		c.Locals("identity", identity)

		slog.Debug("Auth middleware: user authenticated",
			slog.Int64("user_id", identity.UserID),
			slog.String("role", identity.Role))

		return c.Next()
	}
}

// AdminRequired ensures the caller has the admin role. Must run after
// AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := utils.ExtractIdentity(c)
		if !ok {
			slog.Warn("Admin required: no identity in context")
			return utils.SendForbidden(c, "Access denied")
		}

		if !strings.EqualFold(identity.Role, "admin") {
			slog.Warn("Admin required: user lacks admin role",
				slog.Int64("user_id", identity.UserID),
				slog.String("role", identity.Role))
			return utils.SendForbidden(c, "Admin access required")
		}

		return c.Next()
	}
}

// OptionalAuth stores the identity in context when present, but does not
// require one.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if identity, err := identityFromHeaders(c); err == nil {
			c.Locals("identity", identity)
		}
		return c.Next()
	}
}

func identityFromHeaders(c *fiber.Ctx) (*models.Identity, error) {
	raw := c.Get(HeaderUserID)
	if raw == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "missing identity header")
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "malformed identity header")
	}

	role := c.Get(HeaderUserRole)
	if role == "" {
		role = "user"
	}

	return &models.Identity{UserID: userID, Role: role}, nil
}
