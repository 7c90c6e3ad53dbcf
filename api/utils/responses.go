package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ecoquest/ecoquest/api/models"
)

// SendJSON sends a JSON response using Fiber
func SendJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// SendSuccess sends a successful JSON response
func SendSuccess(c *fiber.Ctx, data interface{}, message string) error {
	response := models.NewSuccessResponse(data, message)
	return SendJSON(c, http.StatusOK, response)
}

// SendCreated sends a created resource JSON response
func SendCreated(c *fiber.Ctx, data interface{}, message string) error {
	response := models.NewSuccessResponse(data, message)
	return SendJSON(c, http.StatusCreated, response)
}

// SendError sends an error JSON response
func SendError(c *fiber.Ctx, statusCode int, code, message string, details map[string]string) error {
	response := models.NewErrorResponse(code, message, details)
	return SendJSON(c, statusCode, response)
}

// SendBadRequest sends a bad request error response
func SendBadRequest(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

// SendUnauthorized sends an unauthorized error response
func SendUnauthorized(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

// SendForbidden sends a forbidden error response
func SendForbidden(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

// SendNotFound sends a not found error response
func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

// SendConflict sends a conflict error response
func SendConflict(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusConflict, "CONFLICT", message, details)
}

// SendInternalServerError sends an internal server error response
func SendInternalServerError(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

// SendNoContent sends a no content response
func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

// ExtractIdentity extracts the authenticated identity from Fiber context
func ExtractIdentity(c *fiber.Ctx) (*models.Identity, bool) {
	v := c.Locals("identity")
	if v == nil {
		return nil, false
	}

	identity, ok := v.(*models.Identity)
	return identity, ok
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *fiber.Ctx) bool {
	identity, ok := ExtractIdentity(c)
	if !ok {
		return false
	}
	return identity.Role == "admin"
}

// GetIPAddress extracts the client IP address
func GetIPAddress(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.IP()
}
