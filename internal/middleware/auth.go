package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bhupatisharma/swish/internal/apperrors"
	"github.com/bhupatisharma/swish/internal/dto"
	"github.com/bhupatisharma/swish/internal/token"
)

// RequireAuth extracts and verifies the bearer token before anything else
// runs. On failure the request terminates here; no store is touched.
func RequireAuth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: apperrors.ErrMissingToken.Error()})
		}

		uid, err := tokens.Verify(strings.TrimSpace(auth[7:]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Message: apperrors.ErrInvalidToken.Error()})
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}

// UserID returns the authenticated user's id stashed by RequireAuth.
func UserID(c *fiber.Ctx) string {
	if uid, ok := c.Locals("user_id").(string); ok {
		return uid
	}
	return ""
}
