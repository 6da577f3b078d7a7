package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/codeprnv/login-security/internal/auth/service"
)

const claimsLocalKey = "claims"

// RequireAuth verifies the Bearer access token and refreshes session
// last-used as a side effect of authenticated activity.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Access token required"})
		}

		claims, err := h.tokenService.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(claimsLocalKey, claims)
		h.userService.TouchSession(c.Context(), claims.UserID)

		return c.Next()
	}
}

func authenticatedClaims(c *fiber.Ctx) *service.JWTCustomClaims {
	claims, _ := c.Locals(claimsLocalKey).(*service.JWTCustomClaims)
	return claims
}
