package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
	"Sistem-Absensi-QR/pkg/paseto"
)

// AuthMiddleware validates the bearer token and stores *models.Claims under
// Locals("user"). A nil maker means tokens are not configured.
func AuthMiddleware(maker *paseto.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if maker == nil {
			return reject(c, apperror.AuthDisabled, "")
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return reject(c, apperror.Unauthorized, "Authorization header is required")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return reject(c, apperror.Unauthorized, "Authorization header format must be Bearer <token>")
		}

		claims, err := maker.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
				Error:   "Invalid or expired token",
				Code:    apperror.Unauthorized.Code,
				Details: err.Error(),
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// CurrentUser returns the claims stored by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (*models.Claims, bool) {
	claims, ok := c.Locals("user").(*models.Claims)
	return claims, ok && claims != nil
}

func reject(c *fiber.Ctx, def apperror.Definition, message string) error {
	if message == "" {
		message = def.Message
	}
	return c.Status(def.Status).JSON(models.ErrorResponse{Error: message, Code: def.Code})
}
