package middleware

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Absensi-QR/pkg/apperror"
)

func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentUser(c)
		if !ok {
			return reject(c, apperror.Unauthorized, "Not authenticated or session data is corrupted")
		}
		if !claims.IsAdmin() {
			return reject(c, apperror.Forbidden, "Access denied. Admin role required")
		}
		return c.Next()
	}
}
