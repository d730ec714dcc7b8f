package middleware

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Absensi-QR/pkg/apperror"
)

// RequireEnabled answers with def instead of reaching the handler while a
// feature is not configured.
func RequireEnabled(enabled bool, def apperror.Definition) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return reject(c, def, "")
		}
		return c.Next()
	}
}
