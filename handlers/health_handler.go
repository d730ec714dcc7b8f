package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Sistem-Absensi-QR/models"
)

type HealthHandler struct {
	backend bool
	scanner bool
}

func NewHealthHandler(backendEnabled, scannerEnabled bool) *HealthHandler {
	return &HealthHandler{backend: backendEnabled, scanner: scannerEnabled}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the backend and the scanner are configured
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router / [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Message: "QR Attendance Scanner API",
		Status:  "running",
		Backend: h.backend,
		Scanner: h.scanner,
		Docs:    "/docs/index.html",
	})
}
