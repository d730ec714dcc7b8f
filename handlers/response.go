package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"Sistem-Absensi-QR/config/middleware"
	"Sistem-Absensi-QR/models"
	"Sistem-Absensi-QR/pkg/apperror"
)

const requestTimeout = 5 * time.Second

// respondError maps err onto its catalogue status. The message is always
// err's own text so backend failures reach the client unmodified.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	def := apperror.Lookup(err)
	if def.Status >= fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
			zap.String("path", c.Path()),
			zap.String("code", def.Code),
			zap.Error(err),
		)
	}
	return c.Status(def.Status).JSON(models.ErrorResponse{Error: err.Error(), Code: def.Code})
}

func respondValidation(c *fiber.Ctx, details []*models.ValidationDetail) error {
	out := make([]models.ValidationDetail, 0, len(details))
	for _, d := range details {
		out = append(out, *d)
	}
	return c.Status(apperror.ValidationFailed.Status).JSON(models.ValidationErrorResponse{
		Error:  apperror.ValidationFailed.Message,
		Code:   apperror.ValidationFailed.Code,
		Errors: out,
	})
}

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), requestTimeout)
}

// targetEmployee resolves whose data a request reads. Admins may pass
// employee_id; everyone else reads their own.
func targetEmployee(c *fiber.Ctx) (string, error) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return "", apperror.Unauthorized
	}
	requested := c.Query("employee_id")
	if requested == "" || requested == claims.EmployeeID {
		return claims.EmployeeID, nil
	}
	if !claims.IsAdmin() {
		return "", apperror.Forbidden.With("only admins may read another employee's attendance")
	}
	return requested, nil
}
