package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"Sistem-Absensi-QR/config/middleware"
	"Sistem-Absensi-QR/handlers"
	"Sistem-Absensi-QR/pkg/apperror"
	"Sistem-Absensi-QR/pkg/paseto"
	"Sistem-Absensi-QR/service"
)

// Dependencies are built in main and handed to SetupRoutes. Services may be
// nil only when BackendEnabled is false.
type Dependencies struct {
	Attendance *service.AttendanceService
	Reports    *service.ReportService
	Leaves     *service.LeaveService
	Tokens     *paseto.Maker

	BackendEnabled bool
	ScannerEnabled bool

	Log *zap.Logger
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("registering routes",
		zap.Bool("backend", deps.BackendEnabled),
		zap.Bool("scanner", deps.ScannerEnabled),
		zap.Bool("auth", deps.Tokens != nil),
	)

	healthHandler := handlers.NewHealthHandler(deps.BackendEnabled, deps.ScannerEnabled)
	attendanceHandler := handlers.NewAttendanceHandler(deps.Attendance, log)
	reportHandler := handlers.NewReportHandler(deps.Reports, log)
	leaveHandler := handlers.NewLeaveRequestHandler(deps.Leaves, log)

	// Health check & Docs
	app.Get("/", healthHandler.Health)
	app.Get("/docs/*", swagger.HandlerDefault)

	requireBackend := middleware.RequireEnabled(deps.BackendEnabled, apperror.BackendUnavailable)
	auth := middleware.AuthMiddleware(deps.Tokens)

	api := app.Group("/api/v1", requireBackend)

	// The scanner page is unauthenticated; the HMAC signature is the gate.
	attendanceGroup := api.Group("/attendance")
	attendanceGroup.Post("/scan", middleware.RequireEnabled(deps.ScannerEnabled, apperror.ScannerDisabled), attendanceHandler.Scan)
	attendanceGroup.Get("/records", auth, attendanceHandler.GetRecords)

	reportGroup := api.Group("/reports", auth)
	reportGroup.Get("/daily", reportHandler.Daily)
	reportGroup.Get("/weekly", reportHandler.Weekly)
	reportGroup.Get("/monthly", reportHandler.Monthly)

	leaveGroup := api.Group("/leave-requests", auth)
	leaveGroup.Post("/", leaveHandler.CreateLeaveRequest)
	leaveGroup.Get("/me", leaveHandler.GetMyLeaveRequests)

	adminGroup := api.Group("/admin", auth, middleware.AdminMiddleware())
	adminGroup.Get("/attendance/day", reportHandler.AdminDay)
	adminGroup.Get("/leave-requests", leaveHandler.GetAllLeaveRequests)
	adminGroup.Put("/leave-requests/:id/status", leaveHandler.UpdateLeaveRequestStatus)
}
