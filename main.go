package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"Sistem-Absensi-QR/config"
	_ "Sistem-Absensi-QR/docs"
	"Sistem-Absensi-QR/pkg/attendance"
	applog "Sistem-Absensi-QR/pkg/logger"
	"Sistem-Absensi-QR/pkg/paseto"
	"Sistem-Absensi-QR/pkg/signature"
	util "Sistem-Absensi-QR/pkg/utils"
	"Sistem-Absensi-QR/repository"
	"Sistem-Absensi-QR/router"
	"Sistem-Absensi-QR/service"
	_ "time/tzdata"
)

// @title QR Attendance Scanner API
// @version 1.0
// @description Signed QR check-in, lunch and check-out scanning with leave requests and attendance reports
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a PASETO token.
//
// @tag.name Health
// @tag.name Attendance
// @tag.description Scanner and attendance records
//
// @tag.name Reports
// @tag.description Daily, weekly and monthly summaries
//
// @tag.name Leave Request
// @tag.description Employee leave requests
//
// @tag.name Admin
// @tag.description Admin only endpoints
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog := applog.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zlog.Sync() }()

	// Validated by LoadConfig.
	loc, _ := cfg.Location()
	schedule, _ := cfg.Schedule()
	workdays, _ := attendance.NewWorkdayRule(cfg.WorkdayRRule)

	deps := router.Dependencies{
		BackendEnabled: cfg.BackendEnabled(),
		ScannerEnabled: cfg.ScannerEnabled(),
		Log:            zlog,
	}

	if cfg.AuthEnabled() {
		key, _ := config.DecodeKey(cfg.PasetoSecret)
		if deps.Tokens, err = paseto.NewMaker(key); err != nil {
			zlog.Fatal("failed to build token maker", zap.Error(err))
		}
	} else {
		zlog.Warn("PASETO_SECRET is not set, authenticated routes answer 503")
	}

	if deps.BackendEnabled {
		client, err := config.MongoConnect(context.Background(), cfg)
		if err != nil {
			zlog.Error("MongoDB unavailable, backend routes answer 503", zap.Error(err))
			deps.BackendEnabled = false
		} else {
			defer func() {
				if err := config.DisconnectDB(client); err != nil {
					zlog.Error("disconnect failed", zap.Error(err))
				}
			}()
			zlog.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

			db := client.Database(cfg.MongoDatabase)
			attendanceRepo := repository.NewAttendanceRepository(db)
			leaveRepo := repository.NewLeaveRequestRepository(db)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			for name, repo := range map[string]interface{ EnsureIndexes(context.Context) error }{
				"attendance_records": attendanceRepo,
				"leave_requests":     leaveRepo,
			} {
				if err := repo.EnsureIndexes(ctx); err != nil {
					zlog.Error("failed to ensure indexes", zap.String("collection", name), zap.Error(err))
				}
			}
			cancel()

			var verifier *signature.Verifier
			if deps.ScannerEnabled {
				verifier = signature.NewVerifier(cfg.QRSecretKey, cfg.Freshness())
			} else {
				zlog.Warn("QR_SECRET_KEY is not set, scanning answers 503")
			}

			deps.Attendance = service.NewAttendanceService(verifier, schedule, loc, attendanceRepo, leaveRepo, zlog)
			deps.Reports = service.NewReportService(attendanceRepo, leaveRepo, workdays, util.NewHolidayClient(cfg.HolidayAPIURL), loc, zlog)
			deps.Leaves = service.NewLeaveService(leaveRepo, zlog)
		}
	} else {
		zlog.Warn("MONGOSTRING is not set, backend routes answer 503")
	}

	app := fiber.New(fiber.Config{AppName: "QR Attendance Scanner"})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	config.SetupCORS(app, cfg.CORSOrigins)
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	router.SetupRoutes(app, deps)

	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("docs", "http://localhost:"+cfg.Port+"/docs/index.html"),
		zap.Strings("cors_origins", cfg.CORSOrigins),
		zap.String("timezone", cfg.Timezone),
		zap.String("schedule", attendance.FormatClock(schedule.ExpectedIn)+"-"+attendance.FormatClock(schedule.ExpectedOut)),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
