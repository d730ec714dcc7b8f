// attendctl is the operator companion of the scanner service: it generates
// keys, signs QR payloads the way the mobile app does, and mints tokens.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/skip2/go-qrcode"

	"Sistem-Absensi-QR/config"
	"Sistem-Absensi-QR/models"
	applog "Sistem-Absensi-QR/pkg/logger"
	"Sistem-Absensi-QR/pkg/paseto"
	"Sistem-Absensi-QR/pkg/signature"
	util "Sistem-Absensi-QR/pkg/utils"
	"Sistem-Absensi-QR/repository"
	"Sistem-Absensi-QR/seeder"
)

const usage = `Usage: attendctl <command> [flags]

Commands:
  keygen   print a random base64 32-byte key for PASETO_SECRET or QR_SECRET_KEY
  qr       sign an attendance payload for "now" and optionally write it as a PNG
  token    mint an access token for an employee
  seed     insert a demo week of attendance and leave requests into MongoDB
`

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "keygen":
		err = runKeygen()
	case "qr":
		err = runQR(os.Args[2:])
	case "token":
		err = runToken(os.Args[2:])
	case "seed":
		err = runSeed()
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runKeygen() error {
	key, err := util.GenerateKey()
	if err != nil {
		return err
	}
	fmt.Println(key)
	return nil
}

func runQR(args []string) error {
	fs := flag.NewFlagSet("qr", flag.ExitOnError)
	secret := fs.String("secret", os.Getenv("QR_SECRET_KEY"), "HMAC secret shared with the scanner")
	employeeID := fs.String("employee", "", "employee id")
	name := fs.String("name", "", "full name, first word is the first name")
	role := fs.String("role", "Staff", "employee role")
	department := fs.String("department", "", "department (optional)")
	out := fs.String("out", "", "write the QR code to this PNG file")
	size := fs.Int("size", 256, "PNG size in pixels")
	_ = fs.Parse(args)

	if *secret == "" {
		return fmt.Errorf("a secret is required (-secret or QR_SECRET_KEY)")
	}
	if *employeeID == "" || *name == "" {
		return fmt.Errorf("-employee and -name are required")
	}

	first, last := splitName(*name)
	payload := models.QRPayload{
		EmployeeID:  *employeeID,
		FirstName:   first,
		LastName:    last,
		Role:        *role,
		Department:  *department,
		CheckInTime: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	payload.Signature = signature.NewVerifier(*secret, signature.DefaultFreshness).Sign(payload)

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	fmt.Println(string(raw))

	if *out != "" {
		if err := qrcode.WriteFile(string(raw), qrcode.Medium, *size, *out); err != nil {
			return fmt.Errorf("failed to write QR code: %w", err)
		}
		fmt.Fprintf(os.Stderr, "QR code written to %s (valid for %s)\n", *out, signature.DefaultFreshness)
	}
	return nil
}

func runToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	secret := fs.String("secret", os.Getenv("PASETO_SECRET"), "base64 32-byte PASETO key")
	employeeID := fs.String("employee", "", "employee id")
	name := fs.String("name", "", "display name")
	role := fs.String("role", models.RoleEmployee, "employee or admin")
	ttl := fs.Duration("ttl", paseto.DefaultTokenTTL, "token lifetime")
	_ = fs.Parse(args)

	key, err := config.DecodeKey(*secret)
	if err != nil {
		return fmt.Errorf("invalid PASETO secret: %w", err)
	}
	maker, err := paseto.NewMaker(key)
	if err != nil {
		return err
	}
	token, err := maker.GenerateToken(models.Claims{EmployeeID: *employeeID, Name: *name, Role: *role}, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func runSeed() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log := applog.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	loc, _ := cfg.Location()
	schedule, _ := cfg.Schedule()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := config.MongoConnect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = config.DisconnectDB(client) }()

	db := client.Database(cfg.MongoDatabase)
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRequestRepository(db)
	if err := attendanceRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := leaveRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	res, err := seeder.SeedDemoData(ctx, attendanceRepo, leaveRepo, schedule, loc, time.Now(), log)
	if err != nil {
		return err
	}
	fmt.Printf("inserted %d records and %d leave requests, skipped %d existing\n", res.Records, res.Leaves, res.SkippedExists)
	return nil
}

// splitName keeps the last word as the last name. A single word is used for
// both, since the payload requires each field.
func splitName(name string) (string, string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], fields[0]
	}
	return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
}
