package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"Sistem-Absensi-QR/pkg/attendance"
	util "Sistem-Absensi-QR/pkg/utils"
)

type AppConfig struct {
	Port string `env:"PORT" envDefault:"3000"`

	// MongoDB
	MongoString   string `env:"MONGOSTRING"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"absensi-qr-db"`
	MongoUsername string `env:"MONGO_USERNAME"`
	MongoPassword string `env:"MONGO_PASSWORD"`

	// Secrets. An empty value disables the routes that depend on it.
	QRSecretKey  string `env:"QR_SECRET_KEY"`
	PasetoSecret string `env:"PASETO_SECRET"`

	Timezone           string `env:"TIMEZONE" envDefault:"Asia/Jakarta"`
	QRFreshnessSeconds int    `env:"QR_FRESHNESS_SECONDS" envDefault:"60"`

	// Classifier thresholds, HH:MM in Timezone.
	ScheduleCheckIn      string `env:"SCHEDULE_CHECK_IN" envDefault:"09:00" validate:"hhmm"`
	ScheduleGraceMinutes int    `env:"SCHEDULE_GRACE_MINUTES" envDefault:"15"`
	ScheduleLunchStart   string `env:"SCHEDULE_LUNCH_START" envDefault:"12:00" validate:"hhmm"`
	ScheduleLunchEnd     string `env:"SCHEDULE_LUNCH_END" envDefault:"14:00" validate:"hhmm"`
	ScheduleCheckOut     string `env:"SCHEDULE_CHECK_OUT" envDefault:"18:00" validate:"hhmm"`

	WorkdayRRule  string `env:"WORKDAY_RRULE" envDefault:"FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"`
	HolidayAPIURL string `env:"HOLIDAY_API_URL"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:4173,http://127.0.0.1:5173"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: error loading .env file (might not exist in production): %v", err)
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would make the service misbehave rather than
// merely disable a feature.
func (c *AppConfig) Validate() error {
	if details := util.ValidateStruct(c); len(details) > 0 {
		msgs := make([]string, 0, len(details))
		for _, d := range details {
			msgs = append(msgs, d.Msg)
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, " "))
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Schedule(); err != nil {
		return err
	}
	if c.QRFreshnessSeconds <= 0 {
		return fmt.Errorf("QR_FRESHNESS_SECONDS must be positive, got %d", c.QRFreshnessSeconds)
	}
	if _, err := attendance.NewWorkdayRule(c.WorkdayRRule); err != nil {
		return fmt.Errorf("invalid WORKDAY_RRULE: %w", err)
	}
	if c.PasetoSecret != "" {
		if _, err := DecodeKey(c.PasetoSecret); err != nil {
			return fmt.Errorf("invalid PASETO_SECRET: %w", err)
		}
	}
	return nil
}

func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *AppConfig) Schedule() (attendance.Schedule, error) {
	return attendance.ParseSchedule(c.ScheduleCheckIn, c.ScheduleGraceMinutes, c.ScheduleLunchStart, c.ScheduleLunchEnd, c.ScheduleCheckOut)
}

func (c *AppConfig) Freshness() time.Duration {
	return time.Duration(c.QRFreshnessSeconds) * time.Second
}

func (c *AppConfig) BackendEnabled() bool { return c.MongoString != "" }

func (c *AppConfig) ScannerEnabled() bool { return c.QRSecretKey != "" }

func (c *AppConfig) AuthEnabled() bool { return c.PasetoSecret != "" }

// DecodeKey accepts URL-safe (padded or not) and standard base64 and requires
// a 32 byte result.
func DecodeKey(secret string) ([]byte, error) {
	var (
		key []byte
		err error
	)
	for _, enc := range []*base64.Encoding{base64.URLEncoding, base64.RawURLEncoding, base64.StdEncoding, base64.RawStdEncoding} {
		key, err = enc.DecodeString(secret)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("must decode to exactly 32 bytes, got %d", len(key))
	}
	return key, nil
}
