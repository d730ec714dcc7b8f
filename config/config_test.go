package config

import (
	"testing"

	"github.com/caarlos0/env/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, vars map[string]string) *AppConfig {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
	cfg := &AppConfig{}
	require.NoError(t, env.Parse(cfg))
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parse(t, nil)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "absensi-qr-db", cfg.MongoDatabase)
	assert.Equal(t, 60, cfg.QRFreshnessSeconds)
	assert.Len(t, cfg.CORSOrigins, 3)
	require.NoError(t, cfg.Validate())

	sched, err := cfg.Schedule()
	require.NoError(t, err)
	assert.Equal(t, 9*60, sched.ExpectedIn)
	assert.Equal(t, 9*60+15, sched.LateAfter())
	assert.Equal(t, 18*60, sched.ExpectedOut)

	assert.False(t, cfg.BackendEnabled())
	assert.False(t, cfg.ScannerEnabled())
	assert.False(t, cfg.AuthEnabled())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"timezone":  {"TIMEZONE": "Mars/Olympus"},
		"schedule":  {"SCHEDULE_LUNCH_START": "08:00"},
		"freshness": {"QR_FRESHNESS_SECONDS": "0"},
		"rrule":     {"WORKDAY_RRULE": "FREQ=YEARLY;BYMONTH=1"},
		"paseto":    {"PASETO_SECRET": "dG9vLXNob3J0"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := parse(t, vars)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_ClockFormat(t *testing.T) {
	cfg := parse(t, map[string]string{"SCHEDULE_CHECK_OUT": "6pm", "SCHEDULE_CHECK_IN": "9:00"})

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field 'ScheduleCheckIn' must be a time of day as HH:MM.")
	assert.Contains(t, err.Error(), "Field 'ScheduleCheckOut' must be a time of day as HH:MM.")
}

func TestDecodeKey(t *testing.T) {
	key, err := DecodeKey("MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=")
	require.NoError(t, err)
	assert.Len(t, key, 32)

	_, err = DecodeKey("%%%")
	assert.Error(t, err)
}
