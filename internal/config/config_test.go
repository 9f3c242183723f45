package config

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":memory:", cfg.DatabaseDSN)
	assert.Equal(t, "1234", cfg.SMSCode)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.LatencyWrite)
	assert.Equal(t, 200*time.Millisecond, cfg.LatencyTransition)
	assert.False(t, cfg.AuthDisabled)
	assert.NotEmpty(t, cfg.JWTSecret, "a random secret fills an empty JWT_SECRET")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SMS_CODE", "9999")
	t.Setenv("LATENCY_READ", "0s")
	t.Setenv("AUTH_DISABLED", "true")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "9999", cfg.SMSCode)
	assert.Equal(t, time.Duration(0), cfg.LatencyRead)
	assert.True(t, cfg.AuthDisabled)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("TOKEN_TTL", "tomorrow")

	_, err := Load()
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	require.NoError(t, cfg.SetupLogging())
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	assert.Error(t, (&Config{LogLevel: "loud", LogFormat: "text"}).SetupLogging())
	assert.Error(t, (&Config{LogLevel: "info", LogFormat: "xml"}).SetupLogging())
}
