// Package config reads the service settings from the environment, after
// loading an optional .env file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"3000"`
	DatabaseDSN string `envconfig:"DATABASE_DSN" default:":memory:"`
	DBLog       bool   `envconfig:"DB_LOG" default:"false"`

	JWTSecret    string        `envconfig:"JWT_SECRET"`
	TokenTTL     time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	SMSCode      string        `envconfig:"SMS_CODE" default:"1234"`
	AuthDisabled bool          `envconfig:"AUTH_DISABLED" default:"false"`

	LatencyRead       time.Duration `envconfig:"LATENCY_READ" default:"300ms"`
	LatencyWrite      time.Duration `envconfig:"LATENCY_WRITE" default:"300ms"`
	LatencyTransition time.Duration `envconfig:"LATENCY_TRANSITION" default:"200ms"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads .env when present and fills a Config from the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not read .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	if cfg.JWTSecret == "" {
		// Tokens stop validating on restart, which matches the store resetting anyway
		cfg.JWTSecret = uuid.NewString()
		log.Warn("JWT_SECRET not set, using a random secret for this process")
	}
	return &cfg, nil
}

// SetupLogging applies the level and format to the standard logrus logger
func (c *Config) SetupLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "LOG_LEVEL %q", c.LogLevel)
	}
	log.SetLevel(level)

	switch strings.ToLower(c.LogFormat) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return errors.Errorf("LOG_FORMAT %q is not text or json", c.LogFormat)
	}
	return nil
}
