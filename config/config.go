package config

import (
	"errors"
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	DB struct {
		LogQueries bool
	}
	Auth struct {
		JWTSecret string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
		TTL      Duration
	}
	Sentry struct {
		DSN         string
		Environment string
	}
	Log struct {
		File       string
		MaxSizeMB  int
		MaxBackups int
	}
	RateLimit struct {
		QuestionsPerMinute float64
		Burst              int
	}
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth: JWTSecret is empty")
	}
	return nil
}

// Duration decodes TOML strings like "5m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}
