// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultWebhookURL is the published Apps Script endpoint that records requests
const DefaultWebhookURL = "https://script.google.com/macros/s/AKfycbyvL9iPWYPHkwSsEGq4Eb7l_QHdSSvH5cMFEMbaSBOYElcS1GiRKH9z6CsEjL4uSzg/exec"

type Config struct {
	Port           int           `env:"PORT" envDefault:"3318"`
	WebhookURL     string        `env:"WEBHOOK_URL" envDefault:"https://script.google.com/macros/s/AKfycbyvL9iPWYPHkwSsEGq4Eb7l_QHdSSvH5cMFEMbaSBOYElcS1GiRKH9z6CsEjL4uSzg/exec"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"30s"`
	SessionStore   string        `env:"SESSION_STORE" envDefault:"memory"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

// ParseFlags reads the environment, then applies flags on top and validates
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("certificate-wizard", flag.ContinueOnError)

	// Env values become the flag defaults so flags win when given
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.WebhookURL, "webhook", cfg.WebhookURL, "Webhook URL for certificate requests")
	fs.DurationVar(&cfg.WebhookTimeout, "webhook-timeout", cfg.WebhookTimeout, "Webhook request timeout")
	fs.StringVar(&cfg.SessionStore, "store", cfg.SessionStore, "Session store (memory, sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL for sqlite or postgres stores")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle time before a session expires")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	u, err := url.Parse(c.WebhookURL)
	if err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("webhook URL must be an absolute http(s) URL, got %q", c.WebhookURL)
	}

	if c.WebhookTimeout <= 0 {
		return errors.New("webhook timeout must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}

	switch c.SessionStore {
	case "memory":
	case "sqlite", "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("database URL required for %s store (use -d or DATABASE_URL env)", c.SessionStore)
		}
	default:
		return fmt.Errorf("unknown session store %q (want memory, sqlite or postgres)", c.SessionStore)
	}

	return nil
}
