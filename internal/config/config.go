package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	BaseURL string

	RedisURL      string
	SessionPrefix string

	HTTPTimeout time.Duration

	MsgOverrideDir string
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		HTTPTimeout:   30 * time.Second,
		SessionPrefix: "veil:session:",
	}

	cfg.BaseURL = strings.TrimSpace(os.Getenv("VEIL_BASE_URL"))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.MsgOverrideDir = strings.TrimSpace(os.Getenv("MSG_OVERRIDE_DIR"))

	if v := strings.TrimSpace(os.Getenv("SESSION_PREFIX")); v != "" {
		cfg.SessionPrefix = v
	}
	if v := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT_SEC")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeout = time.Duration(n) * time.Second
		}
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("VEIL_BASE_URL is required")
	}
	return cfg, nil
}
