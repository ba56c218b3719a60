package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr         = ":8080"
	defaultDatabaseURL  = "studsafe.db"
	defaultSessionTTL   = "168h"
	defaultUploadDir    = "./uploads"
	defaultCookieSecure = "false"
	defaultSecret       = "change-me-session-secret"
)

type Config struct {
	AppEnv        string
	Addr          string
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
	UploadDir     string
	CookieSecure  bool
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSecret))
	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.CookieSecure, err = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.SessionSecret == defaultSecret {
		return nil, fmt.Errorf("SESSION_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, raw)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func parseBoolEnv(key, fallback string) (bool, error) {
	raw := strings.ToLower(strings.TrimSpace(getEnv(key, fallback)))
	switch raw {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean for %s: %q", key, raw)
}
