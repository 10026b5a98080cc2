package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Session store backends
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	// PanelURL is the base URL of the Pterodactyl panel, without a
	// trailing slash. Also used to build server management links.
	PanelURL string
	// PanelAPIKey is the application API key sent as a bearer token.
	PanelAPIKey string
	// SessionSecret signs session cookie values.
	SessionSecret string
	// Port is the HTTP listen port. Defaults to 3000.
	Port int
	// SessionStore selects the session backend ("memory" or "redis").
	SessionStore string
	// RedisURL is required when SessionStore is "redis".
	RedisURL string
	// SessionTTL is how long a login lasts.
	SessionTTL time.Duration
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		PanelURL:      strings.TrimSuffix(strings.TrimSpace(os.Getenv("PANEL_URL")), "/"),
		PanelAPIKey:   strings.TrimSpace(os.Getenv("PANEL_API_KEY")),
		SessionSecret: strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		SessionStore:  fallback(os.Getenv("SESSION_STORE"), SessionStoreMemory),
		RedisURL:      strings.TrimSpace(os.Getenv("REDIS_URL")),
	}

	port := fallback(os.Getenv("PORT"), "3000")
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", port)
	}
	cfg.Port = p

	hours := fallback(os.Getenv("SESSION_TTL_HOURS"), "24")
	if h, err := strconv.Atoi(hours); err == nil && h > 0 {
		cfg.SessionTTL = time.Duration(h) * time.Hour
	} else {
		cfg.SessionTTL = 24 * time.Hour
	}

	if cfg.PanelURL == "" {
		return Config{}, errors.New("PANEL_URL is required")
	}
	if cfg.PanelAPIKey == "" {
		return Config{}, errors.New("PANEL_API_KEY is required")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET is required")
	}
	switch cfg.SessionStore {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if cfg.RedisURL == "" {
			return Config{}, errors.New("REDIS_URL is required when SESSION_STORE=redis")
		}
	default:
		return Config{}, fmt.Errorf("invalid SESSION_STORE %q: must be %q or %q",
			cfg.SessionStore, SessionStoreMemory, SessionStoreRedis)
	}

	return cfg, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
