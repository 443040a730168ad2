package app

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/d3r-restaurant/menu-api/pkg/cryptox"
	"github.com/d3r-restaurant/menu-api/pkg/jwtx"
)

// ErrMissingSigningKey aborts startup when MENU_SIGNING_KEY is unset. The key
// is only ever supplied through the environment; there is no built-in default.
var ErrMissingSigningKey = errors.New("MENU_SIGNING_KEY is required")

type Config struct {
	SigningKey []byte // Required: HMAC key for signing access tokens

	Issuer              string        // Optional: issuer claim for tokens (default: menu-api)
	TokenTTL            time.Duration // Optional: access token lifetime (default: 30 days)
	HashCost            int           // Optional: bcrypt cost for client keys (default: 12)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./menu.db)
	CORSOrigins         []string      // Optional: allowed CORS origins (default: *)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() (Config, error) {
	signingKey := os.Getenv("MENU_SIGNING_KEY")
	if signingKey == "" {
		return Config{}, ErrMissingSigningKey
	}

	cfg := Config{
		SigningKey:          []byte(signingKey),
		Issuer:              getEnvOrDefault("MENU_ISSUER", "menu-api"),
		TokenTTL:            getEnvDurationOrDefault("MENU_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		HashCost:            getEnvIntOrDefault("MENU_BCRYPT_COST", cryptox.DefaultHashCost),
		DatabaseFile:        getEnvOrDefault("MENU_DATABASE_FILE", "menu.db"),
		CORSOrigins:         splitAndTrim(getEnvOrDefault("MENU_CORS_ORIGINS", "*")),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
