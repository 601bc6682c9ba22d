package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
)

type Config struct {
	Issuer       string              // Issuer claim for API tokens (default: chambers)
	DatabaseFile string              // Path to SQLite database file (default: ./chambers.db)
	PepperFile   string              // Path to file containing pepper for password hashing (default: ./pepper)
	SeedPassword string              // Password of the seeded judge on first start (default: password123)
	AccessPolicy domain.AccessPolicy // Who may open a case by id: open or assigned (default: open)
	SessionTTL   time.Duration       // Browser session lifetime (default: 12h)
	CookieSecure bool                // Set the Secure attribute on the session cookie (default: false)

	Env                  string        // Environment (dev, test, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired session purge interval (default: 1h)
}

// LoadConfig reads the environment. Only a malformed CASE_ACCESS_POLICY is an
// error; other unparseable values fall back to their defaults.
func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer:       getEnvOrDefault("CHAMBERS_ISSUER", "chambers"),
		DatabaseFile: getEnvOrDefault("CHAMBERS_DATABASE_FILE", "chambers.db"),
		PepperFile:   getEnvOrDefault("CHAMBERS_PEPPER_FILE", "pepper"),
		SeedPassword: getEnvOrDefault("CHAMBERS_SEED_PASSWORD", "password123"),
		SessionTTL:   getEnvDurationOrDefault("SESSION_TTL", 12*time.Hour),
		CookieSecure: getEnvBoolOrDefault("COOKIE_SECURE", false),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	raw := getEnvOrDefault("CASE_ACCESS_POLICY", string(domain.AccessOpen))
	policy, ok := domain.ParseAccessPolicy(raw)
	if !ok {
		return Config{}, fmt.Errorf("invalid CASE_ACCESS_POLICY %q: want %q or %q",
			raw, domain.AccessOpen, domain.AccessAssigned)
	}
	cfg.AccessPolicy = policy

	return cfg, nil
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
