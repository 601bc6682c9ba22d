package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/chambers/internal/chambers/domain"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"CHAMBERS_ISSUER", "CHAMBERS_DATABASE_FILE", "CHAMBERS_PEPPER_FILE",
		"CHAMBERS_SEED_PASSWORD", "CASE_ACCESS_POLICY", "SESSION_TTL",
		"COOKIE_SECURE", "PORT", "HOUSEKEEPING_INTERVAL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "chambers", cfg.Issuer)
	require.Equal(t, "chambers.db", cfg.DatabaseFile)
	require.Equal(t, "password123", cfg.SeedPassword)
	require.Equal(t, domain.AccessOpen, cfg.AccessPolicy)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CASE_ACCESS_POLICY", "assigned")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("PORT", "9090")
	t.Setenv("HOUSEKEEPING_INTERVAL", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, domain.AccessAssigned, cfg.AccessPolicy)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 5*time.Minute, cfg.HousekeepingInterval)
}

func TestLoadConfigMalformedValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("COOKIE_SECURE", "maybe")
	t.Setenv("CASE_ACCESS_POLICY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.False(t, cfg.CookieSecure)
}

func TestLoadConfigRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("CASE_ACCESS_POLICY", "everyone")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "CASE_ACCESS_POLICY")
}
