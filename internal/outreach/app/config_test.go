package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/mutuals/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"OUTREACH_ISSUER", "OUTREACH_DATABASE_DRIVER", "OUTREACH_DATABASE_FILE",
		"OUTREACH_SESSION_TTL", "OUTREACH_COOKIE_SECURE", "OPENAI_API_KEY", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "mutuals", cfg.Issuer)
	require.Equal(t, "sqlite", cfg.DatabaseDriver)
	require.Equal(t, "mutuals.db", cfg.DatabaseFile)
	require.Equal(t, jwtx.DefaultSessionTTL, cfg.SessionTTL)
	require.False(t, cfg.CookieSecure)
	require.Empty(t, cfg.OpenAIAPIKey)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OUTREACH_DATABASE_DRIVER", "postgres")
	t.Setenv("OUTREACH_SESSION_TTL", "12h")
	t.Setenv("OUTREACH_COOKIE_SECURE", "true")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15")
	t.Setenv("PORT", "not-a-port")

	cfg := LoadConfig()
	require.Equal(t, "postgres", cfg.DatabaseDriver)
	require.Equal(t, 12*time.Hour, cfg.SessionTTL)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, 8080, cfg.Port)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	dir := t.TempDir()
	cfg := LoadConfig()
	cfg.DatabaseDriver = "oracle"
	cfg.PepperFile = dir + "/pepper"
	cfg.SessionKeyFile = dir + "/session.key"

	_, err := New(cfg)
	require.ErrorContains(t, err, "unknown database driver")
}

func TestNewWiresSqliteStack(t *testing.T) {
	dir := t.TempDir()
	cfg := LoadConfig()
	cfg.DatabaseDriver = "sqlite"
	cfg.DatabaseFile = dir + "/mutuals.db"
	cfg.PepperFile = dir + "/pepper"
	cfg.SessionKeyFile = dir + "/session.key"
	cfg.OpenAIAPIKey = ""
	cfg.LinkedInFixturesFile = ""
	cfg.LogFormat = "text"

	application, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, application.Handler())
	require.Nil(t, application.toolsService.Generator)
	require.NoError(t, application.db.Close())
}
