package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8081", c.Addr)
	assert.Equal(t, DriverMemory, c.StorageDriver)
	assert.Equal(t, "portfolio.db", c.DatabasePath)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, "admin", c.AdminUsername)
	assert.Equal(t, "admin123", c.AdminPassword)
	assert.Equal(t, 5*time.Minute, c.CacheTTL)
	assert.Equal(t, 10*time.Minute, c.CacheCleanup)
	assert.Equal(t, 10, c.LoginRatePerMinute)
	assert.Equal(t, 5, c.ContactRatePerMinute)
	assert.Equal(t, "info", c.LogLevel)
	assert.True(t, c.UsesDefaultAdminPassword())
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.StorageDriver = "postgres" }},
		{"sqlite without path", func(c *Config) { c.StorageDriver = DriverSQLite; c.DatabasePath = "" }},
		{"short secret", func(c *Config) { c.SessionSecret = "short" }},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }},
		{"negative cache ttl", func(c *Config) { c.CacheTTL = -time.Second }},
		{"no admin", func(c *Config) { c.AdminUsername = "" }},
		{"no password", func(c *Config) { c.AdminPassword = "" }},
		{"zero rate", func(c *Config) { c.LoginRatePerMinute = 0 }},
		{"revalidation without secret", func(c *Config) { c.RevalidationURL = "http://frontend/api/revalidate" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
addr: ":9000"
storage_driver: sqlite
database_path: /tmp/from-file.db
cache_ttl: 1m
log_level: warn
`), 0o600))

	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("ADMIN_USERNAME=owner\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ADMIN_USERNAME") })

	t.Setenv("DATABASE_PATH", "/tmp/from-env.db")
	t.Setenv("FRONTEND_URL", "http://localhost:3000")
	t.Setenv("FRONTEND_URL2", "https://example.com")
	t.Setenv("SESSION_TTL", "2h")

	fs := newFlags(t, "--config", cfgPath, "--env-file", envPath, "--addr", ":7000")
	c, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, ":7000", c.Addr, "flag beats file")
	assert.Equal(t, DriverSQLite, c.StorageDriver, "file beats default")
	assert.Equal(t, "/tmp/from-env.db", c.DatabasePath, "env beats file")
	assert.Equal(t, time.Minute, c.CacheTTL)
	assert.Equal(t, 2*time.Hour, c.SessionTTL)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "owner", c.AdminUsername, "dotenv file is loaded")
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, c.AllowedOrigins)
	assert.Equal(t, 10*time.Minute, c.CacheCleanup, "untouched default")
}

func TestLoad_UnsetFlagsDoNotOverride(t *testing.T) {
	t.Setenv("ADDR", ":6000")

	c, err := Load(newFlags(t, "--env-file", ""))
	require.NoError(t, err)
	assert.Equal(t, ":6000", c.Addr)
}

func TestLoad_PortShortcut(t *testing.T) {
	t.Setenv("PORT", "5000")

	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":5000", c.Addr)
}

func TestLoad_BadEnvValues(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("LOGIN_RATE_PER_MINUTE", "lots")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL")
	assert.Contains(t, err.Error(), "LOGIN_RATE_PER_MINUTE")
}

func TestLoad_InvalidResult(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := Load(nil)
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestLoad_RevalidationNeedsSecret(t *testing.T) {
	t.Setenv("NEXT_REVALIDATION_URL", "http://frontend/api/revalidate")

	_, err := Load(nil)
	assert.ErrorContains(t, err, "revalidation secret")

	t.Setenv("REVALIDATION_SECRET", "shh")
	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "shh", c.RevalidationSecret)
}

func TestLoad_ClientIPHeader(t *testing.T) {
	t.Setenv("CLIENT_IP_HEADER", "X-Forwarded-For")

	c, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "X-Forwarded-For", c.ClientIPHeader)
}

func TestLoad_UnknownYAMLKey(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("adress: \":1\"\n"), 0o600))

	_, err := Load(newFlags(t, "--config", cfgPath))
	assert.Error(t, err)
}

func TestEnsureSessionSecret(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.True(t, c.EnsureSessionSecret())
	assert.Len(t, c.SessionSecret, 32)
	assert.NoError(t, c.Validate())

	secret := c.SessionSecret
	assert.False(t, c.EnsureSessionSecret())
	assert.Equal(t, secret, c.SessionSecret)
}
