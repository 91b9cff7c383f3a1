// Package config assembles the server settings from defaults, an optional
// YAML file, the environment (including a .env file) and command-line flags,
// in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"

	// DefaultAdminPassword is the development fallback for the seeded admin.
	DefaultAdminPassword = "admin123"

	minSessionSecret = 32
)

// Config holds runtime settings for the portfolio API.
//
// Fields:
//   - Addr: listen address of the HTTP server.
//   - StorageDriver: "memory" (lost on restart) or "sqlite" (DatabasePath).
//   - SessionSecret: key signing the session cookie. Empty means a random key per process.
//   - AllowedOrigins: CORS origins of the frontends.
//   - AdminPasswordHash: bcrypt hash for the seeded admin; wins over AdminPassword.
//   - RevalidationURL / RevalidationSecret: frontend cache webhook, disabled when the URL is empty.
//   - ClientIPHeader: proxy header keying the rate limiters and access log.
type Config struct {
	Addr          string `yaml:"addr"`
	StorageDriver string `yaml:"storage_driver"`
	DatabasePath  string `yaml:"database_path"`

	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	CookieSecure  bool          `yaml:"cookie_secure"`

	AllowedOrigins []string `yaml:"allowed_origins"`

	AdminUsername     string `yaml:"admin_username"`
	AdminPassword     string `yaml:"admin_password"`
	AdminPasswordHash string `yaml:"admin_password_hash"`

	CacheTTL     time.Duration `yaml:"cache_ttl"`
	CacheCleanup time.Duration `yaml:"cache_cleanup"`

	RevalidationURL    string `yaml:"revalidation_url"`
	RevalidationSecret string `yaml:"revalidation_secret"`

	LoginRatePerMinute   int `yaml:"login_rate_per_minute"`
	ContactRatePerMinute int `yaml:"contact_rate_per_minute"`

	// ClientIPHeader names a header set by a trusted reverse proxy that carries
	// the visitor address. Empty means the TCP peer address is used.
	ClientIPHeader string `yaml:"client_ip_header"`

	LogLevel string `yaml:"log_level"`
	LogDev   bool   `yaml:"log_dev"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the admin password default is insecure and must be overridden in prod.
func (c *Config) LoadDefaults() {
	c.Addr = ":8081"
	c.StorageDriver = DriverMemory
	c.DatabasePath = "portfolio.db"
	c.SessionTTL = 24 * time.Hour
	c.AdminUsername = "admin"
	c.AdminPassword = DefaultAdminPassword
	c.CacheTTL = 5 * time.Minute
	c.CacheCleanup = 10 * time.Minute
	c.LoginRatePerMinute = 10
	c.ContactRatePerMinute = 5
	c.LogLevel = "info"
}

// Validate reports every problem found, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	switch c.StorageDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.DatabasePath == "" {
			errs = append(errs, errors.New("database path is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.StorageDriver))
	}
	if c.SessionSecret != "" && len(c.SessionSecret) < minSessionSecret {
		errs = append(errs, fmt.Errorf("session secret must be at least %d bytes", minSessionSecret))
	}
	if c.AdminUsername == "" {
		errs = append(errs, errors.New("admin username is required"))
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		errs = append(errs, errors.New("admin password or password hash is required"))
	}
	for name, d := range map[string]time.Duration{
		"session ttl":   c.SessionTTL,
		"cache ttl":     c.CacheTTL,
		"cache cleanup": c.CacheCleanup,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	if c.RevalidationURL != "" && c.RevalidationSecret == "" {
		errs = append(errs, errors.New("revalidation secret is required when a revalidation url is set"))
	}
	if c.LoginRatePerMinute <= 0 || c.ContactRatePerMinute <= 0 {
		errs = append(errs, errors.New("rate limits must be positive"))
	}
	return errors.Join(errs...)
}

// UsesDefaultAdminPassword reports whether the seeded admin would get the
// built-in development password.
func (c *Config) UsesDefaultAdminPassword() bool {
	return c.AdminPasswordHash == "" && c.AdminPassword == DefaultAdminPassword
}
