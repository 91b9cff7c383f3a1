package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables already set win, and a missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// envReader collects parse failures so every bad variable is reported at once.
type envReader struct {
	errs []error
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *envReader) str(key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func (r *envReader) int(key string, dst *int) {
	v, ok := lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func (r *envReader) bool(key string, dst *bool) {
	v, ok := lookup(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = b
}

func (r *envReader) duration(key string, dst *time.Duration) {
	v, ok := lookup(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = d
}

// loadEnv overlays environment variables onto cfg.
func loadEnv(cfg *Config) error {
	var r envReader

	r.str("ADDR", &cfg.Addr)
	if port, ok := lookup("PORT"); ok {
		cfg.Addr = ":" + port
	}
	r.str("STORAGE_DRIVER", &cfg.StorageDriver)
	r.str("DATABASE_PATH", &cfg.DatabasePath)

	r.str("SESSION_SECRET", &cfg.SessionSecret)
	r.duration("SESSION_TTL", &cfg.SessionTTL)
	r.bool("COOKIE_SECURE", &cfg.CookieSecure)

	var origins []string
	for _, key := range []string{"FRONTEND_URL", "FRONTEND_URL2"} {
		if v, ok := lookup(key); ok {
			origins = append(origins, v)
		}
	}
	if len(origins) > 0 {
		cfg.AllowedOrigins = origins
	}

	r.str("ADMIN_USERNAME", &cfg.AdminUsername)
	r.str("ADMIN_PASSWORD", &cfg.AdminPassword)
	r.str("ADMIN_PASSWORD_HASH", &cfg.AdminPasswordHash)

	r.duration("CACHE_TTL", &cfg.CacheTTL)
	r.duration("CACHE_CLEANUP_INTERVAL", &cfg.CacheCleanup)

	r.str("NEXT_REVALIDATION_URL", &cfg.RevalidationURL)
	r.str("REVALIDATION_SECRET", &cfg.RevalidationSecret)

	r.int("LOGIN_RATE_PER_MINUTE", &cfg.LoginRatePerMinute)
	r.int("CONTACT_RATE_PER_MINUTE", &cfg.ContactRatePerMinute)
	r.str("CLIENT_IP_HEADER", &cfg.ClientIPHeader)

	r.str("LOG_LEVEL", &cfg.LogLevel)
	r.bool("LOG_DEV", &cfg.LogDev)

	return errors.Join(r.errs...)
}
