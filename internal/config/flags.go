package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

const (
	flagConfig   = "config"
	flagEnvFile  = "env-file"
	flagAddr     = "addr"
	flagStorage  = "storage"
	flagDatabase = "db"
	flagOrigins  = "origin"
	flagLogLevel = "log-level"
	flagLogDev   = "log-dev"
	flagSecure   = "cookie-secure"
)

// RegisterFlags declares the server flags on fs. Defaults shown in help are
// the built-in ones; only flags the user actually sets override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "path to a YAML config file")
	fs.String(flagEnvFile, ".env", "dotenv file loaded into the environment if present")
	fs.StringP(flagAddr, "a", d.Addr, "HTTP listen address")
	fs.String(flagStorage, d.StorageDriver, "storage driver: memory or sqlite")
	fs.String(flagDatabase, d.DatabasePath, "sqlite database path")
	fs.StringSlice(flagOrigins, nil, "allowed CORS origin (repeatable)")
	fs.String(flagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.Bool(flagLogDev, d.LogDev, "human-readable console logs")
	fs.Bool(flagSecure, d.CookieSecure, "mark the session cookie Secure")
}

// applyFlags copies the explicitly set flags onto cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	set := func(name string, fn func() error) {
		if err == nil && fs.Changed(name) {
			if e := fn(); e != nil {
				err = fmt.Errorf("flag --%s: %w", name, e)
			}
		}
	}

	set(flagAddr, func() (e error) { cfg.Addr, e = fs.GetString(flagAddr); return })
	set(flagStorage, func() (e error) { cfg.StorageDriver, e = fs.GetString(flagStorage); return })
	set(flagDatabase, func() (e error) { cfg.DatabasePath, e = fs.GetString(flagDatabase); return })
	set(flagOrigins, func() (e error) { cfg.AllowedOrigins, e = fs.GetStringSlice(flagOrigins); return })
	set(flagLogLevel, func() (e error) { cfg.LogLevel, e = fs.GetString(flagLogLevel); return })
	set(flagLogDev, func() (e error) { cfg.LogDev, e = fs.GetBool(flagLogDev); return })
	set(flagSecure, func() (e error) { cfg.CookieSecure, e = fs.GetBool(flagSecure); return })

	return err
}
