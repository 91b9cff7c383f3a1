package config

import (
	"fmt"

	"github.com/gorilla/securecookie"
	"github.com/spf13/pflag"
)

// Load builds a Config: defaults, then the YAML file named by --config, then
// the .env file and environment, then flags set on fs. fs must have been
// prepared with RegisterFlags and parsed. A nil fs skips the file and flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	envFile := ".env"
	if fs != nil {
		path, err := fs.GetString(flagConfig)
		if err != nil {
			return nil, err
		}
		if path != "" {
			if err := loadFile(cfg, path); err != nil {
				return nil, err
			}
		}
		if envFile, err = fs.GetString(flagEnvFile); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}
	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if fs != nil {
		if err := applyFlags(cfg, fs); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// EnsureSessionSecret fills an empty SessionSecret with a random key and
// reports whether it had to. Sessions signed with it do not survive a restart.
func (c *Config) EnsureSessionSecret() bool {
	if c.SessionSecret != "" {
		return false
	}
	c.SessionSecret = string(securecookie.GenerateRandomKey(minSessionSecret))
	return true
}
