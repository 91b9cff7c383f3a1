package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// loadFile overlays the YAML file at path onto cfg. Keys missing from the file
// keep their current value.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
