package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns defaults merged with the YAML file at path. An empty path
// falls back to ./meshviewer.yaml when it exists; a missing default file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = "meshviewer.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
