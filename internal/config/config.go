package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the data file used when neither the --file flag nor
// the config provides one.
const DefaultFile = "tasks.json"

type Config struct {
	File string `yaml:"file,omitempty"`
}

// Dir returns the config directory, ~/.tasktrack by default.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tasktrack")
	}
	return filepath.Join(home, ".tasktrack")
}

func Path(dir string) string {
	return filepath.Join(dir, "config.yaml")
}

func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(Path(dir), data, 0644)
}

// DataFile resolves the effective data file path: an explicit flag
// value wins, then the configured default, then tasks.json in the
// working directory.
func (c *Config) DataFile(flag string) string {
	if flag != "" {
		return flag
	}
	if c.File != "" {
		return c.File
	}
	return DefaultFile
}
