package repack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config supplies defaults for any CLI flag the caller didn't set
// explicitly, following the teacher's LoadConfig/Validate shape
// (pkg/dungeon/config.go in the teacher repo).
type Config struct {
	GameDir     string `yaml:"gameDir"`
	Objects     string `yaml:"objects"`
	Output      string `yaml:"output"`
	Disable     *bool  `yaml:"disable"`
	Compression string `yaml:"compression"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the fields this tool actually constrains: Compression, if
// set, must be one of the supported codec names.
func (c *Config) Validate() error {
	switch c.Compression {
	case "", "none", "lz4":
		return nil
	default:
		return fmt.Errorf("compression: must be \"none\" or \"lz4\", got %q", c.Compression)
	}
}
