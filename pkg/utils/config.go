package utils

import (
	"fmt"
	"os"
	"strconv"

	"mrgen/pkg/writer"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when --config is not given and the file exists.
const DefaultConfigPath = "configs/default.yaml"

// Config represents the main configuration structure
type Config struct {
	Output OutputConfig `yaml:"output"`
	Bounds BoundsConfig `yaml:"bounds"`
	Random RandomConfig `yaml:"random"`
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Template string `yaml:"template"`
	// Perm is an octal string such as "0644".
	Perm string `yaml:"perm"`
}

type BoundsConfig struct {
	MaxFiles   int `yaml:"max_files"`
	MaxNumbers int `yaml:"max_numbers"`
	MaxRange   int `yaml:"max_range"`
}

type RandomConfig struct {
	Marker string `yaml:"marker"`
	Seed   uint64 `yaml:"seed"`
}

// DefaultConfig returns the compiled-in settings
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:      "../inputs/",
			Template: "input%d.mr",
			Perm:     "0644",
		},
		Bounds: BoundsConfig{
			MaxFiles:   5,
			MaxNumbers: 100,
			MaxRange:   1000,
		},
		Random: RandomConfig{
			Marker: "x",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that bounds are positive and the permission string parses
func (c *Config) Validate() error {
	if c.Bounds.MaxFiles < 1 || c.Bounds.MaxNumbers < 1 || c.Bounds.MaxRange < 1 {
		return fmt.Errorf("bounds must be positive, got files=%d numbers=%d range=%d",
			c.Bounds.MaxFiles, c.Bounds.MaxNumbers, c.Bounds.MaxRange)
	}
	if err := writer.CheckTemplate(c.Output.Template); err != nil {
		return err
	}
	if c.Random.Marker == "" {
		return fmt.Errorf("random marker must not be empty")
	}
	if _, err := c.FilePerm(); err != nil {
		return err
	}
	return nil
}

// FilePerm parses Output.Perm
func (c *Config) FilePerm() (os.FileMode, error) {
	if c.Output.Perm == "" {
		return 0644, nil
	}
	p, err := strconv.ParseUint(c.Output.Perm, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid output perm %q: %w", c.Output.Perm, err)
	}
	return os.FileMode(p), nil
}
