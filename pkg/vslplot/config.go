package vslplot

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/vslplot-go/pkg/logger"
)

// Config is the optional YAML configuration file.
type Config struct {
	Data       string       `yaml:"data"`
	Layout     string       `yaml:"layout"`
	Output     string       `yaml:"output"`
	JSON       string       `yaml:"json"`
	Axes       []string     `yaml:"axes"`
	CustomKeys []string     `yaml:"custom_keys"`
	KeepZero   bool         `yaml:"keep_zero"`
	Workers    int          `yaml:"workers"`
	Log        LogConfig    `yaml:"log"`
	Render     RenderConfig `yaml:"render"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type RenderConfig struct {
	ChartWidth  int `yaml:"chart_width"`
	ChartHeight int `yaml:"chart_height"`
}

// LoadConfig reads and decodes a YAML config file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks configuration correctness.
// It does not mutate the configuration.
func (c *Config) Validate() error {
	for i, axis := range c.Axes {
		if strings.TrimSpace(axis) == "" {
			return fmt.Errorf("axes[%d]: axis name must not be empty", i)
		}
	}
	for i, key := range c.CustomKeys {
		if key == "" {
			return fmt.Errorf("custom_keys[%d]: key must not be empty", i)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.Render.ChartWidth < 0 || c.Render.ChartHeight < 0 {
		return fmt.Errorf(
			"render: chart dimensions must be >= 0 (got %dx%d)",
			c.Render.ChartWidth,
			c.Render.ChartHeight,
		)
	}
	if c.Log.Level != "" {
		if _, ok := logger.ParseLevel(c.Log.Level); !ok {
			return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
		}
	}
	return nil
}

// Options builds pipeline options from the config, starting from DefaultOptions.
func (c *Config) Options() Options {
	opts := DefaultOptions()
	opts.Axes = c.Axes
	opts.CustomKeys = c.CustomKeys
	opts.KeepZero = c.KeepZero
	opts.Workers = c.Workers
	if c.Render.ChartWidth > 0 {
		opts.Render.ChartWidth = uint(c.Render.ChartWidth)
	}
	if c.Render.ChartHeight > 0 {
		opts.Render.ChartHeight = uint(c.Render.ChartHeight)
	}
	return opts
}
