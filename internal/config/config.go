package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/hooke/internal/spring"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "HOOKE_CONFIG"

const (
	DefaultPrecision   = 4
	DefaultPlotWidth   = 60
	DefaultPlotHeight  = 12
	DefaultImageWidth  = 8.0 // in
	DefaultImageHeight = 6.0 // in
)

// ErrInvalidConfig indicates a config value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Points    int          `yaml:"points"`
	Precision int          `yaml:"precision"`
	Plot      PlotConfig   `yaml:"plot"`
	Export    ExportConfig `yaml:"export"`
	Report    ReportConfig `yaml:"report"`
}

// PlotConfig sizes the terminal chart, in characters
type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ExportConfig sizes exported images, in inches
type ExportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ReportConfig struct {
	Project string `yaml:"project"`
	Author  string `yaml:"author"`
}

func DefaultConfig() *Config {
	return &Config{
		Points:    spring.DefaultPoints,
		Precision: DefaultPrecision,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
		Export: ExportConfig{
			Width:  DefaultImageWidth,
			Height: DefaultImageHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Resolve loads the config named by path, or by HOOKE_CONFIG when path is
// empty. A .env file in the working directory is read first if present.
// With no path at all the defaults are returned.
func Resolve(path string) (*Config, string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("config: load .env: %w", err)
	}
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func (c *Config) Validate() error {
	if c.Points < 2 {
		return fmt.Errorf("%w: points must be at least 2, got %d", ErrInvalidConfig, c.Points)
	}
	if c.Precision < 0 {
		return fmt.Errorf("%w: precision must not be negative, got %d", ErrInvalidConfig, c.Precision)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size must be positive, got %dx%d", ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("%w: export size must be positive, got %gx%g", ErrInvalidConfig, c.Export.Width, c.Export.Height)
	}
	return nil
}
