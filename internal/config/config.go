// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rovshanmuradov/tokenforge/internal/curve"
	"github.com/rovshanmuradov/tokenforge/internal/export"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TOKENFORGE_DEBUG_LOGGING.
const EnvPrefix = "TOKENFORGE"

type Config struct {
	DebugLogging    bool   `mapstructure:"debug_logging"`
	LogFile         string `mapstructure:"log_file"`
	LogMaxSizeMB    int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups   int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays   int    `mapstructure:"log_max_age_days"`
	CurveResolution int    `mapstructure:"curve_resolution"`
	ChartWidth      int    `mapstructure:"chart_width"`
	LaunchDelayDays int    `mapstructure:"launch_delay_days"`

	// Starting point for the curve step, overriding the stock linear curve.
	DefaultShape string `mapstructure:"default_shape"`

	ExportDir    string `mapstructure:"export_dir"`
	ExportFormat string `mapstructure:"export_format"`
}

const (
	DefaultLogFile         = "logs/tokenforge.log"
	DefaultLogMaxSizeMB    = 10
	DefaultLogMaxBackups   = 3
	DefaultLogMaxAgeDays   = 7
	DefaultChartWidth      = 60
	DefaultLaunchDelayDays = 7
	DefaultExportDir       = "exports"
	DefaultExportFormat    = "csv"
)

// LoadConfig reads the config file at path (JSON, YAML or TOML, by
// extension) and applies environment overrides. An empty path or a missing
// file leaves the defaults in place.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"debug_logging":     false,
		"log_file":          DefaultLogFile,
		"log_max_size_mb":   DefaultLogMaxSizeMB,
		"log_max_backups":   DefaultLogMaxBackups,
		"log_max_age_days":  DefaultLogMaxAgeDays,
		"curve_resolution":  curve.DefaultResolution,
		"chart_width":       DefaultChartWidth,
		"launch_delay_days": DefaultLaunchDelayDays,
		"default_shape":     curve.Linear.String(),
		"export_dir":        DefaultExportDir,
		"export_format":     DefaultExportFormat,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config error: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &cfg, validateConfig(&cfg)
}

// LaunchDelay converts LaunchDelayDays into a duration.
func (c *Config) LaunchDelay() time.Duration {
	return time.Duration(c.LaunchDelayDays) * 24 * time.Hour
}

// Shape parses DefaultShape.
func (c *Config) Shape() curve.Shape {
	shape, err := curve.ParseShape(c.DefaultShape)
	if err != nil {
		return curve.Linear
	}
	return shape
}

func validateConfig(cfg *Config) error {
	if cfg.CurveResolution <= 0 {
		return errors.New("invalid curve_resolution")
	}
	if cfg.CurveResolution > 10_000 {
		return errors.New("curve_resolution too large")
	}
	if cfg.ChartWidth <= 0 {
		return errors.New("invalid chart_width")
	}
	if cfg.LaunchDelayDays < 0 {
		return errors.New("invalid launch_delay_days")
	}
	if cfg.LogMaxSizeMB <= 0 || cfg.LogMaxBackups < 0 || cfg.LogMaxAgeDays < 0 {
		return errors.New("invalid log rotation settings")
	}
	if _, err := curve.ParseShape(cfg.DefaultShape); err != nil {
		return fmt.Errorf("invalid default_shape: %w", err)
	}
	if _, err := export.ParseFormat(cfg.ExportFormat); err != nil {
		return fmt.Errorf("invalid export_format: %w", err)
	}
	return nil
}
