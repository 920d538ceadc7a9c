package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rovshanmuradov/tokenforge/internal/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validConfigJSON = `{
    "debug_logging": true,
    "log_file": "out/forge.log",
    "curve_resolution": 100,
    "chart_width": 80,
    "launch_delay_days": 14,
    "default_shape": "sigmoid"
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:    "Valid JSON config",
			file:    "config.json",
			content: validConfigJSON,
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.DebugLogging)
				assert.Equal(t, "out/forge.log", cfg.LogFile)
				assert.Equal(t, 100, cfg.CurveResolution)
				assert.Equal(t, 80, cfg.ChartWidth)
				assert.Equal(t, 14*24*time.Hour, cfg.LaunchDelay())
				assert.Equal(t, curve.Sigmoid, cfg.Shape())
				assert.Equal(t, DefaultLogMaxBackups, cfg.LogMaxBackups)
			},
		},
		{
			name:    "Valid YAML config",
			file:    "config.yaml",
			content: "curve_resolution: 25\ndefault_shape: exponential\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 25, cfg.CurveResolution)
				assert.Equal(t, curve.Exponential, cfg.Shape())
				assert.Equal(t, DefaultChartWidth, cfg.ChartWidth)
				assert.Equal(t, DefaultExportDir, cfg.ExportDir)
				assert.Equal(t, DefaultExportFormat, cfg.ExportFormat)
			},
		},
		{
			name:    "Unknown export format",
			file:    "config.json",
			content: `{"export_format": "xlsx"}`,
			wantErr: true,
		},
		{
			name:    "Invalid resolution",
			file:    "config.json",
			content: `{"curve_resolution": -1}`,
			wantErr: true,
		},
		{
			name:    "Unknown shape",
			file:    "config.json",
			content: `{"default_shape": "custom"}`,
			wantErr: true,
		},
		{
			name:    "Malformed JSON",
			file:    "config.json",
			content: `{"curve_resolution": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.False(t, cfg.DebugLogging)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, curve.DefaultResolution, cfg.CurveResolution)
	assert.Equal(t, curve.Linear, cfg.Shape())
	assert.Equal(t, 7*24*time.Hour, cfg.LaunchDelay())

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultChartWidth, cfg.ChartWidth)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TOKENFORGE_CHART_WIDTH", "42")
	t.Setenv("TOKENFORGE_DEBUG_LOGGING", "true")

	cfg, err := LoadConfig(writeConfig(t, "config.json", `{"chart_width": 70}`))
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.ChartWidth)
	assert.True(t, cfg.DebugLogging)
}
