package screen

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rovshanmuradov/tokenforge/internal/config"
	"github.com/rovshanmuradov/tokenforge/internal/curve"
	"github.com/rovshanmuradov/tokenforge/internal/export"
	"github.com/rovshanmuradov/tokenforge/internal/tokenomics"
)

// Options carries the settings every screen is built with.
type Options struct {
	Ctx          context.Context
	Logger       *zap.Logger
	Resolution   int
	ChartWidth   int
	LaunchDelay  time.Duration
	DefaultShape curve.Shape
	ExportDir    string
	ExportFormat export.Format
	Now          func() time.Time
}

// OptionsFromConfig maps the loaded configuration onto screen options.
func OptionsFromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) Options {
	return Options{
		Ctx:          ctx,
		Logger:       logger,
		Resolution:   cfg.CurveResolution,
		ChartWidth:   cfg.ChartWidth,
		LaunchDelay:  cfg.LaunchDelay(),
		DefaultShape: cfg.Shape(),
		ExportDir:    cfg.ExportDir,
		ExportFormat: export.Format(cfg.ExportFormat),
	}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Resolution <= 0 {
		o.Resolution = curve.DefaultResolution
	}
	if o.ChartWidth <= 0 {
		o.ChartWidth = config.DefaultChartWidth
	}
	if o.LaunchDelay < 0 {
		o.LaunchDelay = tokenomics.DefaultLaunchDelay
	}
	if !o.DefaultShape.Valid() {
		o.DefaultShape = curve.Linear
	}
	if o.ExportDir == "" {
		o.ExportDir = config.DefaultExportDir
	}
	if _, err := export.ParseFormat(string(o.ExportFormat)); err != nil {
		o.ExportFormat = export.FormatCSV
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// defaultLaunch is the stock configuration with the configured curve shape.
func (o Options) defaultLaunch() tokenomics.LaunchConfig {
	cfg := tokenomics.Default(o.Now(), o.LaunchDelay)
	cfg.Curve.Shape = o.DefaultShape
	return cfg
}
