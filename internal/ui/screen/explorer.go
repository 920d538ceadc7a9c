package screen

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tokenforge/internal/curve"
	"github.com/rovshanmuradov/tokenforge/internal/export"
	"github.com/rovshanmuradov/tokenforge/internal/tokenomics"
	"github.com/rovshanmuradov/tokenforge/internal/ui"
	"github.com/rovshanmuradov/tokenforge/internal/ui/component"
	"github.com/rovshanmuradov/tokenforge/internal/ui/router"
	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
)

const sparkWidth = 32

// comparedMsg carries the result of one CompareShapes run. gen identifies
// the request so stale results are dropped.
type comparedMsg struct {
	gen     int
	results map[curve.Shape][]curve.Point
	err     error
}

// ExplorerScreen samples one parameter set under every curve shape.
type ExplorerScreen struct {
	width  int
	height int
	keyMap ui.KeyMap
	opts   Options
	logger *zap.Logger

	base   tokenomics.CurveConfig
	slope  float64
	supply float64

	selected int
	results  map[curve.Shape][]curve.Point
	err      error
	gen      int
	cancel   context.CancelFunc

	exporter  *export.CurveExporter
	exported  string
	exportErr error

	chart   *component.Chart
	helpBar *component.HelpBar

	labelStyle lipgloss.Style
}

// NewExplorerScreen opens the explorer on the stock curve and token supply.
func NewExplorerScreen(opts Options) *ExplorerScreen {
	opts = opts.withDefaults()
	cfg := opts.defaultLaunch()
	return newExplorerScreen(cfg.Curve, cfg.Token.TotalSupply, opts)
}

func newExplorerScreen(base tokenomics.CurveConfig, supply float64, opts Options) *ExplorerScreen {
	keyMap := ui.DefaultKeyMap()

	selected := 0
	for i, s := range curve.Shapes() {
		if s == base.Shape {
			selected = i
		}
	}

	return &ExplorerScreen{
		keyMap:   keyMap,
		opts:     opts,
		logger:   opts.Logger.Named("explorer"),
		base:     base,
		slope:    base.Slope,
		supply:   supply,
		selected: selected,
		exporter: export.NewCurveExporter(opts.Logger),

		chart: component.NewChart(opts.ChartWidth, chartHeight),
		helpBar: component.NewHelpBar().
			SetKeyBindings(keyMap.ContextualHelp(ui.RouteExplorer)),

		labelStyle: lipgloss.NewStyle().
			Width(20),
	}
}

// Init starts the first comparison
func (e *ExplorerScreen) Init() tea.Cmd {
	return e.compare()
}

// params returns the explored parameters with the current steepness.
func (e *ExplorerScreen) params() curve.Params {
	p := e.base.Params()
	p.Slope = e.slope
	return p
}

func (e *ExplorerScreen) selectedShape() curve.Shape {
	return curve.Shapes()[e.selected]
}

// compare cancels any running comparison and starts a new one.
func (e *ExplorerScreen) compare() tea.Cmd {
	if e.cancel != nil {
		e.cancel()
	}
	ctx, cancel := context.WithCancel(e.opts.Ctx)
	e.cancel = cancel
	e.gen++

	gen := e.gen
	params := e.params()
	supply := e.supply
	resolution := e.opts.Resolution

	return func() tea.Msg {
		defer cancel()
		results, err := curve.CompareShapes(ctx, params, supply, resolution)
		return comparedMsg{gen: gen, results: results, err: err}
	}
}

// Update handles explorer updates
func (e *ExplorerScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case comparedMsg:
		if msg.gen != e.gen {
			return e, nil
		}
		e.err = msg.err
		if msg.err != nil {
			e.logger.Debug("Shape comparison failed", zap.Error(msg.err))
			return e, nil
		}
		e.results = msg.results
		e.exported = ""
		e.exportErr = nil
		return e, nil

	case tea.KeyMsg:
		shapes := curve.Shapes()
		switch {
		case key.Matches(msg, e.keyMap.Quit):
			return e, tea.Quit
		case key.Matches(msg, e.keyMap.Left), key.Matches(msg, e.keyMap.Up):
			e.selected = (e.selected - 1 + len(shapes)) % len(shapes)
		case key.Matches(msg, e.keyMap.Right), key.Matches(msg, e.keyMap.Down):
			e.selected = (e.selected + 1) % len(shapes)
		case key.Matches(msg, e.keyMap.SlopeUp):
			return e, e.setSlope(e.slope * 2)
		case key.Matches(msg, e.keyMap.SlopeDown):
			return e, e.setSlope(e.slope / 2)
		case key.Matches(msg, e.keyMap.Reset):
			return e, e.reset()
		case key.Matches(msg, e.keyMap.Export):
			e.export()
		}
	}

	return e, nil
}

// setSlope clamps the steepness to the selected shape's range and resamples.
func (e *ExplorerScreen) setSlope(slope float64) tea.Cmd {
	lo, hi, _ := tokenomics.SlopeRange(e.selectedShape())
	slope = math.Min(math.Max(slope, lo), hi)
	if slope == e.slope {
		return nil
	}
	e.slope = slope
	return e.compare()
}

// reset restores the starting steepness regardless of the selected shape's range.
func (e *ExplorerScreen) reset() tea.Cmd {
	if e.slope == e.base.Slope {
		return nil
	}
	e.slope = e.base.Slope
	return e.compare()
}

// export writes the current comparison to the configured directory.
func (e *ExplorerScreen) export() {
	if e.results == nil {
		return
	}
	path, err := e.exporter.ExportComparison(e.params(), e.supply, e.results, export.Options{
		Format:    e.opts.ExportFormat,
		OutputDir: e.opts.ExportDir,
		Now:       e.opts.Now(),
	})
	if err != nil {
		e.logger.Error("Export failed", zap.Error(err))
		e.exportErr = err
		return
	}
	e.exported = path
	e.exportErr = nil
}

// LastExport returns the path of the most recent export, if any.
func (e *ExplorerScreen) LastExport() string {
	return e.exported
}

// View renders the explorer
func (e *ExplorerScreen) View() string {
	if e.width == 0 || e.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("📈 Curve Explorer"))
	b.WriteString("\n")

	p := e.params()
	b.WriteString(style.TextStyle.Render(fmt.Sprintf("Initial price %s · Steepness %g · Target %s · Midpoint %s · Supply %s",
		component.FormatCompact(p.InitialPrice), p.Slope,
		component.FormatCompact(p.TargetPrice), component.FormatCompact(p.Midpoint),
		component.FormatCompact(e.supply))))
	b.WriteString("\n\n")

	switch {
	case e.err != nil:
		b.WriteString(style.ErrorStyle.Render("✗ " + e.err.Error()))
	case e.results == nil:
		b.WriteString(style.MutedStyle.Render("Sampling curves..."))
	default:
		b.WriteString(style.PanelStyle.Render(e.renderSelected()))
		b.WriteString("\n")
		b.WriteString(e.renderComparison())
		switch {
		case e.exportErr != nil:
			b.WriteString("\n")
			b.WriteString(style.ErrorStyle.Render("✗ Export failed: " + e.exportErr.Error()))
		case e.exported != "":
			b.WriteString("\n")
			b.WriteString(style.MutedStyle.Render("✓ Exported to " + e.exported))
		}
	}
	b.WriteString("\n")
	b.WriteString(e.helpBar.View())
	return b.String()
}

func (e *ExplorerScreen) renderSelected() string {
	shape := e.selectedShape()
	prices := curve.Prices(e.results[shape])

	e.chart.
		SetTitle(shape.Label()).
		SetXLabel("supply " + component.FormatCompact(e.supply)).
		SetSeries(component.Series{Name: shape.Label(), Values: prices, Color: style.DefaultPalette().SeriesColor(e.selected)})
	return e.chart.View()
}

func (e *ExplorerScreen) renderComparison() string {
	palette := style.DefaultPalette()
	lines := make([]string, 0, len(curve.Shapes()))

	for i, shape := range curve.Shapes() {
		marker := "  "
		if i == e.selected {
			marker = style.MarkerStyle.Render("▸ ")
		}
		spark := component.NewSparkline(sparkWidth).
			SetData(curve.Prices(e.results[shape])).
			SetColor(palette.SeriesColor(i)).
			ShowText(true)
		lines = append(lines, marker+e.labelStyle.Render(shape.Label())+spark.View())
	}
	return strings.Join(lines, "\n")
}

// SetSize sets the screen dimensions
func (e *ExplorerScreen) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.helpBar.SetWidth(width)
	e.chart.SetSize(min(e.opts.ChartWidth, max(width-20, 10)), chartHeight)
}
