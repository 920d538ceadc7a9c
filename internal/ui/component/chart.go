package component

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
)

// Series is one named line on a Chart.
type Series struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

// Chart draws one or more series on a shared y-axis. A single series is
// drawn as a filled area, several series as colored dots.
type Chart struct {
	series []Series
	width  int
	height int
	title  string
	xLabel string

	axisStyle  lipgloss.Style
	titleStyle lipgloss.Style
}

// NewChart creates a chart with the given plot area size.
func NewChart(width, height int) *Chart {
	palette := style.DefaultPalette()
	return &Chart{
		width:  width,
		height: height,
		axisStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true),
	}
}

// SetSeries replaces the plotted series.
func (c *Chart) SetSeries(series ...Series) *Chart {
	c.series = series
	return c
}

// SetSize sets the plot area size.
func (c *Chart) SetSize(width, height int) *Chart {
	c.width = width
	c.height = height
	return c
}

// SetTitle sets the line rendered above the plot.
func (c *Chart) SetTitle(title string) *Chart {
	c.title = title
	return c
}

// SetXLabel sets the label rendered at the right end of the x-axis.
func (c *Chart) SetXLabel(label string) *Chart {
	c.xLabel = label
	return c
}

// Bounds returns the shared y-range of all finite values.
func (c *Chart) Bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.series {
		if !hasFinite(s.Values) {
			continue
		}
		l, h := minMax(s.Values)
		lo = math.Min(lo, l)
		hi = math.Max(hi, h)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// View renders the chart
func (c *Chart) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	grid := make([][]string, c.height)
	for r := range grid {
		grid[r] = make([]string, c.width)
		for x := range grid[r] {
			grid[r][x] = " "
		}
	}

	lo, hi := c.Bounds()
	if len(c.series) == 1 {
		c.fillArea(grid, c.series[0], lo, hi)
	} else {
		for _, s := range c.series {
			c.plotDots(grid, s, lo, hi)
		}
	}

	hiLabel, loLabel := FormatCompact(hi), FormatCompact(lo)
	axisWidth := max(lipgloss.Width(hiLabel), lipgloss.Width(loLabel))

	var b strings.Builder
	if c.title != "" {
		b.WriteString(c.titleStyle.Render(c.title))
		b.WriteString("\n")
	}

	for r, row := range grid {
		label := ""
		switch r {
		case 0:
			label = hiLabel
		case c.height - 1:
			label = loLabel
		}
		b.WriteString(c.axisStyle.Render(padLeft(label, axisWidth) + " │"))
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}

	b.WriteString(c.axisStyle.Render(strings.Repeat(" ", axisWidth+1) + "└" + strings.Repeat("─", c.width)))
	if c.xLabel != "" {
		b.WriteString("\n")
		b.WriteString(c.axisStyle.Render(padLeft(c.xLabel, axisWidth+2+c.width)))
	}

	return b.String()
}

// fillArea renders a column per x with eighth-block resolution on the top cell.
func (c *Chart) fillArea(grid [][]string, s Series, lo, hi float64) {
	cellStyle := lipgloss.NewStyle().Foreground(s.Color)
	levels := len(sparkChars)

	for x, v := range Resample(s.Values, c.width) {
		if !isFinite(v) {
			continue
		}
		eighths := levels
		if hi > lo {
			eighths = int(math.Round((v - lo) / (hi - lo) * float64(c.height*levels)))
		}
		eighths = max(eighths, 1)

		for r := 0; r < c.height; r++ {
			fromBottom := c.height - 1 - r
			filled := eighths - fromBottom*levels
			switch {
			case filled >= levels:
				grid[r][x] = cellStyle.Render("█")
			case filled > 0:
				grid[r][x] = cellStyle.Render(string(sparkChars[filled-1]))
			}
		}
	}
}

func (c *Chart) plotDots(grid [][]string, s Series, lo, hi float64) {
	cellStyle := lipgloss.NewStyle().Foreground(s.Color)

	for x, v := range Resample(s.Values, c.width) {
		if !isFinite(v) {
			continue
		}
		row := c.height - 1
		if hi > lo {
			row = c.height - 1 - int(math.Round((v-lo)/(hi-lo)*float64(c.height-1)))
		}
		grid[row][x] = cellStyle.Render("•")
	}
}

// Legend renders the series names in their colors.
func (c *Chart) Legend() string {
	items := make([]string, 0, len(c.series))
	for _, s := range c.series {
		items = append(items, lipgloss.NewStyle().Foreground(s.Color).Render("• "+s.Name))
	}
	return strings.Join(items, "  ")
}

func hasFinite(values []float64) bool {
	for _, v := range values {
		if isFinite(v) {
			return true
		}
	}
	return false
}

func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
