package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
)

// AllocationRow is one labelled share of the total supply.
type AllocationRow struct {
	Label   string
	Percent float64
}

// AllocationBars renders one horizontal bar per row plus a total line that
// turns into a warning when the shares do not add up to 100%.
type AllocationBars struct {
	rows  []AllocationRow
	total decimal.Decimal
	valid bool
	width int

	labelStyle lipgloss.Style
	emptyStyle lipgloss.Style
	palette    style.Palette
}

// NewAllocationBars creates bars with the given bar width.
func NewAllocationBars(width int) *AllocationBars {
	palette := style.DefaultPalette()
	return &AllocationBars{
		width:   width,
		palette: palette,
		labelStyle: lipgloss.NewStyle().
			Foreground(palette.Text),
		emptyStyle: lipgloss.NewStyle().
			Foreground(palette.BackgroundAlt),
	}
}

// SetRows sets the rows and the precomputed total and validity.
func (a *AllocationBars) SetRows(rows []AllocationRow, total decimal.Decimal, valid bool) *AllocationBars {
	a.rows = rows
	a.total = total
	a.valid = valid
	return a
}

// SetWidth sets the bar width
func (a *AllocationBars) SetWidth(width int) *AllocationBars {
	a.width = width
	return a
}

// View renders the bars
func (a *AllocationBars) View() string {
	labelWidth := 0
	for _, r := range a.rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}

	var b strings.Builder
	for i, r := range a.rows {
		barStyle := lipgloss.NewStyle().Foreground(a.palette.SeriesColor(i))
		filled := barCells(r.Percent, a.width)

		b.WriteString(a.labelStyle.Width(labelWidth + 1).Render(r.Label))
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(a.emptyStyle.Render(strings.Repeat("░", a.width-filled)))
		b.WriteString(fmt.Sprintf(" %6.2f%%", r.Percent))
		b.WriteString("\n")
	}

	totalText := "Total: " + a.total.StringFixed(2) + "%"
	if a.valid {
		b.WriteString(lipgloss.NewStyle().Foreground(a.palette.Success).Render("✓ " + totalText))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(a.palette.Warning).Bold(true).
			Render("⚠ " + totalText + "  Total allocation must equal 100%"))
	}

	return b.String()
}

func barCells(percent float64, width int) int {
	if width <= 0 || !isFinite(percent) || percent <= 0 {
		return 0
	}
	cells := int(math.Round(percent / 100 * float64(width)))
	if cells < 1 {
		cells = 1
	}
	return min(cells, width)
}
