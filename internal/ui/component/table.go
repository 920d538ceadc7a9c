package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
)

// TableColumn represents a column configuration
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// TableRow represents a row of data
type TableRow struct {
	Data  []string
	Style lipgloss.Style
}

// Table represents a data table component
type Table struct {
	columns []TableColumn
	rows    []TableRow
	width   int

	headerStyle lipgloss.Style
	rowStyle    lipgloss.Style
	borderStyle lipgloss.Style

	showBorder bool
}

// NewTable creates a new table component
func NewTable() *Table {
	palette := style.DefaultPalette()

	return &Table{
		headerStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Padding(0, 1),

		rowStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1),

		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),

		showBorder: true,
	}
}

// AddColumn adds a column to the table. Width 0 shares the remaining width.
func (t *Table) AddColumn(header string, width int, align lipgloss.Position) *Table {
	t.columns = append(t.columns, TableColumn{
		Header: header,
		Width:  width,
		Align:  align,
	})
	return t
}

// SetRows sets all table rows
func (t *Table) SetRows(rows [][]string) *Table {
	t.rows = make([]TableRow, len(rows))
	for i, rowData := range rows {
		t.rows[i] = TableRow{Data: rowData, Style: t.rowStyle}
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(data ...string) *Table {
	t.rows = append(t.rows, TableRow{Data: data, Style: t.rowStyle})
	return t
}

// AddStyledRow adds a row rendered with a custom foreground color.
func (t *Table) AddStyledRow(color lipgloss.Color, data ...string) *Table {
	t.rows = append(t.rows, TableRow{Data: data, Style: t.rowStyle.Foreground(color)})
	return t
}

// SetWidth sets the table width used for auto-width columns
func (t *Table) SetWidth(width int) *Table {
	t.width = width
	return t
}

// SetShowBorder enables/disables table border
func (t *Table) SetShowBorder(show bool) *Table {
	t.showBorder = show
	return t
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

// View renders the table
func (t *Table) View() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.columnWidths()
	var content strings.Builder

	for i, col := range t.columns {
		content.WriteString(renderCell(col.Header, widths[i], col.Align, t.headerStyle))
		if i < len(t.columns)-1 {
			content.WriteString("│")
		}
	}
	content.WriteString("\n")

	for i := range t.columns {
		content.WriteString(strings.Repeat("─", widths[i]))
		if i < len(t.columns)-1 {
			content.WriteString("┼")
		}
	}

	for _, row := range t.rows {
		content.WriteString("\n")
		for i, col := range t.columns {
			cellData := ""
			if i < len(row.Data) {
				cellData = row.Data[i]
			}
			content.WriteString(renderCell(cellData, widths[i], col.Align, row.Style))
			if i < len(t.columns)-1 {
				content.WriteString("│")
			}
		}
	}

	result := content.String()
	if t.showBorder {
		result = t.borderStyle.Render(result)
	}
	return result
}

// renderCell truncates content to the inner width (padding excluded) and aligns it.
func renderCell(content string, width int, align lipgloss.Position, st lipgloss.Style) string {
	inner := width - st.GetHorizontalPadding()
	runes := []rune(content)
	if inner > 0 && len(runes) > inner {
		if inner > 1 {
			content = string(runes[:inner-1]) + "…"
		} else {
			content = string(runes[:inner])
		}
	}
	return st.Width(width).Align(align).Render(content)
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))
	explicit, auto := 0, 0
	for i, col := range t.columns {
		widths[i] = col.Width
		if col.Width > 0 {
			explicit += col.Width
		} else {
			auto++
		}
	}
	if auto == 0 {
		return widths
	}

	available := t.width - explicit - (len(t.columns) - 1)
	if t.showBorder {
		available -= 2
	}
	share := max(available/auto, 8)
	for i := range widths {
		if widths[i] <= 0 {
			widths[i] = share
		}
	}
	return widths
}
