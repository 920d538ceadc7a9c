package component

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/tokenforge/internal/wizard"
)

func typeText(f *Form, text string) {
	for _, r := range text {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newTestForm() *Form {
	return NewForm().
		AddField("name", FieldTypeText, "Name", true, "").
		AddField("supply", FieldTypeNumber, "Supply", false, "").
		AddField("dex", FieldTypeSelect, "DEX", false, "").
		AddField("auto", FieldTypeCheckbox, "Auto listing", false, "").
		SetSelectOptions("dex", []string{"pumpswap", "raydium", "orca"})
}

func TestFormTypingAndNavigation(t *testing.T) {
	f := newTestForm()
	assert.Equal(t, "name", f.Focused())

	typeText(f, "Moon")
	assert.Equal(t, "Moon", f.GetValue("name"))

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "supply", f.Focused())
	typeText(f, "1_000_000")
	v, err := f.GetFloat("supply")
	require.NoError(t, err)
	assert.Equal(t, 1e6, v)

	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "dex", f.Focused())
	assert.Equal(t, "pumpswap", f.GetValue("dex"))
	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "raydium", f.GetValue("dex"))
	f.Update(tea.KeyMsg{Type: tea.KeyUp})
	f.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "orca", f.GetValue("dex"), "select cycling wraps")

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "auto", f.Focused())
	assert.False(t, f.GetBool("auto"))
	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, f.GetBool("auto"))

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "name", f.Focused(), "focus wraps to the first field")
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "auto", f.Focused())
}

func TestFormSetFieldValue(t *testing.T) {
	f := newTestForm()

	f.SetFieldValue("dex", "orca")
	assert.Equal(t, "orca", f.GetValue("dex"))
	f.SetFieldValue("dex", "uniswap")
	assert.Equal(t, "orca", f.GetValue("dex"), "unknown option is ignored")

	f.SetFieldValue("auto", "yes")
	assert.Equal(t, "false", f.GetValues()["auto"])
	f.SetFieldValue("auto", "true")
	assert.True(t, f.GetBool("auto"))

	f.SetFieldValue("supply", "  42 ")
	n, err := f.GetInt("supply")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestFormNumberParsing(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"0.5", 0.5, false},
		{"1_000", 1000, false},
		{"1e3", 1000, false},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"-Inf", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f := newTestForm().SetFieldValue("supply", tt.raw)
			got, err := f.GetFloat("supply")
			if tt.wantErr {
				assert.ErrorContains(t, err, "is not a number")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	f := newTestForm().SetFieldValue("supply", "1.5")
	_, err := f.GetInt("supply")
	assert.ErrorContains(t, err, "is not a whole number")
}

func TestFormErrors(t *testing.T) {
	f := newTestForm()

	assert.False(t, f.Validate())
	assert.Contains(t, f.View(), "This field is required")

	f.SetFieldValue("name", "Moon")
	assert.True(t, f.Validate())
	assert.NotContains(t, f.View(), "⚠")

	assert.True(t, f.SetFieldError("supply", "must be positive"))
	assert.False(t, f.SetFieldError("missing", "ignored"))
	assert.Contains(t, f.View(), "⚠ must be positive")

	f.ClearErrors()
	assert.NotContains(t, f.View(), "must be positive")
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1.234, "1.23"},
		{12, "12"},
		{1500, "1.5K"},
		{2_000_000, "2M"},
		{1e9, "1B"},
		{3.25e12, "3.25T"},
		{-4500, "-4.5K"},
		{0.0005, "0.0005"},
		{math.Inf(1), "∞"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCompact(tt.in))
		})
	}
}

func TestFormatTokensAndMoney(t *testing.T) {
	assert.Equal(t, "1,000,000", FormatTokens(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, "999", FormatTokens(decimal.NewFromInt(999)))
	assert.Equal(t, "-12,345", FormatTokens(decimal.NewFromInt(-12_345)))
	assert.Equal(t, "1,235", FormatTokens(decimal.RequireFromString("1234.6")))
	assert.Equal(t, "$1500.00", FormatMoney(decimal.NewFromInt(1500), 2))
}

func TestResample(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	out := Resample(data, 3)
	assert.Equal(t, []float64{0, 5, 10}, out)

	out = Resample(data, 20)
	require.Len(t, out, 20)
	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 10.0, out[19])

	assert.Nil(t, Resample(nil, 10))
	assert.Equal(t, []float64{7, 7}, Resample([]float64{7}, 2))
}

func TestSparklineView(t *testing.T) {
	s := NewSparkline(8).SetData([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	view := s.View()
	assert.Equal(t, 8, lipgloss.Width(view))
	assert.Contains(t, view, "▁")
	assert.Contains(t, view, "█")

	flat := NewSparkline(4).SetData([]float64{2, 2, 2}).View()
	assert.Contains(t, flat, "▄▄▄▄")

	withInf := NewSparkline(3).SetData([]float64{1, 2, math.Inf(1)}).ShowText(true).View()
	assert.Contains(t, withInf, "1 → 2")

	assert.Empty(t, NewSparkline(0).View())
}

func TestChart(t *testing.T) {
	c := NewChart(30, 6).
		SetTitle("Linear").
		SetXLabel("supply 1M").
		SetSeries(Series{Name: "linear", Values: []float64{1, 2, 3, 4}})

	lo, hi := c.Bounds()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 4.0, hi)

	view := c.View()
	assert.Contains(t, view, "Linear")
	assert.Contains(t, view, "supply 1M")
	assert.Contains(t, view, "└")

	empty := NewChart(30, 6).SetSeries(Series{Values: []float64{math.NaN()}})
	lo, hi = empty.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
	assert.NotPanics(t, func() { _ = empty.View() })
}

func TestAllocationBars(t *testing.T) {
	rows := []AllocationRow{{"Team", 20}, {"Public sale", 70}}

	view := NewAllocationBars(20).SetRows(rows, decimal.NewFromInt(90), false).View()
	assert.Contains(t, view, "Total allocation must equal 100%")
	assert.Contains(t, view, "⚠ Total: 90.00%")

	rows = append(rows, AllocationRow{"Reserve", 10})
	view = NewAllocationBars(20).SetRows(rows, decimal.NewFromInt(100), true).View()
	assert.Contains(t, view, "✓ Total: 100.00%")
	assert.NotContains(t, view, "must equal")
}

func TestBarCells(t *testing.T) {
	assert.Equal(t, 0, barCells(0, 20))
	assert.Equal(t, 1, barCells(0.1, 20), "tiny shares stay visible")
	assert.Equal(t, 10, barCells(50, 20))
	assert.Equal(t, 20, barCells(150, 20))
	assert.Equal(t, 0, barCells(math.NaN(), 20))
}

func TestTable(t *testing.T) {
	table := NewTable().
		AddColumn("Metric", 12, lipgloss.Left).
		AddColumn("Value", 0, lipgloss.Right).
		SetWidth(40)
	table.AddRow("Symbol", "MOON")
	table.AddStyledRow(lipgloss.Color("#ff0000"), "Allocation", "invalid")

	assert.Equal(t, 2, table.RowCount())
	view := table.View()
	assert.Contains(t, view, "Metric")
	assert.Contains(t, view, "MOON")
	assert.Contains(t, view, "invalid")
	assert.Contains(t, view, "┼")

	assert.Empty(t, NewTable().View())
}

func TestToasts(t *testing.T) {
	toasts := NewToasts(0)
	assert.Equal(t, 0, toasts.Len())
	assert.Empty(t, toasts.View())

	cmd := toasts.Push(wizard.Notification{Kind: wizard.NotifySuccess, Title: "Raydium Selected", Description: "Your token will be available on Raydium after launch."})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, toasts.Len())
	assert.Contains(t, toasts.View(), "Raydium Selected")

	for i := 0; i < 4; i++ {
		toasts.Push(wizard.Notification{Title: "info"})
	}
	assert.Equal(t, maxVisibleToast, toasts.Len())

	toasts.Expire(1)
	assert.Equal(t, maxVisibleToast, toasts.Len(), "already dropped toast")
	toasts.Expire(5)
	assert.Equal(t, maxVisibleToast-1, toasts.Len())
}
