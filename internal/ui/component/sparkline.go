package component

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
)

// sparkChars from lowest to highest
var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline is a one-row graph of a series, resampled to its width.
type Sparkline struct {
	data     []float64
	width    int
	style    lipgloss.Style
	color    lipgloss.Color
	showText bool
}

// NewSparkline creates a new sparkline component
func NewSparkline(width int) *Sparkline {
	return &Sparkline{
		width: width,
		style: lipgloss.NewStyle(),
		color: style.DefaultPalette().Primary,
	}
}

// SetData sets the data points for the sparkline
func (s *Sparkline) SetData(data []float64) *Sparkline {
	s.data = make([]float64, len(data))
	copy(s.data, data)
	return s
}

// SetWidth sets the width of the sparkline
func (s *Sparkline) SetWidth(width int) *Sparkline {
	s.width = width
	return s
}

// SetColor sets the color for the sparkline
func (s *Sparkline) SetColor(color lipgloss.Color) *Sparkline {
	s.color = color
	return s
}

// ShowText enables the trailing "min → max" range label.
func (s *Sparkline) ShowText(show bool) *Sparkline {
	s.showText = show
	return s
}

// View renders the sparkline
func (s *Sparkline) View() string {
	if s.width <= 0 {
		return ""
	}

	styled := s.style.Foreground(s.color).Render(s.blocks())

	if s.showText && len(s.data) > 0 {
		lo, hi := minMax(s.data)
		label := lipgloss.NewStyle().
			Foreground(style.DefaultPalette().TextMuted).
			Render(" " + FormatCompact(lo) + " → " + FormatCompact(hi))
		return styled + label
	}

	return styled
}

func (s *Sparkline) blocks() string {
	if len(s.data) == 0 {
		return strings.Repeat("▁", s.width)
	}

	values := Resample(s.data, s.width)
	lo, hi := minMax(values)

	var result strings.Builder
	for _, value := range values {
		if !isFinite(value) {
			result.WriteRune(' ')
			continue
		}
		if lo == hi {
			result.WriteRune('▄')
			continue
		}

		index := int((value - lo) / (hi - lo) * float64(len(sparkChars)-1))
		if index < 0 {
			index = 0
		} else if index >= len(sparkChars) {
			index = len(sparkChars) - 1
		}
		result.WriteRune(sparkChars[index])
	}

	return result.String()
}

// Resample picks width evenly spaced values from data, keeping the first and last.
func Resample(data []float64, width int) []float64 {
	if width <= 0 || len(data) == 0 {
		return nil
	}
	out := make([]float64, width)
	if len(data) == 1 || width == 1 {
		for i := range out {
			out[i] = data[len(data)-1]
		}
		return out
	}
	for i := range out {
		idx := int(math.Round(float64(i) * float64(len(data)-1) / float64(width-1)))
		out[i] = data[idx]
	}
	return out
}

// minMax ignores non-finite values. All-non-finite input yields 0, 0.
func minMax(data []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if !isFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
