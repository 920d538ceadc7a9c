package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdaptiveJoinHorizontal(t *testing.T) {
	tests := []struct {
		name  string
		width int
		lines int
	}{
		{"narrow terminal stacks", NarrowWidth - 1, 2},
		{"wide terminal joins", NarrowWidth, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := AdaptiveJoinHorizontal(tt.width, "left", "right")
			assert.Len(t, strings.Split(out, "\n"), tt.lines)
			assert.Contains(t, out, "left")
			assert.Contains(t, out, "right")
		})
	}
}

func TestSeriesColorWraps(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.SeriesColor(0), p.SeriesColor(len(p.Series)))
}
