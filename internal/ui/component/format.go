package component

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var compactUnits = []struct {
	limit  float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatCompact renders v with a K/M/B/T suffix for large values and
// four significant digits for small ones.
func FormatCompact(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	abs := math.Abs(v)
	for _, u := range compactUnits {
		if abs >= u.limit {
			return trimZeros(strconv.FormatFloat(v/u.limit, 'f', 2, 64)) + u.suffix
		}
	}
	if abs == 0 || abs >= 1 {
		return trimZeros(strconv.FormatFloat(v, 'f', 2, 64))
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// FormatMoney renders a decimal amount with a dollar sign and fixed places.
func FormatMoney(d decimal.Decimal, places int32) string {
	return "$" + d.StringFixed(places)
}

// FormatTokens renders a whole token amount with thousands separators.
func FormatTokens(d decimal.Decimal) string {
	raw := d.Round(0).String()
	neg := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	var b strings.Builder
	for i, r := range raw {
		if i > 0 && (len(raw)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
