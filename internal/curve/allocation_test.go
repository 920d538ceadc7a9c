package curve

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAllocation(t *testing.T) {
	tests := []struct {
		name       string
		allocation map[string]float64
		want       bool
	}{
		{"even split", map[string]float64{"a": 50, "b": 50}, true},
		{"over", map[string]float64{"a": 60, "b": 50}, false},
		{"thirds within tolerance", map[string]float64{"a": 33.34, "b": 33.33, "c": 33.33}, true},
		{"just outside tolerance", map[string]float64{"a": 50, "b": 49.98}, false},
		{"edge of tolerance", map[string]float64{"a": 50, "b": 50.01}, true},
		{"empty", map[string]float64{}, false},
		{"nan", map[string]float64{"a": math.NaN(), "b": 100}, false},
		{"defaults", map[string]float64{
			"presale": 15, "public_sale": 20, "team": 15, "marketing": 10,
			"development": 15, "reserve": 10, "advisory": 5, "ecosystem": 10,
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAllocation(tt.allocation))
		})
	}
}

func TestEstimates(t *testing.T) {
	p := Params{Shape: Linear, InitialPrice: 0.0001, Slope: 0.00001}

	assert.InDelta(t, 100000.0, InitialMarketCap(p, 1_000_000_000), 1e-6)
	assert.InDelta(t, 5.0001, FinalPrice(p, 500000), 1e-9)

	capDec, err := InitialMarketCapDecimal(p, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, "100000", capDec.String())

	_, err = FinalPriceDecimal(Params{Shape: Exponential, InitialPrice: 1, Slope: 1}, 1e6)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestCompareShapes(t *testing.T) {
	base := Params{InitialPrice: 0.0001, Slope: 0.000001, TargetPrice: 0.001, Midpoint: 500000}

	result, err := CompareShapes(context.Background(), base, 1_000_000, 20)
	require.NoError(t, err)
	require.Len(t, result, len(Shapes()))

	for _, shape := range Shapes() {
		p := base
		p.Shape = shape
		assert.Equal(t, SamplePoints(p, 1_000_000, 20), result[shape], shape.String())
	}
}

func TestCompareShapesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CompareShapes(ctx, Params{InitialPrice: 1}, 100, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
