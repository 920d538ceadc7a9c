package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceChecked(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		supply  float64
		wantErr error
	}{
		{
			name:   "valid linear",
			params: Params{Shape: Linear, InitialPrice: 0.0001, Slope: 0.00001},
			supply: 500000,
		},
		{
			name:    "negative supply",
			params:  Params{Shape: Linear, InitialPrice: 0.0001, Slope: 0.00001},
			supply:  -1,
			wantErr: ErrNegativeSupply,
		},
		{
			name:    "overflow",
			params:  Params{Shape: Exponential, InitialPrice: 1, Slope: 1},
			supply:  1e6,
			wantErr: ErrNonFinite,
		},
		{
			name:    "negative initial price",
			params:  Params{Shape: Constant, InitialPrice: -1},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "sigmoid target below initial",
			params:  Params{Shape: Sigmoid, InitialPrice: 1, TargetPrice: 0.5, Slope: 0.1},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "reserve ratio out of range",
			params:  Params{Shape: Linear, InitialPrice: 1, ReserveRatio: 1.5},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "negative price from negative slope",
			params:  Params{Shape: Linear, InitialPrice: 1, Slope: -1},
			supply:  10,
			wantErr: ErrNegativePrice,
		},
		{
			name:    "sigmoid NaN target",
			params:  Params{Shape: Sigmoid, InitialPrice: 1, TargetPrice: math.NaN(), Midpoint: 10, Slope: 0.1},
			wantErr: ErrInvalidParams,
		},
		{
			name:    "sigmoid infinite midpoint",
			params:  Params{Shape: Sigmoid, InitialPrice: 1, TargetPrice: 2, Midpoint: math.Inf(1), Slope: 0.1},
			wantErr: ErrInvalidParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := PriceChecked(tt.params, tt.supply)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Price(tt.params, tt.supply), price)
		})
	}
}

func TestSamplePointsChecked(t *testing.T) {
	p := Params{Shape: Exponential, InitialPrice: 1, Slope: 0.01}

	points, err := SamplePointsChecked(p, 1000, 10)
	require.NoError(t, err)
	assert.Len(t, points, 11)

	_, err = SamplePointsChecked(p, 1e6, 10)
	assert.ErrorIs(t, err, ErrNonFinite)

	_, err = SamplePointsChecked(p, -10, 10)
	assert.ErrorIs(t, err, ErrNegativeSupply)
}

func TestSamplePointsCheckedNegativePrice(t *testing.T) {
	_, err := SamplePointsChecked(Params{Shape: Linear, InitialPrice: 1, Slope: -1}, 100, 10)
	assert.ErrorIs(t, err, ErrNegativePrice)
	assert.NotErrorIs(t, err, ErrNonFinite)
}

func TestValidateSigmoidNonFinite(t *testing.T) {
	base := Params{Shape: Sigmoid, InitialPrice: 0.0001, Slope: 0.00001, TargetPrice: 0.001, Midpoint: 500_000}
	require.NoError(t, base.Validate())

	p := base
	p.TargetPrice = math.NaN()
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

	p = base
	p.Midpoint = math.NaN()
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

	// non-sigmoid shapes never read these fields
	p.Shape = Linear
	assert.NoError(t, p.Validate())
}
