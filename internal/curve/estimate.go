package curve

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// InitialMarketCap values the whole supply at the launch price.
func InitialMarketCap(p Params, totalSupply float64) float64 {
	return p.InitialPrice * totalSupply
}

// FinalPrice is the price once the full supply is in circulation.
func FinalPrice(p Params, totalSupply float64) float64 {
	return Price(p, totalSupply)
}

// InitialMarketCapDecimal is InitialMarketCap computed in decimal so large
// supplies do not lose cents when formatted.
func InitialMarketCapDecimal(p Params, totalSupply float64) (decimal.Decimal, error) {
	price, ok := toDecimal(p.InitialPrice)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: initial price %v", ErrNonFinite, p.InitialPrice)
	}
	supply, ok := toDecimal(totalSupply)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: total supply %v", ErrNonFinite, totalSupply)
	}
	return price.Mul(supply), nil
}

// FinalPriceDecimal converts FinalPrice into a decimal, failing on Inf/NaN.
func FinalPriceDecimal(p Params, totalSupply float64) (decimal.Decimal, error) {
	price := FinalPrice(p, totalSupply)
	d, ok := toDecimal(price)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: final price %v", ErrNonFinite, price)
	}
	return d, nil
}

// toDecimal guards decimal.NewFromFloat, which panics on NaN and ±Inf.
func toDecimal(v float64) (decimal.Decimal, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(v), true
}
