package curve

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeSupply is returned for supply values below zero or NaN.
	ErrNegativeSupply = errors.New("supply must be a non-negative number")
	// ErrInvalidParams wraps every Params.Validate failure.
	ErrInvalidParams = errors.New("invalid curve parameters")
	// ErrNonFinite is returned when a formula overflows or produces NaN.
	ErrNonFinite = errors.New("curve produced a non-finite price")
	// ErrNegativePrice is returned when a formula yields a price below zero.
	ErrNegativePrice = errors.New("curve produced a negative price")
)

// Validate checks the invariants the formulas rely on.
func (p Params) Validate() error {
	if !p.Shape.Valid() {
		return fmt.Errorf("%w: unknown shape %d", ErrInvalidParams, int(p.Shape))
	}
	if math.IsNaN(p.InitialPrice) || math.IsInf(p.InitialPrice, 0) || p.InitialPrice < 0 {
		return fmt.Errorf("%w: initial price %v", ErrInvalidParams, p.InitialPrice)
	}
	if math.IsNaN(p.Slope) || math.IsInf(p.Slope, 0) {
		return fmt.Errorf("%w: slope %v", ErrInvalidParams, p.Slope)
	}
	if p.ReserveRatio != 0 && (p.ReserveRatio <= 0 || p.ReserveRatio >= 1) {
		return fmt.Errorf("%w: reserve ratio %v outside (0,1)", ErrInvalidParams, p.ReserveRatio)
	}
	if p.Shape == Sigmoid {
		if !isFinite(p.TargetPrice) {
			return fmt.Errorf("%w: sigmoid target price %v", ErrInvalidParams, p.TargetPrice)
		}
		if !isFinite(p.Midpoint) {
			return fmt.Errorf("%w: sigmoid midpoint %v", ErrInvalidParams, p.Midpoint)
		}
	}
	if p.Shape == Sigmoid && p.TargetPrice < p.InitialPrice {
		return fmt.Errorf("%w: sigmoid target price %v below initial price %v",
			ErrInvalidParams, p.TargetPrice, p.InitialPrice)
	}
	return nil
}

// PriceChecked is the strict variant of Price. It rejects invalid params,
// negative supply and non-finite results instead of returning them.
func PriceChecked(p Params, supply float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(supply) || supply < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeSupply, supply)
	}

	price := Price(p, supply)
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: %s at supply %v", ErrNonFinite, p.Shape, supply)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: %v at supply %v", ErrNegativePrice, price, supply)
	}
	return price, nil
}

// SamplePointsChecked samples like SamplePoints and fails on the first
// point PriceChecked would reject.
func SamplePointsChecked(p Params, totalSupply float64, resolution int) ([]Point, error) {
	if math.IsInf(totalSupply, 0) {
		return nil, fmt.Errorf("%w: total supply %v", ErrNonFinite, totalSupply)
	}
	if math.IsNaN(totalSupply) || totalSupply < 0 {
		return nil, fmt.Errorf("%w: total supply %v", ErrNegativeSupply, totalSupply)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	points := SamplePoints(p, totalSupply, resolution)
	for _, pt := range points {
		if math.IsNaN(pt.Price) || math.IsInf(pt.Price, 0) {
			return nil, fmt.Errorf("%w: %s at supply %v", ErrNonFinite, p.Shape, pt.Supply)
		}
		if pt.Price < 0 {
			return nil, fmt.Errorf("%w: %v at supply %v", ErrNegativePrice, pt.Price, pt.Supply)
		}
	}
	return points, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
