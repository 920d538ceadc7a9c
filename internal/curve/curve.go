// =============================
// File: internal/curve/curve.go
// =============================
package curve

import "math"

// DefaultResolution is the number of intervals SamplePoints uses when the
// caller passes a non-positive resolution.
const DefaultResolution = 50

// Params describes a bonding curve. Values are immutable per evaluation and
// passed by value.
//
// Slope means price-per-token for Linear, growth rate for Exponential,
// log scaling for Logarithmic and transition steepness for Sigmoid.
// TargetPrice and Midpoint are read by Sigmoid only: the curve rises from
// InitialPrice towards TargetPrice with its inflection at Midpoint supply.
// ReserveRatio is carried along for reserve-based pricing and is not read
// by any formula here.
type Params struct {
	Shape        Shape   `json:"shape" mapstructure:"shape"`
	InitialPrice float64 `json:"initial_price" mapstructure:"initial_price"`
	Slope        float64 `json:"slope" mapstructure:"slope"`
	TargetPrice  float64 `json:"target_price,omitempty" mapstructure:"target_price"`
	Midpoint     float64 `json:"midpoint,omitempty" mapstructure:"midpoint"`
	ReserveRatio float64 `json:"reserve_ratio,omitempty" mapstructure:"reserve_ratio"`
}

// Point is one sample of a curve.
type Point struct {
	Supply float64 `json:"supply"`
	Price  float64 `json:"price"`
}

// Price returns the unit price at the given circulating supply.
//
// It never fails: negative supply or overflowing exponents produce whatever
// IEEE-754 arithmetic yields (±Inf, NaN). Use PriceChecked to reject those.
func Price(p Params, supply float64) float64 {
	switch p.Shape {
	case Linear:
		return p.InitialPrice + p.Slope*supply
	case Exponential:
		return p.InitialPrice * math.Exp(p.Slope*supply)
	case Logarithmic:
		// +1 keeps ln away from zero supply, so Price(p, 0) == InitialPrice
		return p.InitialPrice * (1 + p.Slope*math.Log1p(supply))
	case Sigmoid:
		span := p.TargetPrice - p.InitialPrice
		return p.InitialPrice + span/(1+math.Exp(-p.Slope*(supply-p.Midpoint)))
	default:
		return p.InitialPrice
	}
}

// SamplePoints discretizes the curve over [0, totalSupply] into
// resolution+1 evenly spaced points. The first point has supply 0 and the
// last has supply totalSupply. A fresh slice is built on every call.
func SamplePoints(p Params, totalSupply float64, resolution int) []Point {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	points := make([]Point, resolution+1)
	for i := 0; i <= resolution; i++ {
		supply := float64(i) / float64(resolution) * totalSupply
		points[i] = Point{Supply: supply, Price: Price(p, supply)}
	}
	return points
}

// Prices extracts the price column of a sample, e.g. for sparklines.
func Prices(points []Point) []float64 {
	prices := make([]float64, len(points))
	for i, pt := range points {
		prices[i] = pt.Price
	}
	return prices
}
