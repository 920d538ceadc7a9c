package tokenomics

import "github.com/rovshanmuradov/tokenforge/internal/curve"

// CurveConfig is the bonding-curve section of the wizard.
//
// For the sigmoid shape the inflection point is the target goal: the price
// is halfway between InitialPrice and TargetPrice once TargetGoal tokens
// circulate.
type CurveConfig struct {
	Shape           curve.Shape `json:"shape"`
	InitialPrice    float64     `json:"initial_price"`
	Slope           float64     `json:"slope"`
	TargetPrice     float64     `json:"target_price"`
	TargetGoal      float64     `json:"target_goal"`
	ReserveRatio    float64     `json:"reserve_ratio"`
	EntryTributeFee float64     `json:"entry_tribute_fee"`
	ExitTributeFee  float64     `json:"exit_tribute_fee"`
}

// DefaultCurve returns a gentle linear curve starting at 0.0001.
func DefaultCurve() CurveConfig {
	return CurveConfig{
		Shape:           curve.Linear,
		InitialPrice:    0.0001,
		Slope:           0.000001,
		TargetPrice:     0.001,
		TargetGoal:      500_000,
		ReserveRatio:    0.5,
		EntryTributeFee: 2,
		ExitTributeFee:  5,
	}
}

// Params converts the section into pricing-engine parameters.
func (c CurveConfig) Params() curve.Params {
	return curve.Params{
		Shape:        c.Shape,
		InitialPrice: c.InitialPrice,
		Slope:        c.Slope,
		TargetPrice:  c.TargetPrice,
		Midpoint:     c.TargetGoal,
		ReserveRatio: c.ReserveRatio,
	}
}

// SlopeRange is the steepness slider range for the shape.
func SlopeRange(shape curve.Shape) (min, max, step float64) {
	if shape == curve.Exponential {
		return 0.0001, 0.01, 0.0001
	}
	return 0.000001, 0.001, 0.000001
}

// Validate checks the curve section.
func (c CurveConfig) Validate() error {
	fe := fieldErrors{section: "curve"}

	if err := c.Params().Validate(); err != nil {
		fe.errs = append(fe.errs, &ValidationError{
			Section: "curve",
			Field:   "params",
			Reason:  err.Error(),
		})
	}
	if c.InitialPrice <= 0 {
		fe.add("initial_price", "must be greater than zero")
	}
	if !finite(c.TargetGoal) || c.TargetGoal <= 0 {
		fe.add("target_goal", "must be greater than zero")
	}
	if !finite(c.EntryTributeFee) || c.EntryTributeFee < 0 || c.EntryTributeFee > 100 {
		fe.add("entry_tribute_fee", "must be between 0 and 100")
	}
	if !finite(c.ExitTributeFee) || c.ExitTributeFee < 0 || c.ExitTributeFee > 100 {
		fe.add("exit_tribute_fee", "must be between 0 and 100")
	}

	return fe.err()
}
