package tokenomics

import (
	"errors"
	"strings"
	"time"

	"github.com/rovshanmuradov/tokenforge/internal/curve"
	"github.com/shopspring/decimal"
)

// LaunchConfig is everything the wizard collects.
type LaunchConfig struct {
	Token     TokenConfig       `json:"token"`
	Curve     CurveConfig       `json:"curve"`
	Alloc     Allocation        `json:"allocation"`
	Vesting   []VestingSchedule `json:"vesting"`
	Launchpad LaunchpadConfig   `json:"launchpad"`
	Liquidity LiquidityConfig   `json:"liquidity"`
}

// Default returns the configuration a fresh wizard starts from.
func Default(now time.Time, launchDelay time.Duration) LaunchConfig {
	return LaunchConfig{
		Token:     DefaultToken(),
		Curve:     DefaultCurve(),
		Alloc:     DefaultAllocation(),
		Vesting:   DefaultVesting(),
		Launchpad: DefaultLaunchpad(now, launchDelay),
		Liquidity: DefaultLiquidity(),
	}
}

// Complete is the launch gate: a named token with positive supply and a
// consistent cap range.
func (c LaunchConfig) Complete() bool {
	return strings.TrimSpace(c.Token.Name) != "" &&
		strings.TrimSpace(c.Token.Symbol) != "" &&
		c.Token.TotalSupply > 0 &&
		c.Launchpad.SoftCap > 0 &&
		c.Launchpad.HardCap >= c.Launchpad.SoftCap
}

// Validate runs every section validator and joins the failures.
func (c LaunchConfig) Validate() error {
	errs := []error{
		c.Token.Validate(),
		c.Curve.Validate(),
		c.Alloc.Validate(),
		c.Launchpad.Validate(),
		c.Liquidity.Validate(),
	}
	for _, v := range c.Vesting {
		errs = append(errs, v.Validate())
	}
	return errors.Join(errs...)
}

// Preview holds the derived numbers shown before launch.
type Preview struct {
	TokenName        string
	Symbol           string
	TotalSupply      float64
	Shape            curve.Shape
	PublicSaleTokens decimal.Decimal
	InitialMarketCap decimal.Decimal
	FinalPrice       decimal.Decimal
	FinalPriceOK     bool // false when the curve overflows at full supply
	AllocationTotal  decimal.Decimal
	AllocationValid  bool
	Complete         bool
	Vesting          []string
	Liquidity        string
	Points           []curve.Point
}

// BuildPreview derives the preview numbers. resolution is passed to the sampler.
func (c LaunchConfig) BuildPreview(resolution int) Preview {
	params := c.Curve.Params()
	supply := c.Token.TotalSupply

	p := Preview{
		TokenName:        c.Token.Name,
		Symbol:           c.Token.Symbol,
		TotalSupply:      supply,
		Shape:            c.Curve.Shape,
		PublicSaleTokens: c.Alloc.Tokens(PublicSale, supply),
		AllocationTotal:  c.Alloc.Total(),
		AllocationValid:  c.Alloc.Valid(),
		Complete:         c.Complete(),
		Liquidity:        c.Liquidity.Summary(),
		Points:           curve.SamplePoints(params, supply, resolution),
	}

	if mc, err := curve.InitialMarketCapDecimal(params, supply); err == nil {
		p.InitialMarketCap = mc
	}
	if fp, err := curve.FinalPriceDecimal(params, supply); err == nil {
		p.FinalPrice = fp
		p.FinalPriceOK = true
	}

	for _, v := range c.Vesting {
		p.Vesting = append(p.Vesting, v.Category.Label()+": "+v.Summary())
	}

	return p
}
