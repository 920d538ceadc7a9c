package tokenomics

import (
	"fmt"
	"strings"
)

// Dex is the exchange the token lists on after the curve completes.
type Dex string

const (
	PumpSwap  Dex = "pumpswap"
	Meteora   Dex = "meteora"
	Raydium   Dex = "raydium"
	Orca      Dex = "orca"
	CustomDex Dex = "custom"
)

const (
	MinLockingDays = 7
	MaxLockingDays = 365
)

// Dexes returns the supported exchanges in display order.
func Dexes() []Dex {
	return []Dex{PumpSwap, Meteora, Raydium, Orca, CustomDex}
}

// ParseDex validates an exchange name.
func ParseDex(s string) (Dex, error) {
	for _, d := range Dexes() {
		if string(d) == strings.ToLower(strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown dex %q", s)
}

// LiquidityConfig describes post-curve listing.
type LiquidityConfig struct {
	Dex                        Dex     `json:"dex"`
	CustomDexName              string  `json:"custom_dex_name,omitempty"`
	InitialLiquidityPercentage float64 `json:"initial_liquidity_percentage"`
	LockingPeriodDays          int     `json:"locking_period_days"`
	TargetPriceRatio           float64 `json:"target_price_ratio"`
	EnableAutoListing          bool    `json:"enable_auto_listing"`
}

// DefaultLiquidity lists on PumpSwap with 70% of funds locked for 180 days.
func DefaultLiquidity() LiquidityConfig {
	return LiquidityConfig{
		Dex:                        PumpSwap,
		InitialLiquidityPercentage: 70,
		LockingPeriodDays:          180,
		TargetPriceRatio:           1.5,
		EnableAutoListing:          true,
	}
}

// DexName is the exchange name shown to the user.
func (l LiquidityConfig) DexName() string {
	if l.Dex == CustomDex {
		if name := strings.TrimSpace(l.CustomDexName); name != "" {
			return name
		}
		return "your custom DEX"
	}
	return string(l.Dex)
}

// Summary explains what happens once the curve target is reached.
func (l LiquidityConfig) Summary() string {
	return fmt.Sprintf(
		"Once your token reaches its target on the bonding curve, it will be listed on %s with %g%% of the raised funds as initial liquidity, locked for %d days.",
		l.DexName(), l.InitialLiquidityPercentage, l.LockingPeriodDays)
}

// Validate checks the listing settings.
func (l LiquidityConfig) Validate() error {
	fe := fieldErrors{section: "liquidity"}

	if _, err := ParseDex(string(l.Dex)); err != nil {
		fe.add("dex", "%v", err)
	}
	if l.Dex == CustomDex && strings.TrimSpace(l.CustomDexName) == "" {
		fe.add("custom_dex_name", "is required for a custom DEX")
	}
	if !finite(l.InitialLiquidityPercentage) || l.InitialLiquidityPercentage < 0 || l.InitialLiquidityPercentage > 100 {
		fe.add("initial_liquidity_percentage", "must be between 0 and 100")
	}
	if l.LockingPeriodDays < MinLockingDays || l.LockingPeriodDays > MaxLockingDays {
		fe.add("locking_period_days", "must be between %d and %d", MinLockingDays, MaxLockingDays)
	}
	if !finite(l.TargetPriceRatio) || l.TargetPriceRatio < 1 {
		fe.add("target_price_ratio", "must be at least 1")
	}

	return fe.err()
}
