package tokenomics

import (
	"fmt"
	"time"
)

// LaunchpadType selects the sale format.
type LaunchpadType string

const (
	Standard LaunchpadType = "standard"
	Fair     LaunchpadType = "fair"
	Private  LaunchpadType = "private"
)

// LaunchpadTypes returns the sale formats in display order.
func LaunchpadTypes() []LaunchpadType {
	return []LaunchpadType{Standard, Fair, Private}
}

// DefaultLaunchDelay is how far in the future the default launch date is.
const DefaultLaunchDelay = 7 * 24 * time.Hour

// LaunchpadConfig holds the sale terms.
type LaunchpadConfig struct {
	Type            LaunchpadType `json:"type"`
	LaunchDate      time.Time     `json:"launch_date"`
	SoftCap         float64       `json:"soft_cap"`
	HardCap         float64       `json:"hard_cap"`
	MinContribution float64       `json:"min_contribution"`
	MaxContribution float64       `json:"max_contribution"`
	Whitelisted     bool          `json:"whitelisted"`
	WhitelistSize   int           `json:"whitelist_size,omitempty"`
	FixedTokenPrice float64       `json:"fixed_token_price,omitempty"`
	SaleAmount      float64       `json:"sale_amount,omitempty"`
	SaleDuration    int           `json:"sale_duration_hours,omitempty"`
	MinAllocation   float64       `json:"min_allocation,omitempty"`
	MaxAllocation   float64       `json:"max_allocation,omitempty"`
}

// DefaultLaunchpad returns the stock sale terms with the launch date set
// delay after now.
func DefaultLaunchpad(now time.Time, delay time.Duration) LaunchpadConfig {
	return LaunchpadConfig{
		Type:            Standard,
		LaunchDate:      now.Add(delay),
		SoftCap:         100_000,
		HardCap:         500_000,
		MinContribution: 50,
		MaxContribution: 5_000,
		FixedTokenPrice: 0.0005,
		SaleAmount:      10_000_000,
		SaleDuration:    24,
		MinAllocation:   1_000,
		MaxAllocation:   10_000,
	}
}

// ParseLaunchpadType validates a sale format name.
func ParseLaunchpadType(s string) (LaunchpadType, error) {
	for _, t := range LaunchpadTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown launchpad type %q", s)
}

// Validate checks the sale terms.
func (l LaunchpadConfig) Validate() error {
	fe := fieldErrors{section: "launchpad"}

	if _, err := ParseLaunchpadType(string(l.Type)); err != nil {
		fe.add("type", "%v", err)
	}
	if l.LaunchDate.IsZero() {
		fe.add("launch_date", "is required")
	}
	for field, v := range map[string]float64{
		"soft_cap":          l.SoftCap,
		"hard_cap":          l.HardCap,
		"min_contribution":  l.MinContribution,
		"max_contribution":  l.MaxContribution,
		"fixed_token_price": l.FixedTokenPrice,
		"sale_amount":       l.SaleAmount,
		"min_allocation":    l.MinAllocation,
		"max_allocation":    l.MaxAllocation,
	} {
		if !finite(v) || v < 0 {
			fe.add(field, "must be a non-negative number")
		}
	}
	if l.SoftCap <= 0 {
		fe.add("soft_cap", "must be greater than zero")
	}
	if l.HardCap < l.SoftCap {
		fe.add("hard_cap", "must not be below the soft cap")
	}
	if l.MaxContribution > 0 && l.MinContribution > l.MaxContribution {
		fe.add("max_contribution", "must not be below the minimum contribution")
	}
	if l.MaxAllocation > 0 && l.MinAllocation > l.MaxAllocation {
		fe.add("max_allocation", "must not be below the minimum allocation")
	}
	if l.SaleDuration < 0 {
		fe.add("sale_duration_hours", "must not be negative")
	}
	if l.WhitelistSize < 0 {
		fe.add("whitelist_size", "must not be negative")
	}

	return fe.err()
}
