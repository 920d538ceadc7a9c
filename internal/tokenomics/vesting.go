package tokenomics

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Interval is how often vested tokens are released.
type Interval string

const (
	Daily     Interval = "daily"
	Weekly    Interval = "weekly"
	Monthly   Interval = "monthly"
	Quarterly Interval = "quarterly"
)

const (
	MaxCliffMonths   = 60
	MaxVestingMonths = 120
)

// Intervals returns the release intervals in display order.
func Intervals() []Interval {
	return []Interval{Daily, Weekly, Monthly, Quarterly}
}

// ParseInterval validates an interval name.
func ParseInterval(s string) (Interval, error) {
	for _, i := range Intervals() {
		if string(i) == strings.ToLower(strings.TrimSpace(s)) {
			return i, nil
		}
	}
	return "", fmt.Errorf("unknown vesting interval %q", s)
}

// stepMonths is the release granularity expressed in months. Daily and
// weekly releases are treated as continuous at month resolution.
func (i Interval) stepMonths() int {
	if i == Quarterly {
		return 3
	}
	return 1
}

// VestingSchedule describes how one allocation category unlocks.
type VestingSchedule struct {
	ID            string   `json:"id"`
	Category      Category `json:"category"`
	CliffMonths   int      `json:"cliff_months"`
	VestingMonths int      `json:"vesting_months"`
	InitialUnlock float64  `json:"initial_unlock"` // percent released at TGE
	Interval      Interval `json:"interval"`
	Description   string   `json:"description,omitempty"`
}

// NewVestingSchedule creates a schedule with a fresh ID.
func NewVestingSchedule(category Category, cliff, vesting int, initialUnlock float64, interval Interval, description string) VestingSchedule {
	return VestingSchedule{
		ID:            uuid.NewString(),
		Category:      category,
		CliffMonths:   cliff,
		VestingMonths: vesting,
		InitialUnlock: initialUnlock,
		Interval:      interval,
		Description:   description,
	}
}

// DefaultVesting returns the stock team/marketing/development schedules.
func DefaultVesting() []VestingSchedule {
	return []VestingSchedule{
		NewVestingSchedule(Team, 6, 24, 0, Monthly, "Team token vesting"),
		NewVestingSchedule(Marketing, 1, 12, 10, Monthly, "Marketing token vesting"),
		NewVestingSchedule(Development, 3, 18, 5, Monthly, "Development token vesting"),
	}
}

// Validate checks the schedule bounds.
func (v VestingSchedule) Validate() error {
	fe := fieldErrors{section: "vesting." + string(v.Category)}

	if _, ok := categoryLabels[v.Category]; !ok {
		fe.add("category", "unknown category %q", v.Category)
	}
	if v.CliffMonths < 0 || v.CliffMonths > MaxCliffMonths {
		fe.add("cliff_months", "must be between 0 and %d", MaxCliffMonths)
	}
	if v.VestingMonths < 0 || v.VestingMonths > MaxVestingMonths {
		fe.add("vesting_months", "must be between 0 and %d", MaxVestingMonths)
	}
	if !finite(v.InitialUnlock) || v.InitialUnlock < 0 || v.InitialUnlock > 100 {
		fe.add("initial_unlock", "must be between 0 and 100")
	}
	if _, err := ParseInterval(string(v.Interval)); err != nil {
		fe.add("interval", "%v", err)
	}

	return fe.err()
}

// Summary describes the schedule the way the preview shows it, e.g.
// "After 6 months cliff, Monthly for 24 months".
func (v VestingSchedule) Summary() string {
	var start string
	switch {
	case v.CliffMonths == 1:
		start = "After 1 month cliff"
	case v.CliffMonths > 1:
		start = fmt.Sprintf("After %d months cliff", v.CliffMonths)
	default:
		start = "Immediately after TGE"
	}

	release := "All at TGE"
	if v.VestingMonths > 0 {
		interval := string(v.Interval)
		if interval != "" {
			interval = strings.ToUpper(interval[:1]) + interval[1:]
		}
		release = fmt.Sprintf("%s for %d months", interval, v.VestingMonths)
	}

	return start + ", " + release
}

// UnlockedPercent returns the cumulative percentage unlocked `month` months
// after TGE.
func (v VestingSchedule) UnlockedPercent(month int) float64 {
	if month < 0 {
		return 0
	}
	initial := v.InitialUnlock
	if month < v.CliffMonths {
		return initial
	}
	if v.VestingMonths <= 0 {
		// no linear phase: the remainder unlocks when the cliff ends
		return 100
	}

	elapsed := month - v.CliffMonths
	step := v.Interval.stepMonths()
	elapsed -= elapsed % step
	if elapsed >= v.VestingMonths {
		return 100
	}
	return initial + (100-initial)*float64(elapsed)/float64(v.VestingMonths)
}

// UnlockCurve returns UnlockedPercent for months 0..months inclusive.
func (v VestingSchedule) UnlockCurve(months int) []float64 {
	if months < 0 {
		months = 0
	}
	out := make([]float64, months+1)
	for m := 0; m <= months; m++ {
		out[m] = v.UnlockedPercent(m)
	}
	return out
}

// EndMonth is the first month at which the whole category is unlocked.
func (v VestingSchedule) EndMonth() int {
	return v.CliffMonths + v.VestingMonths
}

// TokensAtTGE is the number of tokens released at TGE for this category.
func (v VestingSchedule) TokensAtTGE(a Allocation, totalSupply float64) decimal.Decimal {
	total := a.Tokens(v.Category, totalSupply)
	if !finite(v.InitialUnlock) {
		return decimal.Zero
	}
	return total.Mul(decimal.NewFromFloat(v.InitialUnlock)).Div(decimal.NewFromInt(100))
}
