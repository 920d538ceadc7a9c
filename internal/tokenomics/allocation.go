package tokenomics

import (
	"math"

	"github.com/rovshanmuradov/tokenforge/internal/curve"
	"github.com/shopspring/decimal"
)

// Category names an allocation bucket.
type Category string

const (
	Presale     Category = "presale"
	PublicSale  Category = "public_sale"
	Team        Category = "team"
	Marketing   Category = "marketing"
	Development Category = "development"
	Reserve     Category = "reserve"
	Advisory    Category = "advisory"
	Ecosystem   Category = "ecosystem"
)

var categoryLabels = map[Category]string{
	Presale:     "Presale",
	PublicSale:  "Public Sale",
	Team:        "Team",
	Marketing:   "Marketing",
	Development: "Development",
	Reserve:     "Reserve",
	Advisory:    "Advisory",
	Ecosystem:   "Ecosystem",
}

// Categories returns the allocation buckets in display order.
func Categories() []Category {
	return []Category{Presale, PublicSale, Team, Marketing, Development, Reserve, Advisory, Ecosystem}
}

// Label returns the display name of the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Allocation maps each category to its share of the supply in percent.
type Allocation map[Category]float64

// DefaultAllocation returns the stock distribution, totalling 100%.
func DefaultAllocation() Allocation {
	return Allocation{
		Presale:     15,
		PublicSale:  20,
		Team:        15,
		Marketing:   10,
		Development: 15,
		Reserve:     10,
		Advisory:    5,
		Ecosystem:   10,
	}
}

// Clone returns an independent copy.
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Percentages converts the allocation into the form curve.ValidateAllocation takes.
func (a Allocation) Percentages() map[string]float64 {
	out := make(map[string]float64, len(a))
	for k, v := range a {
		out[string(k)] = v
	}
	return out
}

// Total returns the sum of all percentages.
func (a Allocation) Total() decimal.Decimal {
	total, _ := curve.AllocationTotal(a.Percentages())
	return total
}

// Valid reports whether the allocation sums to 100%.
func (a Allocation) Valid() bool {
	return curve.ValidateAllocation(a.Percentages())
}

// Tokens returns how many tokens the category receives out of totalSupply.
func (a Allocation) Tokens(c Category, totalSupply float64) decimal.Decimal {
	return percentOf(a[c], totalSupply)
}

// Validate checks that each percentage lies in [0,100]. The 100% total is
// reported separately through Valid: the wizard shows it as a warning.
func (a Allocation) Validate() error {
	fe := fieldErrors{section: "allocation"}
	for _, c := range Categories() {
		if v := a[c]; !finite(v) || v < 0 || v > 100 {
			fe.add(string(c), "must be between 0 and 100")
		}
	}
	return fe.err()
}

func percentOf(percent, amount float64) decimal.Decimal {
	if !finite(percent) || !finite(amount) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100)).Mul(decimal.NewFromFloat(amount))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
