package curve

import "github.com/shopspring/decimal"

// AllocationTolerance is how far the allocation total may drift from 100.
var AllocationTolerance = decimal.RequireFromString("0.01")

var hundred = decimal.NewFromInt(100)

// AllocationTotal sums the category percentages in decimal arithmetic.
// Non-finite values make the total invalid and are reported via ok=false.
func AllocationTotal(allocation map[string]float64) (total decimal.Decimal, ok bool) {
	total = decimal.Zero
	for _, value := range allocation {
		d, finite := toDecimal(value)
		if !finite {
			return decimal.Zero, false
		}
		total = total.Add(d)
	}
	return total, true
}

// ValidateAllocation reports whether the percentages add up to 100 within
// AllocationTolerance. There is no partial validity.
func ValidateAllocation(allocation map[string]float64) bool {
	total, ok := AllocationTotal(allocation)
	if !ok {
		return false
	}
	return total.Sub(hundred).Abs().LessThanOrEqual(AllocationTolerance)
}
