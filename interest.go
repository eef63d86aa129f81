package illustrate

import (
	"fmt"
	"math"
)

// interest.go implements the i <-> i^(n)/n conversions ihs_commfns.hpp and
// its callers are careful to express with expm1/log1p, so that small rates
// (a fraction of a percent, common for loan spreads and policy-fee-equivalent
// rates) do not lose precision to catastrophic cancellation in 1+i
// arithmetic. growth_test.go and vpw.go compound annual rates with a plain
// pow() loop because those growth rates are never small enough for that to
// matter; lmi's loan and COI rates can be, so this file earns its keep with
// expm1/log1p instead of naive compounding.

// ErrRateBelowFloor is returned when an annual effective rate is below the
// -100% floor at which 1+i becomes non-positive and no conversion is
// meaningful.
type ErrRateBelowFloor struct{ Rate float64 }

func (e ErrRateBelowFloor) Error() string {
	return fmt.Sprintf("interest: rate %v is below the -100%% floor", e.Rate)
}

// IUpperNOverN converts an annual effective rate i to the nominal rate
// compounded n times per year, divided by n: i^(n)/n. For n == 1 this is the
// identity. Uses expm1/log1p: i^(n)/n = expm1(log1p(i)/n).
func IUpperNOverN(i float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("interest: frequency n=%d must be positive", n)
	}
	if i == -1 {
		return -1, nil
	}
	if i < -1 {
		return 0, ErrRateBelowFloor{Rate: i}
	}
	return math.Expm1(math.Log1p(i) / float64(n)), nil
}

// IFromIUpperNOverN is the inverse of IUpperNOverN: given the nominal rate
// per period j = i^(n)/n, recover the annual effective rate i.
func IFromIUpperNOverN(j float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("interest: frequency n=%d must be positive", n)
	}
	if j == -1 {
		return -1, nil
	}
	if j < -1 {
		return 0, ErrRateBelowFloor{Rate: j}
	}
	return math.Expm1(math.Log1p(j) * float64(n)), nil
}

// DUpperNOverN converts an annual effective rate i to the discount-rate
// equivalent d^(n)/n: the amount of discount charged n times per year that
// is equivalent to i. d^(n)/n = 1 - (1+i)^(-1/n), computed via expm1/log1p
// to preserve precision when i is small.
func DUpperNOverN(i float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("interest: frequency n=%d must be positive", n)
	}
	if i < -1 {
		return 0, ErrRateBelowFloor{Rate: i}
	}
	return -math.Expm1(-math.Log1p(i) / float64(n)), nil
}

// NetOfSpreadAndFee computes the compounding-period net rate after
// subtracting a spread (itself an annual effective rate) and a flat periodic
// fee (e.g. a monthly policy fee expressed as a rate) from an annual
// effective gross rate, then re-annualizing:
//
//	net = (1 + ((1+i)^(1/n) - 1) - ((1+spread)^(1/n) - 1) - fee)^n - 1
//
// where fee is feePerPeriod as given. A per-period net at or below -1
// returns -1. The AccountValue engine does not call this function.
func NetOfSpreadAndFee(i, spread, feePerPeriod float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("interest: frequency n=%d must be positive", n)
	}
	if i < -1 || spread < -1 {
		return 0, ErrRateBelowFloor{Rate: math.Min(i, spread)}
	}
	grossPerPeriod := math.Expm1(math.Log1p(i) / float64(n))
	spreadPerPeriod := math.Expm1(math.Log1p(spread) / float64(n))
	netPerPeriod := grossPerPeriod - spreadPerPeriod - feePerPeriod
	if netPerPeriod <= -1 {
		return -1, nil
	}
	return math.Expm1(math.Log1p(netPerPeriod) * float64(n)), nil
}

// Signum returns -1, 0, or 1 according to the sign of x.
func Signum(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// UAbs returns the absolute value of x, named for parity with the u_abs
// helper found in actuarial function libraries that disambiguate it from
// integer abs overloads; Go has no such ambiguity, but the name is kept for
// readers already familiar with that convention.
func UAbs(x float64) float64 {
	return math.Abs(x)
}
