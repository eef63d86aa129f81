package illustrate

import (
	"github.com/shopspring/decimal"
)

// RoundStyle selects how a Rounder resolves a halfway or out-of-range case:
// toward-zero, to-nearest, upward, downward, not-at-all (identity), and
// current (honor whatever CurrentRoundingMode() reports).
type RoundStyle int

const (
	StyleNearest RoundStyle = iota
	StyleTruncate
	StyleUpward
	StyleDownward
	StyleNotAtAll
	StyleCurrent
)

// Rounder rounds currency-like quantities to a fixed number of decimals
// using a selectable style. Decimals may be negative (round to tens,
// hundreds, ...). Where some actuarial libraries overload operator() on a
// rounding functor object, the Go idiom is a method on a small value type.
//
// The public surface is decimal.Decimal, not float64: round(round(x, d, s),
// d, s) must equal round(x, d, s), and the result must equal the
// correctly-rounded value of x*10^decimals for |decimals| <= 15. float64's
// binary mantissa cannot represent every such x*10^decimals exactly, so
// halfway cases would drift with the input's binary representation instead
// of its decimal one. decimal.Decimal carries an exact base-10 mantissa and
// sidesteps that class of bug entirely.
type Rounder struct {
	Decimals int32
	Style    RoundStyle
}

// NewRounder constructs a Rounder for the given decimal places and style.
func NewRounder(decimals int32, style RoundStyle) Rounder {
	return Rounder{Decimals: decimals, Style: style}
}

// Round applies the Rounder to x, returning the rounded value.
func (r Rounder) Round(x decimal.Decimal) decimal.Decimal {
	style := r.Style
	if style == StyleCurrent {
		switch CurrentRoundingMode() {
		case RoundTowardZero:
			style = StyleTruncate
		case RoundUpward:
			style = StyleUpward
		case RoundDownward:
			style = StyleDownward
		default:
			style = StyleNearest
		}
	}

	switch style {
	case StyleNotAtAll:
		return x
	case StyleTruncate:
		return x.Truncate(r.Decimals)
	case StyleUpward:
		return x.RoundCeil(r.Decimals)
	case StyleDownward:
		return x.RoundFloor(r.Decimals)
	default: // StyleNearest
		return x.Round(r.Decimals)
	}
}

// RoundFloat is a convenience wrapper for callers carrying float64 state
// (the engine's working arithmetic stays float64, per DESIGN.md) who need a
// rounded float64 back. It converts through decimal.Decimal so the rounding
// itself is exact;
// only the final conversion back to float64 can reintroduce binary error,
// and that error is bounded by float64's own epsilon, not by the rounding
// step.
func (r Rounder) RoundFloat(x float64) float64 {
	f, _ := r.Round(decimal.NewFromFloat(x)).Float64()
	return f
}
