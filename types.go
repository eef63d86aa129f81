package illustrate

import "fmt"

// types.go carries the small set of domain-wide enums and the DomainError
// kind, following the same pattern as the original OptimizationGoal,
// Strategy, and DrawdownOrder types: an int-based type with a name table
// reachable through a String() method. Every enumerator carries a stable
// integer tag (its Go const value) and a stable textual name (its String()
// branch) used wherever a ledger or fixture serializes it.

// Basis is the regulatory/scenario assumption set the engine runs under.
type Basis int

const (
	BasisCurrent Basis = iota
	BasisGuaranteed
	BasisMidpoint
	BasisCurrentZero
	BasisGuaranteedZero
	BasisCurrentHalf
	BasisGuaranteedHalf
)

func (b Basis) String() string {
	switch b {
	case BasisCurrent:
		return "Current"
	case BasisGuaranteed:
		return "Guaranteed"
	case BasisMidpoint:
		return "Midpoint"
	case BasisCurrentZero:
		return "CurrentZero"
	case BasisGuaranteedZero:
		return "GuaranteedZero"
	case BasisCurrentHalf:
		return "CurrentHalf"
	case BasisGuaranteedHalf:
		return "GuaranteedHalf"
	default:
		return "Unknown"
	}
}

// DBOption is the death-benefit option a contract elects: level (A),
// increasing (B), or return-of-premium.
type DBOption int

const (
	DBOptionA DBOption = iota
	DBOptionB
	DBOptionROP
)

func (d DBOption) String() string {
	switch d {
	case DBOptionA:
		return "A"
	case DBOptionB:
		return "B"
	case DBOptionROP:
		return "ROP"
	default:
		return "Unknown"
	}
}

// TaxRegime is the §7702 test a contract is qualified under — chosen once,
// at issue; CVAT and GPT never both apply to the same contract.
type TaxRegime int

const (
	RegimeCVAT TaxRegime = iota
	RegimeGPT
)

func (r TaxRegime) String() string {
	if r == RegimeGPT {
		return "GPT"
	}
	return "CVAT"
}

// MECAvoidancePolicy selects how a GPT breach is handled at premium receipt.
type MECAvoidancePolicy int

const (
	PolicyAllowMEC MECAvoidancePolicy = iota
	PolicyReducePremium
	PolicyIncreaseSpecAmt
)

func (p MECAvoidancePolicy) String() string {
	switch p {
	case PolicyAllowMEC:
		return "allow_mec"
	case PolicyReducePremium:
		return "reduce_premium"
	case PolicyIncreaseSpecAmt:
		return "increase_specamt"
	default:
		return "unknown"
	}
}

// MaterialChangeRule selects which events restart a contract's seven-pay
// window. Multiple draft definitions exist in the regulatory lineage; lmi
// exposes the selector rather than hard-coding one.
type MaterialChangeRule int

const (
	RuleUnnecessaryPremium MaterialChangeRule = iota
	RuleBenefitIncrease
	RuleLaterOfIncreaseOrUnnecessary
	RuleEarlierOfIncreaseOrUnnecessary
	RuleAdjustmentEvent
)

func (r MaterialChangeRule) String() string {
	switch r {
	case RuleUnnecessaryPremium:
		return "unnecessary_premium"
	case RuleBenefitIncrease:
		return "benefit_increase"
	case RuleLaterOfIncreaseOrUnnecessary:
		return "later_of_increase_or_unnecessary"
	case RuleEarlierOfIncreaseOrUnnecessary:
		return "earlier_of_increase_or_unnecessary"
	case RuleAdjustmentEvent:
		return "adjustment_event"
	default:
		return "unknown"
	}
}

// DomainError is the fatal error kind reserved for domain violations: a
// negative or NaN rate from a rate provider, a corrupted FP environment, or
// any other condition the engine refuses to paper over. It carries enough
// context (cell/basis/year/month, when known) to locate the failure, so a
// mid-month failure surfaces with enough context to identify cell, basis,
// year, and month.
type DomainError struct {
	Message string
	Cell    string
	Basis   Basis
	Year    int
	Month   int
}

func (e *DomainError) Error() string {
	if e.Cell == "" && e.Year == 0 && e.Month == 0 {
		return "domain error: " + e.Message
	}
	return fmt.Sprintf("domain error: %s (cell=%q basis=%s year=%d month=%d)",
		e.Message, e.Cell, e.Basis, e.Year, e.Month)
}

// DomainErrorf builds a DomainError from a format string, with no location
// context. WithLocation returns a copy carrying context, for callers deeper
// in the call stack (the AccountValue engine) that know where they are.
func DomainErrorf(format string, args ...any) *DomainError {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}

// WithLocation returns a copy of e annotated with cell/basis/year/month.
func (e *DomainError) WithLocation(cell string, basis Basis, year, month int) *DomainError {
	cp := *e
	cp.Cell, cp.Basis, cp.Year, cp.Month = cell, basis, year, month
	return &cp
}
