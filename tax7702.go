package illustrate

import "fmt"

// tax7702.go implements the §7702 (CVAT/GPT) and §7702A (MEC) evaluators.
// Its shape follows guardrails.go's pattern: a small stateful policy object,
// constructed once per contract, whose methods are called once per relevant
// event and mutate their own fields rather than recomputing from scratch
// each time. Where guardrails.go tracks a withdrawal-rate ratio against
// upper/lower limits, Evaluator tracks a cumulative-payment ratio against
// GLP/GSP/7pp limits.

// PremiumOutcome reports what happened when a premium was tested against
// the active tax regime.
type PremiumOutcome struct {
	Accepted      float64 // amount actually credited to the contract
	ForcedOut     float64 // amount refunded because it would breach GPT
	Necessary     float64 // §7702A: portion within the 7-pay window's allowance
	Unnecessary   float64 // §7702A: portion in excess of the 7-pay allowance
	BecameMEC     bool
	SpecAmtForced float64 // under PolicyIncreaseSpecAmt, the premium in excess of the GPT limit; coverage is not changed
}

// Evaluator holds one contract's §7702/§7702A state across the life of a
// projection for one basis. Exactly one of CVAT or GPT fields is
// meaningful, selected by Regime at construction: a contract commits to one
// test at issue and never switches.
type Evaluator struct {
	Regime             TaxRegime
	MECPolicy          MECAvoidancePolicy
	MaterialChangeRule MaterialChangeRule

	// Corridor state, refreshed and applied under both regimes
	CorridorFactor float64

	// GPT state. CumGLP is the running bankable allowance (each year's GLP
	// added once at the annual recompute); CumPayments is actual premium
	// received to date. The contract may accept payments up to
	// max(CumGLP, GSP) - CumPayments.
	GLP         float64
	GSP         float64
	CumGLP      float64
	CumPayments float64

	// §7702A state, both regimes
	SevenPayPremium        float64
	Cum7PP                 float64
	NSPRate                float64
	TestDurationStart      int // duration the current 7-pay window began
	LastMaterialChangeYear int
	IsMEC                  bool
	DCV                    float64
	LowestDBInWindow       float64
	UnnecessaryPremiumCum  float64
}

// NewEvaluator constructs an Evaluator for one contract at issue.
func NewEvaluator(regime TaxRegime, mecPolicy MECAvoidancePolicy, rule MaterialChangeRule) *Evaluator {
	return &Evaluator{
		Regime:             regime,
		MECPolicy:          mecPolicy,
		MaterialChangeRule: rule,
	}
}

// RefreshDuration updates corridor/GLP/GSP/7pp for the current attained age.
// Called once per month before the premium and death-benefit steps run.
func (e *Evaluator) RefreshDuration(corridor, glpFactor, gspFactor, sevenPPFactor, specAmt float64) {
	e.CorridorFactor = corridor
	if e.Regime == RegimeGPT {
		e.GLP = glpFactor * specAmt
		e.GSP = gspFactor * specAmt
	}
	e.SevenPayPremium = sevenPPFactor * specAmt
	if e.LowestDBInWindow == 0 || specAmt < e.LowestDBInWindow {
		e.LowestDBInWindow = specAmt
	}
}

// BankAnnualGLP adds the current year's GLP to the running cumulative
// allowance. Called once per policy year from the engine's per-year
// preamble, not every month — GLP is a per-year allowance, not a per-month
// one.
func (e *Evaluator) BankAnnualGLP() {
	if e.Regime == RegimeGPT {
		e.CumGLP += e.GLP
	}
}

// RequiredDeathBenefit applies the corridor factor to an account value,
// returning the minimum death benefit the contract must carry. It does not
// look at Regime: the engine applies it every month under CVAT and GPT
// alike, and GPT contracts are limited by GLP/GSP on the premium side in
// addition.
func (e *Evaluator) RequiredDeathBenefit(av float64) float64 {
	return av * e.CorridorFactor
}

// AdjustmentEvent folds a specified-amount or DB-option change's GLP delta
// into cumulative GLP, using the standard "A+B-C" adjustment formula: A is
// the new GLP for the post-change benefit, B is the cumulative GLP already
// banked, C is what the old benefit's GLP would have summed to over the
// same years. Taking B==C (the common simplifying case when the change
// happens at a policy anniversary, so no partial year needs prorating)
// collapses the formula to delta = newGLP - oldGLP.
func (e *Evaluator) AdjustmentEvent(oldGLP, oldGSP, newGLP, newGSP float64, currentYear int) {
	if e.Regime != RegimeGPT {
		return
	}
	e.CumGLP += newGLP - oldGLP
	e.GLP, e.GSP = newGLP, newGSP

	benefitIncreased := newGLP > oldGLP
	restartsOnIncrease := e.MaterialChangeRule == RuleBenefitIncrease ||
		e.MaterialChangeRule == RuleLaterOfIncreaseOrUnnecessary ||
		e.MaterialChangeRule == RuleEarlierOfIncreaseOrUnnecessary ||
		e.MaterialChangeRule == RuleAdjustmentEvent
	if benefitIncreased && restartsOnIncrease {
		e.triggerMaterialChange(currentYear)
	}
}

// TestPremium evaluates an incoming gross-of-load premium against the
// active tax regime and returns how much is actually accepted, forced out,
// and classified necessary/unnecessary for §7702A.
func (e *Evaluator) TestPremium(amount float64, currentYear int) (PremiumOutcome, error) {
	if amount < 0 {
		return PremiumOutcome{}, DomainErrorf("tax7702: premium %v is negative", amount)
	}
	out := PremiumOutcome{Accepted: amount}

	if e.Regime == RegimeGPT {
		allowance := e.CumGLP
		if e.GSP > allowance {
			allowance = e.GSP
		}
		headroom := allowance - e.CumPayments
		if headroom < 0 {
			headroom = 0
		}
		if amount > headroom {
			excess := amount - headroom
			switch e.MECPolicy {
			case PolicyAllowMEC:
				// accept it all; contract becomes a MEC below via the 7pp test
			case PolicyReducePremium:
				out.Accepted = headroom
				out.ForcedOut = excess
			case PolicyIncreaseSpecAmt:
				// The whole premium is accepted and the excess is reported
				// in SpecAmtForced. Nothing in the engine reads it: the
				// specified amount, GLP and GSP are left unchanged.
				out.SpecAmtForced = excess
			}
		}
	}
	e.CumPayments += out.Accepted

	necessary, unnecessary, err := e.classifySevenPay(out.Accepted, currentYear)
	if err != nil {
		return out, err
	}
	out.Necessary, out.Unnecessary = necessary, unnecessary
	out.BecameMEC = e.IsMEC

	if unnecessary > 0 {
		e.UnnecessaryPremiumCum += unnecessary
		if e.MaterialChangeRule == RuleUnnecessaryPremium ||
			e.MaterialChangeRule == RuleLaterOfIncreaseOrUnnecessary ||
			e.MaterialChangeRule == RuleEarlierOfIncreaseOrUnnecessary {
			e.triggerMaterialChange(currentYear)
		}
	}

	return out, nil
}

// classifySevenPay compares cumulative payments received within the
// current seven-pay window against the cumulative 7pp allowance: the
// portion within the allowance is necessary, anything above it is
// unnecessary and latches IsMEC. not_mec -> mec is terminal: once latched,
// it never clears.
func (e *Evaluator) classifySevenPay(amount float64, currentYear int) (necessary, unnecessary float64, err error) {
	if amount < 0 {
		return 0, 0, DomainErrorf("tax7702: cannot test negative payment %v", amount)
	}
	windowYears := currentYear - e.TestDurationStart + 1
	if windowYears < 1 {
		windowYears = 1
	}
	if windowYears > 7 {
		windowYears = 7
	}
	allowance := e.SevenPayPremium * float64(windowYears)
	before := e.Cum7PP
	e.Cum7PP += amount

	headroom := allowance - before
	if headroom < 0 {
		headroom = 0
	}
	necessary = amount
	if amount > headroom {
		necessary = headroom
		unnecessary = amount - headroom
	}
	if e.Cum7PP > allowance+1e-9 {
		e.IsMEC = true // monotone: never reset once true
	}
	return necessary, unnecessary, nil
}

// triggerMaterialChange resets the seven-pay window to begin at
// currentYear: any material change resets the window and forces a 7pp
// recompute. The window's cumulative payment counter resets, but IsMEC —
// once latched — is never cleared by a material change; a new window can
// still cause a not-yet-MEC contract to become one.
func (e *Evaluator) triggerMaterialChange(currentYear int) {
	e.TestDurationStart = currentYear
	e.LastMaterialChangeYear = currentYear
	e.Cum7PP = 0
	e.LowestDBInWindow = 0
}

// BenefitReduction re-tests a reduction in death benefit within seven years
// of issue or of the last material change against the (lower) benefit
// level. If the reduced level's 7pp allowance is now lower than cumulative
// payments already received, the contract becomes a MEC retroactively to
// the start of the window.
func (e *Evaluator) BenefitReduction(newSevenPP float64, currentYear int) {
	windowAge := currentYear - e.TestDurationStart
	if windowAge < 0 || windowAge >= 7 {
		return
	}
	if newSevenPP < e.SevenPayPremium {
		e.SevenPayPremium = newSevenPP
		windowYears := windowAge + 1
		if e.Cum7PP > e.SevenPayPremium*float64(windowYears)+1e-9 {
			e.IsMEC = true
		}
	}
}

// UpdateDCV advances the deemed cash value by one payment: it credits
// interest at e.NSPRate and adds the necessary premium. No mortality
// charge is deducted. NSPRate is zero unless a caller sets it; nothing in
// this package does. DCV is tracked for reporting only: classifySevenPay
// classifies premiums against the cumulative 7pp allowance, not DCV.
func (e *Evaluator) UpdateDCV(necessaryPremium float64) {
	e.DCV = e.DCV*(1+e.NSPRate) + necessaryPremium
}

// String renders the evaluator's regime and MEC status for diagnostics.
func (e *Evaluator) String() string {
	return fmt.Sprintf("7702[%s] mec=%v cum7pp=%.2f cumGLP=%.2f", e.Regime, e.IsMEC, e.Cum7PP, e.CumGLP)
}
