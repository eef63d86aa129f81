package illustrate

import (
	"fmt"
	"math"
)

// solver.go inverts the engine: it searches for a uniform amount applied
// over a year range that drives some observed ledger quantity to a target
// value, using a secant method with a bisection fallback. Grounded in
// depletion.go's CalculateDepletionIncome, which performs the same kind of
// "rerun the whole projection under a trial input, compare an observed
// outcome to a target, adjust" search, there over a withdrawal multiplier
// rather than a premium/loan/withdrawal amount.

// SolveType selects which outlay vector the solver writes its trial value
// into.
type SolveType int

const (
	SolveEmployeePremium SolveType = iota
	SolveEmployerPremium
	SolveSpecAmt
	SolveLoan
	SolveWithdrawal
)

// SolveTarget selects what the solver tries to match.
type SolveTarget int

const (
	TargetEndowAtMaturity SolveTarget = iota // AV at the last year equals the target
	TargetCSVAtYear                          // CSV at TargetYear equals the target
	TargetZeroCSVAtYear                      // CSV at TargetYear equals zero
)

// SolveSpec fully describes one solve request.
type SolveSpec struct {
	Type       SolveType
	Target     SolveTarget
	TargetYear int // meaningful for TargetCSVAtYear/TargetZeroCSVAtYear
	TargetValue float64
	BeginYear  int
	EndYear    int // exclusive
	Basis      Basis
	Tolerance  float64 // e.g. 0.005 (half a cent)
	MaxIter    int     // e.g. 64
}

// SolveResult reports what the solver found.
type SolveResult struct {
	Amount       float64
	Iterations   int
	Converged    bool
	Warning      string
	FinalLedger  *Ledger
}

// Solve searches for the uniform amount spec.Type describes, over
// [spec.BeginYear, spec.EndYear), that drives the observed target quantity
// to spec.TargetValue under spec.Basis. It writes each trial amount through
// the matching SolveSet* helper on db/outlay, reruns the multi-basis runner,
// and reads the observed quantity back out of the resulting ledger.
func Solve(spec SolveSpec, inv InvariantLedger, lt LedgerType, db *DeathBenefit, outlay *Outlay, tax *Evaluator, rates RateProvider, cell Cell) (SolveResult, error) {
	if spec.Tolerance <= 0 {
		spec.Tolerance = 0.005
	}
	if spec.MaxIter <= 0 {
		spec.MaxIter = 64
	}

	eval := func(x float64) (float64, *Ledger, error) {
		if err := applyTrial(spec, x, db, outlay); err != nil {
			return 0, nil, err
		}
		ledger, err := RunMultiBasis(inv, lt, db, outlay, tax, rates, cell)
		if err != nil {
			return 0, nil, err
		}
		observed, err := observe(spec, ledger)
		if err != nil {
			return 0, nil, err
		}
		return observed - spec.TargetValue, ledger, nil
	}

	x0 := 0.0
	x1, err := initialBracket(spec, rates, cell)
	if err != nil {
		return SolveResult{}, err
	}

	f0, ledger0, err := eval(x0)
	if err != nil {
		return SolveResult{}, err
	}
	if math.Abs(f0) < spec.Tolerance {
		return SolveResult{Amount: x0, Converged: true, FinalLedger: ledger0}, nil
	}
	f1, ledger1, err := eval(x1)
	if err != nil {
		return SolveResult{}, err
	}

	best, bestF, bestLedger := x0, f0, ledger0
	if math.Abs(f1) < math.Abs(bestF) {
		best, bestF, bestLedger = x1, f1, ledger1
	}

	for i := 0; i < spec.MaxIter; i++ {
		if math.Abs(f1) < spec.Tolerance {
			return SolveResult{Amount: x1, Iterations: i + 1, Converged: true, FinalLedger: ledger1}, nil
		}
		if f1 == f0 {
			break // secant is undefined; fall through to bisection below
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)

		f2, ledger2, err := eval(x2)
		if err != nil {
			return SolveResult{}, err
		}
		if math.Abs(f2) < math.Abs(bestF) {
			best, bestF, bestLedger = x2, f2, ledger2
		}
		x0, f0 = x1, f1
		x1, f1, ledger1 = x2, f2, ledger2
	}

	if math.Abs(bestF) >= spec.Tolerance {
		bisected, bf, bl, ok := bisect(spec, eval, best)
		if ok && math.Abs(bf) < math.Abs(bestF) {
			best, bestF, bestLedger = bisected, bf, bl
		}
	}

	converged := math.Abs(bestF) < spec.Tolerance
	warning := ""
	if !converged {
		warning = fmt.Sprintf("solver: did not converge within %d iterations; returning best residual %v", spec.MaxIter, bestF)
	}
	return SolveResult{Amount: best, Iterations: spec.MaxIter, Converged: converged, Warning: warning, FinalLedger: bestLedger}, nil
}

// bisect falls back to bisection within [0, 2*around] when the secant
// iteration fails to converge, which the non-monotonic f near a GPT breach
// can cause.
func bisect(spec SolveSpec, eval func(float64) (float64, *Ledger, error), around float64) (x float64, f float64, ledger *Ledger, ok bool) {
	lo, hi := 0.0, math.Max(around*2, 1)
	flo, llo, err := eval(lo)
	if err != nil {
		return 0, 0, nil, false
	}
	fhi, lhi, err := eval(hi)
	if err != nil {
		return 0, 0, nil, false
	}
	if (flo < 0) == (fhi < 0) {
		if math.Abs(flo) < math.Abs(fhi) {
			return lo, flo, llo, true
		}
		return hi, fhi, lhi, true
	}
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		fm, lm, err := eval(mid)
		if err != nil {
			return 0, 0, nil, false
		}
		if math.Abs(fm) < spec.Tolerance {
			return mid, fm, lm, true
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi, fhi = mid, fm
			lhi = lm
		}
	}
	if math.Abs(flo) < math.Abs(fhi) {
		return lo, flo, llo, true
	}
	return hi, fhi, lhi, true
}

func applyTrial(spec SolveSpec, x float64, db *DeathBenefit, outlay *Outlay) error {
	switch spec.Type {
	case SolveEmployeePremium, SolveEmployerPremium:
		return outlay.SolveSetPremium(x, spec.BeginYear, spec.EndYear)
	case SolveSpecAmt:
		return db.SetSpecAmt(x, spec.BeginYear, spec.EndYear)
	case SolveLoan:
		return outlay.SolveSetLoan(x, spec.BeginYear, spec.EndYear)
	case SolveWithdrawal:
		return outlay.SolveSetWithdrawal(x, spec.BeginYear, spec.EndYear)
	default:
		return fmt.Errorf("solver: unknown solve type %v", spec.Type)
	}
}

func observe(spec SolveSpec, ledger *Ledger) (float64, error) {
	vl, ok := ledger.Variants[spec.Basis]
	if !ok {
		return 0, fmt.Errorf("solver: ledger has no variant for basis %s", spec.Basis)
	}
	n := len(vl.AccountValue)
	switch spec.Target {
	case TargetEndowAtMaturity:
		return vl.AccountValue[n-1], nil
	case TargetCSVAtYear, TargetZeroCSVAtYear:
		if spec.TargetYear < 0 || spec.TargetYear >= n {
			return 0, fmt.Errorf("solver: target year %d out of range", spec.TargetYear)
		}
		return vl.CashSurrenderVal[spec.TargetYear], nil
	default:
		return 0, fmt.Errorf("solver: unknown target %v", spec.Target)
	}
}

// initialBracket picks a product-specific heuristic for the solver's second
// trial point: the first-year GSP factor times 1000 for premium solves (or
// 1000 if the factor is zero), 1,000,000 for specified-amount solves, and
// 1000 otherwise.
func initialBracket(spec SolveSpec, rates RateProvider, cell Cell) (float64, error) {
	switch spec.Type {
	case SolveEmployeePremium, SolveEmployerPremium:
		gsp, err := rates.GSPFactor(cell.IssueAge, cell.YearsToMaturity)
		if err != nil {
			return 0, err
		}
		if len(gsp) == 0 || gsp[0] == 0 {
			return 1000, nil
		}
		return gsp[0] * 1000, nil
	case SolveSpecAmt:
		return 1000000, nil
	default:
		return 1000, nil
	}
}
