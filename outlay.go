package illustrate

import "fmt"

// outlay.go owns the per-year premium, loan, and withdrawal vectors for one
// contract, alongside a Strategy selector per vector telling the engine how
// to derive a year's amount when no explicit value was input. This mirrors
// strategies.go's DrawdownOrder/Strategy selector pattern: an enum recorded
// per period, resolved against then-current state at the start of each
// period rather than baked in at construction.

// PremiumStrategy selects how a year's gross premium is derived when not
// given as an explicit input.
type PremiumStrategy int

const (
	StrategyExplicit PremiumStrategy = iota // use the input vector as-is
	StrategyTarget                          // product's target premium for the current specamt
	StrategyMinimum                         // no-lapse guarantee minimum premium
	StrategyMEP                             // largest premium that does not trigger MEC ("max non-MEC")
	StrategyGLP                             // guideline level premium
	StrategyGSP                             // guideline single premium
	StrategyCorridor                        // premium implied by the corridor relationship
	StrategyTable                           // an externally supplied schedule
	StrategySalaryPct                       // a percentage of salary
)

func (s PremiumStrategy) String() string {
	switch s {
	case StrategyExplicit:
		return "explicit"
	case StrategyTarget:
		return "target"
	case StrategyMinimum:
		return "minimum"
	case StrategyMEP:
		return "mep"
	case StrategyGLP:
		return "glp"
	case StrategyGSP:
		return "gsp"
	case StrategyCorridor:
		return "corridor"
	case StrategyTable:
		return "table"
	case StrategySalaryPct:
		return "salary_pct"
	default:
		return "unknown"
	}
}

// Mode is the premium-payment frequency.
type Mode int

const (
	ModeAnnual Mode = iota
	ModeSemiannual
	ModeQuarterly
	ModeMonthly
)

func (m Mode) PeriodsPerYear() int {
	switch m {
	case ModeSemiannual:
		return 2
	case ModeQuarterly:
		return 4
	case ModeMonthly:
		return 12
	default:
		return 1
	}
}

// Outlay holds the per-year money-movement vectors the engine consumes or
// produces: gross premium (split employee/employer), new loans,
// withdrawals, payment mode, and the premium strategy in effect each year.
// All vectors have length yearsToMaturity.
type Outlay struct {
	yearsToMaturity int

	GrossPremium    []float64
	EmployeePremium []float64
	EmployerPremium []float64
	NewLoan         []float64
	Withdrawal      []float64
	Mode            []Mode
	Strategy        []PremiumStrategy
	SalaryPct       []float64 // meaningful only where Strategy[y] == StrategySalaryPct

	// OverridingPayments, when non-nil, is a hard input populated by the
	// multi-basis runner after the governing-basis run: every basis after
	// the first must reproduce these premiums exactly rather than
	// re-resolving strategies, so the gross premium column stays identical
	// across bases. NewLoan and Withdrawal are not overridden.
	OverridingPayments []float64
}

// NewOutlay constructs an Outlay with all vectors zeroed and every year
// defaulting to explicit, annual-mode premiums.
func NewOutlay(yearsToMaturity int) (*Outlay, error) {
	if yearsToMaturity <= 0 {
		return nil, fmt.Errorf("outlay: yearsToMaturity must be positive, got %d", yearsToMaturity)
	}
	o := &Outlay{
		yearsToMaturity: yearsToMaturity,
		GrossPremium:    make([]float64, yearsToMaturity),
		EmployeePremium: make([]float64, yearsToMaturity),
		EmployerPremium: make([]float64, yearsToMaturity),
		NewLoan:         make([]float64, yearsToMaturity),
		Withdrawal:      make([]float64, yearsToMaturity),
		Mode:            make([]Mode, yearsToMaturity),
		Strategy:        make([]PremiumStrategy, yearsToMaturity),
		SalaryPct:       make([]float64, yearsToMaturity),
	}
	return o, nil
}

// SolveSetPremium overwrites GrossPremium on [beginYear, endYear) with a
// uniform amount, splitting it between employee and employer pro rata to
// whatever split was already present (or entirely to employee if the prior
// split was zero/zero). The solver calls this once per trial evaluation
// when solving for a premium amount.
func (o *Outlay) SolveSetPremium(amount float64, beginYear, endYear int) error {
	beginYear, endYear, err := o.clampRange(beginYear, endYear)
	if err != nil {
		return err
	}
	for y := beginYear; y < endYear; y++ {
		prior := o.GrossPremium[y]
		empShare := 1.0
		if prior > 0 {
			empShare = o.EmployeePremium[y] / prior
		}
		o.GrossPremium[y] = amount
		o.EmployeePremium[y] = amount * empShare
		o.EmployerPremium[y] = amount * (1 - empShare)
		o.Strategy[y] = StrategyExplicit
	}
	return nil
}

// SolveSetLoan overwrites NewLoan on [beginYear, endYear) with a uniform
// amount.
func (o *Outlay) SolveSetLoan(amount float64, beginYear, endYear int) error {
	beginYear, endYear, err := o.clampRange(beginYear, endYear)
	if err != nil {
		return err
	}
	for y := beginYear; y < endYear; y++ {
		o.NewLoan[y] = amount
	}
	return nil
}

// SolveSetWithdrawal overwrites Withdrawal on [beginYear, endYear) with a
// uniform amount.
func (o *Outlay) SolveSetWithdrawal(amount float64, beginYear, endYear int) error {
	beginYear, endYear, err := o.clampRange(beginYear, endYear)
	if err != nil {
		return err
	}
	for y := beginYear; y < endYear; y++ {
		o.Withdrawal[y] = amount
	}
	return nil
}

func (o *Outlay) clampRange(beginYear, endYear int) (int, int, error) {
	if beginYear < 0 || endYear > o.yearsToMaturity || beginYear > endYear {
		return 0, 0, fmt.Errorf("outlay: range [%d,%d) out of bounds for %d years", beginYear, endYear, o.yearsToMaturity)
	}
	return beginYear, endYear, nil
}

// ResolvePremium returns the gross premium the engine should use for year y:
// OverridingPayments if present (the non-governing-basis case), otherwise
// the explicit GrossPremium entry if Strategy[y] is StrategyExplicit, or a
// strategy-derived amount computed from the supplied §7702 and salary
// context otherwise.
func (o *Outlay) ResolvePremium(y int, ctx StrategyContext) (float64, error) {
	if y < 0 || y >= o.yearsToMaturity {
		return 0, fmt.Errorf("outlay: year %d out of range", y)
	}
	if o.OverridingPayments != nil {
		if y >= len(o.OverridingPayments) {
			return 0, nil
		}
		return o.OverridingPayments[y], nil
	}
	switch o.Strategy[y] {
	case StrategyExplicit:
		return o.GrossPremium[y], nil
	case StrategyTarget:
		return ctx.TargetPremium, nil
	case StrategyMinimum:
		return ctx.MinimumPremium, nil
	case StrategyMEP:
		return ctx.SevenPayPremium, nil
	case StrategyGLP:
		return ctx.GLP, nil
	case StrategyGSP:
		return ctx.GSP, nil
	case StrategyCorridor:
		return ctx.CorridorPremium, nil
	case StrategyTable:
		return o.GrossPremium[y], nil
	case StrategySalaryPct:
		return ctx.Salary * o.SalaryPct[y], nil
	default:
		return 0, fmt.Errorf("outlay: unknown premium strategy %v at year %d", o.Strategy[y], y)
	}
}

// StrategyContext carries the then-current §7702 and compensation values a
// premium strategy resolves against. The engine builds a fresh
// StrategyContext in txPmt on each premium payment date, from the year's
// cached §7702 values, loads and corridor factor.
type StrategyContext struct {
	TargetPremium   float64
	MinimumPremium  float64
	SevenPayPremium float64
	GLP             float64
	GSP             float64
	CorridorPremium float64
	Salary          float64
}
