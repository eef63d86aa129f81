package illustrate

import "fmt"

// accountvalue.go is the core month-by-month projection engine, grounded in
// accountvalue.hpp's AccountValue class and RunSimulation's year-loop shape
// (simulation.go): TxOptChg, TxSpecAmtChg, TxSet7702, TxPmt, TxLoanRepay,
// TxSetDeathBft, TxSetCOI, TxSetRiderDed, TxDoMlyDed, TxCreditInt, TxLoanInt,
// TxTakeWD, TxTakeLoan, TxTestLapse map one-to-one to the tx* methods below,
// called in the same fixed order every month. Where the original splits
// unloaned AV into general- and separate-account partitions, this
// projection tracks a single blended unloaned partition plus a loaned
// partition: SeparateAccountPct selects how much of the unloaned credited
// rate comes from the separate-account assumption versus the general
// account's floor/current rate, which is enough to reproduce the engine's
// rate-blending behavior without a third partition threaded through every
// transaction.

// DeductionPreference orders which AV partition absorbs monthly charges
// first: unloaned before loaned, matching product administration practice
// of drawing policy charges from the account the policyholder directly
// controls before touching collateral backing an outstanding loan.
type DeductionPreference int

const (
	DeductUnloanedFirst DeductionPreference = iota
	DeductLoanedFirst
)

// WDSpecAmtMethod selects how a withdrawal reduces the specified amount for
// death-benefit options that reduce coverage dollar-for-dollar with AV.
type WDSpecAmtMethod int

const (
	WDReduceProportional WDSpecAmtMethod = iota
	WDReduceDollarForDollar
)

// Cell describes one contract's static parameters: everything the engine
// needs besides the per-year/per-month vectors already owned by
// DeathBenefit, Outlay, and the tax Evaluator.
type Cell struct {
	IssueAge        int
	RetirementAge   int
	YearsToMaturity int
	InForceMonth    int // first month simulated in year 0; 0 for a new-business cell

	SeparateAccountPct float64 // fraction of unloaned AV crediting at the separate-account assumption

	MaxLoanPctOfCSV float64 // cap on new loans as a fraction of cash surrender value
	MlyLoanDueRate  float64 // monthly rate charged on outstanding loan balance
	MlyLoanCredRate float64 // monthly rate credited on loaned (collateral) AV
	PayLoanIntInCash bool    // if true, due loan interest transfers cash instead of capitalizing

	WithdrawalFeeFlat float64
	WithdrawalFeePct  float64
	WDSpecAmtMethod   WDSpecAmtMethod

	DeductionPreference DeductionPreference

	MinSpecAmt float64
	MinPremium float64 // no-lapse guarantee minimum, fed to Outlay's StrategyMinimum

	ActiveRiders []RiderKind // supplemental benefits priced through RateProvider.RiderCharge

	RoundCOI      Rounder
	RoundPolicyFee Rounder
	RoundInterest  Rounder
}

// AccountValue is the engine instance for one contract on one basis. It is
// constructed once per (cell, basis) pair by the multi-basis runner.
type AccountValue struct {
	Cell   Cell
	DB     *DeathBenefit
	Outlay *Outlay
	Tax    *Evaluator
	Rates  RateProvider

	basis Basis

	avUnloaned  float64
	avLoaned    float64
	loanBalance float64

	cumPayments    float64
	cumWithdrawals float64
	cumTargetPrem  float64

	itLapsed   bool
	lapseYear  int
	lapseMonth int

	// per-basis cached vectors, populated by prepareBasis
	coi           []float64 // monthly COI rate
	interestFloor []float64 // annual effective
	sepAcctGross  []float64 // annual effective
	corridor      []float64
	sevenPP       []float64
	glp           []float64
	gsp           []float64
	loads         LoadSchedule
	surrenderCharge []float64 // by duration, flat dollar amount
	riderCharge     []float64 // annual total across Cell.ActiveRiders, by duration

	// ledger accumulation vectors, populated by runLocked
	ledgerAV         []float64
	ledgerCSV        []float64
	ledgerDB         []float64
	ledgerGrossPrem  []float64
	ledgerNetPrem    []float64
	ledgerForceout   []float64
	ledgerCOI        []float64
	ledgerPolicyFee  []float64
	ledgerInterest   []float64
	ledgerLoanBal    []float64
	ledgerWD         []float64
	ledgerCorridor   []float64
	ledgerGLP        []float64
	ledgerGSP        []float64
	ledgerCumPmts    []float64
	ledgerIsMEC      []bool
	ledgerRiderCharge []float64

	// within-year accumulators, reset by writeYearToLedger
	lastGrossPrem    float64
	lastNetPrem      float64
	lastForceout     float64
	lastCOI          float64
	lastInterest     float64
	lastWD           float64
	lastPolicyFee    float64
	lastRiderCharge  float64
	lastDeathBenefit float64
}

// NewAccountValue constructs an engine instance. db, outlay, and tax are
// owned by the caller and may be shared read-only across bases where the
// multi-basis runner requires identical inputs (Outlay.OverridingPayments
// is how premium stays identical across bases; DeathBenefit and the tax
// Evaluator are not shared since §7702 state and specamt strategy
// resolution are themselves basis-dependent).
func NewAccountValue(cell Cell, db *DeathBenefit, outlay *Outlay, tax *Evaluator, rates RateProvider) (*AccountValue, error) {
	if cell.YearsToMaturity <= 0 {
		return nil, fmt.Errorf("accountvalue: yearsToMaturity must be positive")
	}
	return &AccountValue{
		Cell:      cell,
		DB:        db,
		Outlay:    outlay,
		Tax:       tax,
		Rates:     rates,
		lapseYear: cell.YearsToMaturity,
	}, nil
}

func (av *AccountValue) prepareBasis(basis Basis) error {
	av.basis = basis
	n := av.Cell.YearsToMaturity
	var err error
	if av.coi, err = av.Rates.MonthlyCOI(basis, av.Cell.IssueAge, n); err != nil {
		return err
	}
	if av.interestFloor, err = av.Rates.InterestFloor(basis, av.Cell.IssueAge, n); err != nil {
		return err
	}
	if av.sepAcctGross, err = av.Rates.SeparateAccountGross(basis, av.Cell.IssueAge, n); err != nil {
		return err
	}
	if av.corridor, err = av.Rates.Corridor(av.Cell.IssueAge, n); err != nil {
		return err
	}
	if av.sevenPP, err = av.Rates.SevenPayPremium(av.Cell.IssueAge, n); err != nil {
		return err
	}
	if av.glp, err = av.Rates.GLPFactor(av.Cell.IssueAge, n); err != nil {
		return err
	}
	if av.gsp, err = av.Rates.GSPFactor(av.Cell.IssueAge, n); err != nil {
		return err
	}
	if av.loads, err = av.Rates.Loads(); err != nil {
		return err
	}
	av.surrenderCharge = make([]float64, n)
	for y := 0; y < n; y++ {
		sc, err := av.Rates.SurrenderCharge(y)
		if err != nil {
			return err
		}
		av.surrenderCharge[y] = sc
	}
	av.riderCharge = make([]float64, n)
	for _, rider := range av.Cell.ActiveRiders {
		v, err := av.Rates.RiderCharge(rider, av.Cell.IssueAge, n)
		if err != nil {
			return err
		}
		for y, x := range v {
			av.riderCharge[y] += x
		}
	}
	return nil
}

// Run projects the whole contract on one basis, returning a populated
// VariantLedger. It is fatal (returns an error, aborting the whole run) on
// any domain error surfaced by the rate provider or the FP environment
// guard; a §7702 GPT breach or MEC latch is not fatal and is reflected in
// the ledger instead.
func (av *AccountValue) Run(basis Basis) (*VariantLedger, error) {
	diag, err := EngineScope(RoundToNearest, func() error {
		return av.runLocked(basis)
	})
	if diag != "" {
		return nil, DomainErrorf("accountvalue: floating point environment corrupted: %s", diag)
	}
	if err != nil {
		return nil, err
	}
	vl := &VariantLedger{
		Basis:            basis,
		AccountValue:     av.ledgerAV,
		CashSurrenderVal: av.ledgerCSV,
		DeathBenefit:     av.ledgerDB,
		GrossPremium:     av.ledgerGrossPrem,
		NetPremium:       av.ledgerNetPrem,
		Forceout:         av.ledgerForceout,
		COICharge:        av.ledgerCOI,
		PolicyFeeCharge:  av.ledgerPolicyFee,
		RiderCharge:      av.ledgerRiderCharge,
		InterestCredited: av.ledgerInterest,
		LoanBalance:      av.ledgerLoanBal,
		Withdrawal:       av.ledgerWD,
		CorridorFactor:   av.ledgerCorridor,
		GLP:              av.ledgerGLP,
		GSP:              av.ledgerGSP,
		CumPayments:      av.ledgerCumPmts,
		IsMEC:            av.ledgerIsMEC,
		LapseYear:        av.lapseYear,
		Lapsed:           av.itLapsed,
	}
	return vl, nil
}

func (av *AccountValue) runLocked(basis Basis) error {
	if err := av.prepareBasis(basis); err != nil {
		return err
	}
	n := av.Cell.YearsToMaturity
	av.ledgerAV = make([]float64, n)
	av.ledgerCSV = make([]float64, n)
	av.ledgerDB = make([]float64, n)
	av.ledgerGrossPrem = make([]float64, n)
	av.ledgerNetPrem = make([]float64, n)
	av.ledgerForceout = make([]float64, n)
	av.ledgerCOI = make([]float64, n)
	av.ledgerPolicyFee = make([]float64, n)
	av.ledgerInterest = make([]float64, n)
	av.ledgerLoanBal = make([]float64, n)
	av.ledgerWD = make([]float64, n)
	av.ledgerCorridor = make([]float64, n)
	av.ledgerGLP = make([]float64, n)
	av.ledgerGSP = make([]float64, n)
	av.ledgerCumPmts = make([]float64, n)
	av.ledgerIsMEC = make([]bool, n)
	av.ledgerRiderCharge = make([]float64, n)

	for year := 0; year < n; year++ {
		if err := av.yearPreamble(year); err != nil {
			return err
		}
		beginMonth := 0
		if year == 0 {
			beginMonth = av.Cell.InForceMonth
		}
		for month := beginMonth; month < 12; month++ {
			if err := av.monthStep(year, month); err != nil {
				return err
			}
		}
		av.writeYearToLedger(year)
	}
	return nil
}

// yearPreamble reads the year's specified amount, recomputes §7702 test
// values, and banks this year's GLP allowance, all before the first month
// of the year runs. DB-option changes are handled in the first month step.
func (av *AccountValue) yearPreamble(year int) error {
	specAmt, err := av.DB.SpecAmtAt(year)
	if err != nil {
		return err
	}
	av.Tax.RefreshDuration(av.corridor[year], av.glp[year], av.gsp[year], av.sevenPP[year], specAmt)
	av.Tax.BankAnnualGLP()
	return nil
}

// monthStep runs the monthly transaction sequence, steps 1 through 15, in
// its fixed order; no debug step follows tx_test_lapse.
func (av *AccountValue) monthStep(year, month int) error {
	if av.itLapsed {
		return nil // post-lapse months still iterate but contribute zero, written by writeYearToLedger
	}

	bomAV := av.txSetBOMAV()

	if av.DB.OptionChangedAt(year) && month == 0 {
		av.txOptChg()
	}
	if av.DB.SpecAmtChangedAt(year) && month == 0 {
		if err := av.txSpecAmtChg(year); err != nil {
			return err
		}
	}
	specAmt, err := av.DB.SpecAmtAt(year)
	if err != nil {
		return err
	}
	av.Tax.RefreshDuration(av.corridor[year], av.glp[year], av.gsp[year], av.sevenPP[year], specAmt)

	grossPrem, netPrem, forceout, err := av.txPmt(year, month, specAmt)
	if err != nil {
		return err
	}

	av.txLoanRepay()

	dbOpt, err := av.DB.DBOptionAt(year)
	if err != nil {
		return err
	}
	deathBenefit := av.txSetDeathBft(specAmt, dbOpt)

	naar, coiCharge := av.txSetCOI(year, deathBenefit)
	riderCharge := av.txSetRiderDed(year)

	av.txDoMlyDed(year, coiCharge, riderCharge)
	interestCredited := av.txCreditInt(year)
	av.txLoanInt()

	wd := av.txTakeWD(year)
	av.txTakeLoan(year)

	lapsed := av.txTestLapse(year, month)
	if lapsed {
		deathBenefit = 0 // the policy no longer exists as of this month; nothing is at risk
	}

	av.recordMonth(year, month, bomAV, grossPrem, netPrem, forceout, coiCharge, riderCharge,
		interestCredited, wd, naar, deathBenefit, specAmt)
	return nil
}

// txSetBOMAV snapshots beginning-of-month AV (step 1).
func (av *AccountValue) txSetBOMAV() float64 {
	return av.avUnloaned + av.avLoaned
}

// txOptChg is the DB-option transition step (step 2). It changes neither
// specamt nor AV; the new option takes effect through txSetDeathBft.
func (av *AccountValue) txOptChg() {
	// The specamt vector already reflects the elected option for this
	// year; no AV-side adjustment is needed beyond what DeathBenefit
	// already carries, since ROP's formula reads cum_payments directly
	// in txSetDeathBft rather than folding it into specamt here.
}

// txSpecAmtChg recomputes surrender charge basis and §7702 limits when
// specamt changes mid-contract (step 3). The surrender charge is taken from
// the per-duration table cached by prepareBasis and the §7702 limits are
// refreshed from the tax Evaluator every month, so this step is a no-op for a
// product that charges a one-time re-underwriting fee on increase; lmi's
// reference product does not.
func (av *AccountValue) txSpecAmtChg(year int) error {
	return nil
}

// txPmt accepts the modal premium: applies premium-tax, DAC, and sales
// loads, credits the net premium to unloaned AV, tests it against the
// active tax regime, and updates cumulative trackers (step 5). It is a
// no-op in months that are not a payment date for the year's elected mode.
func (av *AccountValue) txPmt(year, month int, specAmt float64) (gross, net, forceout float64, err error) {
	periods := av.Outlay.Mode[year].PeriodsPerYear()
	monthsPerPeriod := 12 / periods
	if month%monthsPerPeriod != 0 {
		return 0, 0, 0, nil
	}

	ctx := StrategyContext{
		TargetPremium:   specAmt * av.loads.TargetLoadRate,
		MinimumPremium:  av.Cell.MinPremium,
		SevenPayPremium: av.sevenPP[year],
		GLP:             av.glp[year],
		GSP:             av.gsp[year],
		CorridorPremium: specAmt / av.corridor[year],
	}
	annualPrem, err := av.Outlay.ResolvePremium(year, ctx)
	if err != nil {
		return 0, 0, 0, err
	}
	gross = annualPrem / float64(periods)

	outcome, err := av.Tax.TestPremium(gross, year)
	if err != nil {
		return 0, 0, 0, err
	}
	accepted := outcome.Accepted
	forceout = outcome.ForcedOut

	loadPct := av.loads.PremiumTaxRate + av.loads.DACTaxLoadRate
	target := specAmt * av.loads.TargetLoadRate
	excess := accepted - target
	if excess < 0 {
		excess = 0
	}
	salesLoad := (accepted-excess)*av.loads.SalesLoadRate + excess*av.loads.ExcessLoadRate
	net = accepted*(1-loadPct) - salesLoad
	if net < 0 {
		net = 0
	}
	av.avUnloaned += net
	av.cumPayments += accepted
	av.Tax.UpdateDCV(outcome.Necessary)
	return gross, net, forceout, nil
}

// txLoanRepay is the loan-repayment step (step 6). Outlay carries no
// repayment vector, so this step moves nothing between loaned and unloaned
// AV and leaves the loan balance unchanged.
func (av *AccountValue) txLoanRepay() {}

// txSetDeathBft applies the corridor and DB-option formulas (step 7).
func (av *AccountValue) txSetDeathBft(specAmt float64, opt DBOption) float64 {
	required := av.Tax.RequiredDeathBenefit(av.avUnloaned + av.avLoaned)
	switch opt {
	case DBOptionB:
		level := specAmt + av.avUnloaned + av.avLoaned
		if level > required {
			return level
		}
		return required
	case DBOptionROP:
		rop := specAmt + av.cumPayments - av.cumWithdrawals
		if rop > required {
			return rop
		}
		return required
	default: // DBOptionA
		if specAmt > required {
			return specAmt
		}
		return required
	}
}

// txSetCOI computes net amount at risk and the cost-of-insurance charge,
// rounded per product convention (step 8).
func (av *AccountValue) txSetCOI(year int, deathBenefit float64) (naar, coiCharge float64) {
	naar = deathBenefit - (av.avUnloaned + av.avLoaned)
	if naar < 0 {
		naar = 0
	}
	charge := naar * av.coi[year]
	return naar, av.Cell.RoundCOI.RoundFloat(charge)
}

// txSetRiderDed returns this month's supplemental-benefit rider charge (step
// 9), the monthly share of the annual rider-charge total summed across
// Cell.ActiveRiders and cached by prepareBasis. A cell with no active riders
// carries an all-zero riderCharge vector and so deducts nothing.
func (av *AccountValue) txSetRiderDed(year int) float64 {
	return av.riderCharge[year] / 12
}

// txDoMlyDed deducts the monthly policy fee, specamt load, AV-based load,
// COI, and rider charges from AV, partitioned by Cell.DeductionPreference
// (step 10).
func (av *AccountValue) txDoMlyDed(year int, coiCharge, riderCharge float64) {
	fee := av.Cell.RoundPolicyFee.RoundFloat(av.loads.MonthlyPolicyFee + av.loads.AnnualPolicyFee/12)
	avLoad := av.Cell.RoundPolicyFee.RoundFloat((av.avUnloaned + av.avLoaned) * av.loads.AVLoadRate)
	total := fee + avLoad + coiCharge + riderCharge
	av.deduct(total)
	av.lastPolicyFee += fee + avLoad
	av.lastRiderCharge += riderCharge
}

func (av *AccountValue) deduct(amount float64) {
	if av.Cell.DeductionPreference == DeductLoanedFirst {
		fromLoaned := amount
		if fromLoaned > av.avLoaned {
			fromLoaned = av.avLoaned
		}
		av.avLoaned -= fromLoaned
		av.avUnloaned -= amount - fromLoaned
		return
	}
	fromUnloaned := amount
	if fromUnloaned > av.avUnloaned {
		fromUnloaned = av.avUnloaned
	}
	av.avUnloaned -= fromUnloaned
	av.avLoaned -= amount - fromUnloaned
}

// txCreditInt credits monthly interest on each AV partition at its
// applicable rate, computed at the true monthly-effective rate rather than
// annual/12, and rounded at the product-prescribed decimal (step 11).
func (av *AccountValue) txCreditInt(year int) float64 {
	floorRate := av.interestFloor[year]
	gross := av.sepAcctGross[year]
	blended := floorRate*(1-av.Cell.SeparateAccountPct) + gross*av.Cell.SeparateAccountPct

	mlyUnloaned, _ := IUpperNOverN(blended, 12)
	mlyLoaned := av.Cell.MlyLoanCredRate

	unloanedInt := av.Cell.RoundInterest.RoundFloat(av.avUnloaned * mlyUnloaned)
	loanedInt := av.Cell.RoundInterest.RoundFloat(av.avLoaned * mlyLoaned)
	av.avUnloaned += unloanedInt
	av.avLoaned += loanedInt
	return unloanedInt + loanedInt
}

// txLoanInt accrues due loan interest and either capitalizes it into the
// loan balance or, if Cell.PayLoanIntInCash is set, transfers it from
// unloaned to loaned AV instead (step 12).
func (av *AccountValue) txLoanInt() {
	due := av.loanBalance * av.Cell.MlyLoanDueRate
	if due == 0 {
		return
	}
	if av.Cell.PayLoanIntInCash {
		av.avUnloaned -= due
		av.avLoaned += due
		return
	}
	av.loanBalance += due
}

// txTakeWD reduces AV for a scheduled withdrawal, applies a withdrawal fee,
// and, under WDReduceDollarForDollar, reduces specamt by the withdrawal
// (step 13). Under WDReduceProportional specamt is left unchanged.
func (av *AccountValue) txTakeWD(year int) float64 {
	wd := av.Outlay.Withdrawal[year] / 12
	if wd <= 0 {
		return 0
	}
	available := av.avUnloaned
	if wd > available {
		wd = available
	}
	fee := av.Cell.WithdrawalFeeFlat + wd*av.Cell.WithdrawalFeePct
	av.avUnloaned -= wd + fee
	if av.avUnloaned < 0 {
		av.avUnloaned = 0
	}
	av.cumWithdrawals += wd

	if av.Cell.WDSpecAmtMethod == WDReduceDollarForDollar {
		_ = av.DB.SetSpecAmt(maxFloat(0, currentSpecAmt(av.DB, year)-wd), year, av.Cell.YearsToMaturity)
	}
	return wd
}

func currentSpecAmt(db *DeathBenefit, year int) float64 {
	amt, err := db.SpecAmtAt(year)
	if err != nil {
		return 0
	}
	return amt
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// txTakeLoan transfers AV from unloaned to loaned for a new loan, capped at
// the policy-defined maximum loanable amount (step 14).
func (av *AccountValue) txTakeLoan(year int) {
	loan := av.Outlay.NewLoan[year] / 12
	if loan <= 0 {
		return
	}
	csv := av.avUnloaned + av.avLoaned - av.loanBalance
	maxLoan := csv * av.Cell.MaxLoanPctOfCSV
	if loan > maxLoan {
		loan = maxLoan
	}
	if loan > av.avUnloaned {
		loan = av.avUnloaned
	}
	av.avUnloaned -= loan
	av.avLoaned += loan
	av.loanBalance += loan
}

// txTestLapse latches the contract lapsed if cash surrender value — account
// value less surrender charge and outstanding loan balance — has fallen
// below zero (step 15). No grace period or no-lapse guarantee is modelled:
// a negative cash surrender value lapses the contract in that month.
func (av *AccountValue) txTestLapse(year, month int) bool {
	csv := av.avUnloaned + av.avLoaned - av.loanBalance - av.surrenderCharge[year]
	if csv >= 0 {
		return false
	}
	av.itLapsed = true
	av.lapseYear = year
	av.lapseMonth = month
	av.avUnloaned = 0
	av.avLoaned = 0
	av.loanBalance = 0
	return true
}

// recordMonth keeps the last computed monthly figures for the year so
// writeYearToLedger can pick up year-end values. lmi's ledger is annual,
// not monthly, so intra-year detail is not separately retained here; a
// debug stream (tx_debug, step 16) would hook in at this point for a
// product build that needs monthly audit rows.
func (av *AccountValue) recordMonth(year, month int, bomAV, grossPrem, netPrem, forceout, coiCharge, riderCharge,
	interestCredited, wd, naar, deathBenefit, specAmt float64) {
	av.lastGrossPrem += grossPrem
	av.lastNetPrem += netPrem
	av.lastForceout += forceout
	av.lastCOI += coiCharge
	av.lastInterest += interestCredited
	av.lastWD += wd
	av.lastDeathBenefit = deathBenefit
	_ = bomAV
	_ = naar
	_ = specAmt
}

func (av *AccountValue) writeYearToLedger(year int) {
	if av.itLapsed && year >= av.lapseYear {
		// Past (and at) the lapse year the contract no longer exists: AV,
		// CSV, death benefit, and loan balance are all zero regardless of
		// what was last recorded in the lapse month itself.
		av.ledgerAV[year] = 0
		av.ledgerCSV[year] = 0
		av.ledgerDB[year] = 0
		av.ledgerLoanBal[year] = 0
	} else {
		av.ledgerAV[year] = av.avUnloaned + av.avLoaned
		av.ledgerCSV[year] = av.avUnloaned + av.avLoaned - av.loanBalance - av.surrenderCharge[year]
		av.ledgerDB[year] = av.lastDeathBenefit
		av.ledgerLoanBal[year] = av.loanBalance
	}
	av.ledgerGrossPrem[year] = av.lastGrossPrem
	av.ledgerNetPrem[year] = av.lastNetPrem
	av.ledgerForceout[year] = av.lastForceout
	av.ledgerCOI[year] = av.lastCOI
	av.ledgerPolicyFee[year] = av.lastPolicyFee
	av.ledgerRiderCharge[year] = av.lastRiderCharge
	av.ledgerInterest[year] = av.lastInterest
	av.ledgerWD[year] = av.lastWD
	av.ledgerCorridor[year] = av.Tax.CorridorFactor
	av.ledgerGLP[year] = av.Tax.GLP
	av.ledgerGSP[year] = av.Tax.GSP
	av.ledgerCumPmts[year] = av.cumPayments
	av.ledgerIsMEC[year] = av.Tax.IsMEC

	av.lastGrossPrem, av.lastNetPrem, av.lastForceout = 0, 0, 0
	av.lastCOI, av.lastInterest, av.lastWD = 0, 0, 0
	av.lastPolicyFee, av.lastRiderCharge, av.lastDeathBenefit = 0, 0, 0
}
