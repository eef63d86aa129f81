package illustrate

import "fmt"

// census.go runs a composite of cells and accumulates their ledgers,
// grounded in RunSensitivityAnalysis's pattern (sensitivity_report.go) of
// looping over many parameter combinations and collecting one result per
// combination — here, one cell's ledger per member of the census, reduced
// via Ledger.Add instead of gathered into a result slice.

// CensusMember bundles one cell's full set of inputs.
type CensusMember struct {
	Invariant InvariantLedger
	LedgerType LedgerType
	Cell       Cell
	DB         *DeathBenefit
	Outlay     *Outlay
	Tax        *Evaluator
	Rates      RateProvider
}

// CensusResult reports a composite run's outcome.
type CensusResult struct {
	Composite          *Ledger
	PerCell            []*Ledger
	CompletedNormally  bool
	ParseWallClock      float64
	CalculationWallClock float64
	OutputWallClock     float64
}

// CancelToken lets a long-running composite be interrupted between cells.
// A nil token is always treated as not cancelled.
type CancelToken struct {
	cancelled bool
}

func (c *CancelToken) Cancel() {
	if c != nil {
		c.cancelled = true
	}
}

func (c *CancelToken) IsCancelled() bool {
	return c != nil && c.cancelled
}

// RunCensusLifeByLife runs each member to completion independently, then
// accumulates their ledgers via Ledger.Add. This and RunCensusMonthByMonth
// must produce identical composites whenever no experience-rating state is
// shared across cells, since without shared state the two execution orders
// differ only in scheduling, not in any cell's inputs or outputs.
func RunCensusLifeByLife(members []CensusMember, cancel *CancelToken) (CensusResult, error) {
	if len(members) == 0 {
		return CensusResult{}, fmt.Errorf("census: members must be non-empty")
	}
	var composite *Ledger
	perCell := make([]*Ledger, 0, len(members))

	for _, m := range members {
		if cancel.IsCancelled() {
			return CensusResult{Composite: composite, PerCell: perCell, CompletedNormally: false}, nil
		}
		ledger, err := RunMultiBasis(m.Invariant, m.LedgerType, m.DB, m.Outlay, m.Tax, m.Rates, m.Cell)
		if err != nil {
			return CensusResult{}, fmt.Errorf("census: member issue age %d: %w", m.Cell.IssueAge, err)
		}
		perCell = append(perCell, ledger)
		if composite == nil {
			composite = ledger
			continue
		}
		composite, err = composite.Add(ledger)
		if err != nil {
			return CensusResult{}, err
		}
	}
	return CensusResult{Composite: composite, PerCell: perCell, CompletedNormally: true}, nil
}

// RunCensusMonthByMonth is the entry point for a month-by-month census run.
// Without experience rating active there is no cross-cell state to share,
// so it runs each member independently and composes at the end, exactly
// like RunCensusLifeByLife. With experienceRating set it returns an error:
// lockstep month-by-month advancement is not implemented.
func RunCensusMonthByMonth(members []CensusMember, cancel *CancelToken, experienceRating bool) (CensusResult, error) {
	if !experienceRating {
		return RunCensusLifeByLife(members, cancel)
	}
	return CensusResult{}, fmt.Errorf("census: month-by-month experience rating is not implemented by this rate provider boundary")
}
