package illustrate

import "fmt"

// runner.go is the multi-basis runner: it runs one contract's AccountValue
// engine once per required basis, forcing every basis after the first to
// reproduce the governing basis's gross premium column exactly via
// Outlay.OverridingPayments. Loans and withdrawals are not overridden: each
// basis reads them from Outlay and caps them against its own values.
// Grounded in the same "run once, reuse resolved inputs"
// shape RunSimulation uses when comparing strategies against a shared set
// of resolved withdrawal amounts.

// LedgerType selects which basis set a run must produce and whether the
// illustration-regulation midpoint-basis rule applies.
type LedgerType int

const (
	LedgerTypeIllustrationReg LedgerType = iota // requires Current, Guaranteed, Midpoint
	LedgerTypeNASD                              // requires three separate-account return assumptions instead
	LedgerTypeBareBones                         // requires only Current
)

// RequiredBases returns the basis set a ledger type must populate, in the
// order the governing basis should be run first.
func RequiredBases(lt LedgerType) []Basis {
	switch lt {
	case LedgerTypeIllustrationReg:
		return []Basis{BasisCurrent, BasisGuaranteed, BasisMidpoint}
	case LedgerTypeNASD:
		return []Basis{BasisCurrentZero, BasisCurrentHalf, BasisCurrent}
	default:
		return []Basis{BasisCurrent}
	}
}

// RunMultiBasis runs the governing basis (conventionally the first entry of
// RequiredBases) to determine actual outlay, then reruns the remaining
// bases with that outlay held fixed via OverridingPayments, and assembles
// the results into one Ledger.
func RunMultiBasis(inv InvariantLedger, lt LedgerType, db *DeathBenefit, outlay *Outlay, tax *Evaluator, rates RateProvider, cell Cell) (*Ledger, error) {
	bases := RequiredBases(lt)
	if len(bases) == 0 {
		return nil, fmt.Errorf("runner: no bases required for ledger type %v", lt)
	}
	governing := bases[0]

	governingAV, err := NewAccountValue(cell, db, outlay, tax, rates)
	if err != nil {
		return nil, err
	}
	governingLedger, err := governingAV.Run(governing)
	if err != nil {
		return nil, fmt.Errorf("runner: governing basis %s: %w", governing, err)
	}

	overriding := governingLedger.GrossPremium

	ledger := NewLedger(inv, bases)
	ledger.Variants[governing] = governingLedger

	for _, basis := range bases[1:] {
		rebasedOutlay := *outlay
		rebasedOutlay.OverridingPayments = overriding
		rebasedDB := db.Clone()
		rebasedTax := NewEvaluator(tax.Regime, tax.MECPolicy, tax.MaterialChangeRule)

		av, err := NewAccountValue(cell, rebasedDB, &rebasedOutlay, rebasedTax, rates)
		if err != nil {
			return nil, err
		}
		vl, err := av.Run(basis)
		if err != nil {
			return nil, fmt.Errorf("runner: basis %s: %w", basis, err)
		}
		vl.OverridingPremium = overriding
		ledger.Variants[basis] = vl
	}
	return ledger, nil
}
