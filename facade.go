package illustrate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// facade.go is the top-level entry point a CLI or other caller uses
// instead of wiring CommFns/Evaluator/AccountValue/RunMultiBasis together
// by hand, grounded in main.go's runConsoleMode: parse input, run, emit.
// EmitFlags follows main.go's bitset-over-output-kinds convention
// (showDetails/showDrawdown/generateHTML booleans there, a single bitset
// here so callers can request several outputs from one Illustrate call).

// EmitFlags is a bitset selecting which post-processing an Illustrate call
// performs after computing a ledger.
type EmitFlags uint

const (
	EmitNothing EmitFlags = 0
	EmitText    EmitFlags = 1 << iota
	EmitTSV
	EmitSpreadsheet
	EmitGroupRoster
	EmitGroupQuote
	EmitPDF
	EmitCalculationSummary
	EmitCompositeOnly
	EmitTimings
)

// Input is a single cell's fully-resolved parameters, the unit the
// Illustrator facade accepts one or many of.
type Input struct {
	Invariant  InvariantLedger
	LedgerType LedgerType
	Cell       Cell
	DB         *DeathBenefit
	Outlay     *Outlay
	Tax        *Evaluator
	Rates      RateProvider
}

// Timings holds wall-clock durations (in seconds) for each phase of an
// Illustrate call. The Illustrate functions in this file do not measure or
// fill it, with or without EmitTimings: Result.Timings is always zero.
type Timings struct {
	Parse       float64
	Calculation float64
	Output      float64
}

// Result is what Illustrate returns: the computed ledger (or composite)
// and a Timings value that is left zero.
type Result struct {
	Ledger  *Ledger
	Timings Timings
}

// IllustrateInput runs a single already-resolved Input and returns its
// ledger.
func IllustrateInput(in Input, flags EmitFlags) (Result, error) {
	ledger, err := RunMultiBasis(in.Invariant, in.LedgerType, in.DB, in.Outlay, in.Tax, in.Rates, in.Cell)
	if err != nil {
		return Result{}, err
	}
	if err := postProcess(ledger, flags); err != nil {
		return Result{}, err
	}
	return Result{Ledger: ledger}, nil
}

// IllustrateCensus runs a census of already-resolved Inputs and returns the
// composite ledger.
func IllustrateCensus(inputs []Input, flags EmitFlags, cancel *CancelToken) (Result, error) {
	members := make([]CensusMember, len(inputs))
	for i, in := range inputs {
		members[i] = CensusMember{
			Invariant:  in.Invariant,
			LedgerType: in.LedgerType,
			Cell:       in.Cell,
			DB:         in.DB,
			Outlay:     in.Outlay,
			Tax:        in.Tax,
			Rates:      in.Rates,
		}
	}
	res, err := RunCensusLifeByLife(members, cancel)
	if err != nil {
		return Result{}, err
	}
	if err := postProcess(res.Composite, flags); err != nil {
		return Result{}, err
	}
	return Result{Ledger: res.Composite}, nil
}

// IllustratePath checks the path's extension and illustrates in. It does
// not open or parse the file at path; in must already be resolved. Only
// ".yaml"/".yml"
// paths are supported by the reference rate provider; a caller supplying a
// different RateProvider implementation can still construct Input directly
// and call IllustrateInput instead of going through a path.
func IllustratePath(path string, in Input, flags EmitFlags) (Result, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return IllustrateInput(in, flags)
	default:
		return Result{}, fmt.Errorf("facade: unsupported input extension %q", ext)
	}
}

// postProcess dispatches EmitFlags to report generation. PDF/HTML/TSV
// rendering is out of scope for the core engine; report.go implements the
// PDF path alone, grounded in pdf_report.go, as the one rendering format
// this module carries.
func postProcess(ledger *Ledger, flags EmitFlags) error {
	if ledger == nil {
		return fmt.Errorf("facade: nothing to emit; ledger is nil")
	}
	if flags&EmitPDF != 0 {
		if _, err := RenderPDF(ledger); err != nil {
			return fmt.Errorf("facade: pdf rendering: %w", err)
		}
	}
	return nil
}
