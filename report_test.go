package illustrate

import "testing"

func TestRenderPDF_ProducesNonEmptyOutput(t *testing.T) {
	db, outlay, tax, rates := newTestInputs(t, 10, 6000)
	cell := newTestCell(10)
	inv := InvariantLedger{IssueAge: 45, YearsToMaturity: 10, Regime: RegimeCVAT}

	ledger, err := RunMultiBasis(inv, LedgerTypeBareBones, db, outlay, tax, rates, cell)
	if err != nil {
		t.Fatalf("RunMultiBasis: %v", err)
	}
	data, err := RenderPDF(ledger)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF bytes")
	}
	if string(data[:4]) != "%PDF" {
		t.Errorf("expected a PDF header, got %q", data[:4])
	}
}

func TestRenderPDF_RejectsNilLedger(t *testing.T) {
	if _, err := RenderPDF(nil); err == nil {
		t.Fatal("expected an error rendering a nil ledger")
	}
}

func TestRenderPDF_PrefersCurrentBasis(t *testing.T) {
	l := NewLedger(InvariantLedger{YearsToMaturity: 3}, []Basis{BasisGuaranteed, BasisCurrent})
	basis, vl, err := primaryVariant(l)
	if err != nil {
		t.Fatalf("primaryVariant: %v", err)
	}
	if basis != BasisCurrent {
		t.Errorf("expected BasisCurrent to be preferred, got %s", basis)
	}
	if vl != l.Variants[BasisCurrent] {
		t.Error("expected the Current basis's variant ledger")
	}
}
