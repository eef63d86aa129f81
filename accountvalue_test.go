package illustrate

import "testing"

func TestAccountValue_ZeroPremiumLapsesQuickly(t *testing.T) {
	years := 5
	fixture, err := LoadDefaultProductFixture()
	if err != nil {
		t.Fatalf("LoadDefaultProductFixture: %v", err)
	}
	rates := NewFixtureRateProvider(fixture)

	db, err := NewDeathBenefit(years, 500000, DBOptionA, 0)
	if err != nil {
		t.Fatalf("NewDeathBenefit: %v", err)
	}
	outlay, err := NewOutlay(years)
	if err != nil {
		t.Fatalf("NewOutlay: %v", err)
	}
	if err := outlay.SolveSetPremium(0, 0, years); err != nil {
		t.Fatalf("SolveSetPremium: %v", err)
	}
	tax := NewEvaluator(RegimeCVAT, PolicyAllowMEC, RuleUnnecessaryPremium)
	cell := newTestCell(years)

	av, err := NewAccountValue(cell, db, outlay, tax, rates)
	if err != nil {
		t.Fatalf("NewAccountValue: %v", err)
	}
	vl, err := av.Run(BasisCurrent)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !vl.Lapsed {
		t.Fatal("expected a zero-premium contract to lapse once monthly charges exceed cash surrender value")
	}
	for y := vl.LapseYear; y < years; y++ {
		if vl.AccountValue[y] != 0 {
			t.Errorf("year %d: expected AV 0 at/after lapse, got %v", y, vl.AccountValue[y])
		}
		if vl.CashSurrenderVal[y] != 0 {
			t.Errorf("year %d: expected CSV 0 at/after lapse, got %v", y, vl.CashSurrenderVal[y])
		}
		if vl.DeathBenefit[y] != 0 {
			t.Errorf("year %d: expected death benefit 0 at/after lapse, got %v", y, vl.DeathBenefit[y])
		}
		if vl.LoanBalance[y] != 0 {
			t.Errorf("year %d: expected loan balance 0 at/after lapse, got %v", y, vl.LoanBalance[y])
		}
	}
}

func TestAccountValue_LargePremiumTriggersMECThroughEngine(t *testing.T) {
	years := 10
	fixture, err := LoadDefaultProductFixture()
	if err != nil {
		t.Fatalf("LoadDefaultProductFixture: %v", err)
	}
	rates := NewFixtureRateProvider(fixture)

	db, err := NewDeathBenefit(years, 10000, DBOptionA, 0)
	if err != nil {
		t.Fatalf("NewDeathBenefit: %v", err)
	}
	outlay, err := NewOutlay(years)
	if err != nil {
		t.Fatalf("NewOutlay: %v", err)
	}
	// A premium far in excess of the seven-pay allowance for a $10,000
	// specified amount: this should classify as unnecessary and latch IsMEC
	// by the end of the first policy year.
	if err := outlay.SolveSetPremium(200000, 0, years); err != nil {
		t.Fatalf("SolveSetPremium: %v", err)
	}
	tax := NewEvaluator(RegimeCVAT, PolicyAllowMEC, RuleUnnecessaryPremium)
	cell := newTestCell(years)

	av, err := NewAccountValue(cell, db, outlay, tax, rates)
	if err != nil {
		t.Fatalf("NewAccountValue: %v", err)
	}
	vl, err := av.Run(BasisCurrent)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !vl.IsMEC[0] {
		t.Error("expected the contract to already be a MEC in year 0")
	}
	if !vl.IsMEC[years-1] {
		t.Error("expected the MEC latch to persist through the final year")
	}
}

func TestAccountValue_CorridorBindsWithLowSpecAmtAndHeavyFunding(t *testing.T) {
	years := 5
	fixture, err := LoadDefaultProductFixture()
	if err != nil {
		t.Fatalf("LoadDefaultProductFixture: %v", err)
	}
	rates := NewFixtureRateProvider(fixture)

	specAmt := 20000.0
	db, err := NewDeathBenefit(years, specAmt, DBOptionA, 0)
	if err != nil {
		t.Fatalf("NewDeathBenefit: %v", err)
	}
	outlay, err := NewOutlay(years)
	if err != nil {
		t.Fatalf("NewOutlay: %v", err)
	}
	// A premium large relative to the elected specified amount builds AV
	// fast enough, at the product's 2.5x early-duration corridor factor,
	// that the corridor-required death benefit exceeds the elected amount.
	if err := outlay.SolveSetPremium(50000, 0, years); err != nil {
		t.Fatalf("SolveSetPremium: %v", err)
	}
	tax := NewEvaluator(RegimeCVAT, PolicyAllowMEC, RuleUnnecessaryPremium)
	cell := newTestCell(years)

	av, err := NewAccountValue(cell, db, outlay, tax, rates)
	if err != nil {
		t.Fatalf("NewAccountValue: %v", err)
	}
	vl, err := av.Run(BasisCurrent)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if vl.DeathBenefit[0] <= specAmt {
		t.Errorf("expected the corridor to force death benefit above the elected %v in year 0, got %v", specAmt, vl.DeathBenefit[0])
	}
}

func TestAccountValue_ActiveRiderChargesAreDeducted(t *testing.T) {
	years := 5
	db, outlay, tax, rates := newTestInputs(t, years, 12000)
	cell := newTestCell(years)
	cell.ActiveRiders = []RiderKind{RiderADB}

	av, err := NewAccountValue(cell, db, outlay, tax, rates)
	if err != nil {
		t.Fatalf("NewAccountValue: %v", err)
	}
	vl, err := av.Run(BasisCurrent)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if vl.RiderCharge[0] <= 0 {
		t.Errorf("expected a nonzero rider charge with an active ADB rider, got %v", vl.RiderCharge[0])
	}
}

func TestAccountValue_NoActiveRidersMeansZeroRiderCharge(t *testing.T) {
	years := 5
	db, outlay, tax, rates := newTestInputs(t, years, 12000)
	cell := newTestCell(years) // ActiveRiders left nil

	av, err := NewAccountValue(cell, db, outlay, tax, rates)
	if err != nil {
		t.Fatalf("NewAccountValue: %v", err)
	}
	vl, err := av.Run(BasisCurrent)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for y, charge := range vl.RiderCharge {
		if charge != 0 {
			t.Errorf("year %d: expected zero rider charge with no active riders, got %v", y, charge)
		}
	}
}

func TestAccountValue_CashSurrenderValueSubtractsSurrenderCharge(t *testing.T) {
	years := 20
	db, outlay, tax, rates := newTestInputs(t, years, 12000)
	cell := newTestCell(years)

	av, err := NewAccountValue(cell, db, outlay, tax, rates)
	if err != nil {
		t.Fatalf("NewAccountValue: %v", err)
	}
	vl, err := av.Run(BasisCurrent)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if vl.Lapsed {
		t.Fatalf("did not expect this scenario to lapse")
	}

	// The fixture's surrender-charge schedule is nonzero through duration
	// 14 and zero from duration 15 on, with no loans outstanding in this
	// scenario (LoanBalance stays 0 throughout).
	if vl.CashSurrenderVal[0] >= vl.AccountValue[0] {
		t.Errorf("expected CSV strictly below AV within the surrender-charge period, got csv=%v av=%v",
			vl.CashSurrenderVal[0], vl.AccountValue[0])
	}
	if vl.CashSurrenderVal[16] != vl.AccountValue[16] {
		t.Errorf("expected CSV to equal AV once the surrender-charge period ends, got csv=%v av=%v",
			vl.CashSurrenderVal[16], vl.AccountValue[16])
	}
}
