package illustrate

import "testing"

func TestLoadDefaultProductFixture(t *testing.T) {
	fixture, err := LoadDefaultProductFixture()
	if err != nil {
		t.Fatalf("LoadDefaultProductFixture: %v", err)
	}
	if fixture.Name == "" {
		t.Error("expected a non-empty product name")
	}
	if len(fixture.CurrentCOI) == 0 {
		t.Error("expected a non-empty current COI table")
	}
}

func TestFixtureRateProvider_MonthlyCOI_DistinguishesBases(t *testing.T) {
	fixture, err := LoadDefaultProductFixture()
	if err != nil {
		t.Fatalf("LoadDefaultProductFixture: %v", err)
	}
	p := NewFixtureRateProvider(fixture)

	current, err := p.MonthlyCOI(BasisCurrent, 45, 10)
	if err != nil {
		t.Fatalf("MonthlyCOI(Current): %v", err)
	}
	guaranteed, err := p.MonthlyCOI(BasisGuaranteed, 45, 10)
	if err != nil {
		t.Fatalf("MonthlyCOI(Guaranteed): %v", err)
	}
	if len(current) != 10 || len(guaranteed) != 10 {
		t.Fatalf("expected 10-year vectors, got %d/%d", len(current), len(guaranteed))
	}
	if current[0] >= guaranteed[0] {
		t.Errorf("expected guaranteed COI to exceed current COI, got %v vs %v", guaranteed[0], current[0])
	}
}

func TestFixtureRateProvider_ExtendsTableByRepeatingLastEntry(t *testing.T) {
	fixture := ProductFixture{
		Name:       "tiny",
		CurrentCOI: []float64{0.001, 0.002},
	}
	p := NewFixtureRateProvider(fixture)
	monthly, err := p.MonthlyCOI(BasisCurrent, 45, 5)
	if err != nil {
		t.Fatalf("MonthlyCOI: %v", err)
	}
	if len(monthly) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(monthly))
	}
	for i := 2; i < 5; i++ {
		if monthly[i] != monthly[2] {
			t.Errorf("expected entries past the table's end to repeat the last rate, year %d differs", i)
		}
	}
}

func TestFixtureRateProvider_SurrenderCharge_ClampsDuration(t *testing.T) {
	fixture := ProductFixture{SurrenderCharge: []float64{500, 400, 300}}
	p := NewFixtureRateProvider(fixture)

	first, err := p.SurrenderCharge(0)
	if err != nil {
		t.Fatalf("SurrenderCharge(0): %v", err)
	}
	if first != 500 {
		t.Errorf("expected 500, got %v", first)
	}
	beyond, err := p.SurrenderCharge(99)
	if err != nil {
		t.Fatalf("SurrenderCharge(99): %v", err)
	}
	if beyond != 300 {
		t.Errorf("expected the final entry (300) for a duration past the table, got %v", beyond)
	}
}

func TestFixtureRateProvider_SurrenderCharge_ZeroWhenNoTable(t *testing.T) {
	p := NewFixtureRateProvider(ProductFixture{})
	sc, err := p.SurrenderCharge(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc != 0 {
		t.Errorf("expected 0, got %v", sc)
	}
}

func TestFixtureRateProvider_RiderCharge_ZeroVectorWhenAbsent(t *testing.T) {
	p := NewFixtureRateProvider(ProductFixture{})
	v, err := p.RiderCharge(RiderChild, 45, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 5 {
		t.Fatalf("expected a 5-entry zero vector, got %d entries", len(v))
	}
	for _, x := range v {
		if x != 0 {
			t.Errorf("expected all-zero rider charges, got %v", x)
		}
	}
}

func TestFixtureRateProvider_RiderCharge_ReadsNamedRider(t *testing.T) {
	fixture, err := LoadDefaultProductFixture()
	if err != nil {
		t.Fatalf("LoadDefaultProductFixture: %v", err)
	}
	p := NewFixtureRateProvider(fixture)
	v, err := p.RiderCharge(RiderADB, 45, 5)
	if err != nil {
		t.Fatalf("RiderCharge(RiderADB): %v", err)
	}
	if len(v) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(v))
	}
}

func TestFixtureRateProvider_MissingTableErrors(t *testing.T) {
	p := NewFixtureRateProvider(ProductFixture{Name: "empty"})
	if _, err := p.MonthlyCOI(BasisCurrent, 45, 10); err == nil {
		t.Fatal("expected an error for a product with no COI table")
	}
	if _, err := p.Corridor(45, 10); err == nil {
		t.Fatal("expected an error for a product with no corridor table")
	}
	if _, err := p.SevenPayPremium(45, 10); err == nil {
		t.Fatal("expected an error for a product with no 7pp table")
	}
}
