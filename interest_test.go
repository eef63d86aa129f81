package illustrate

import (
	"math"
	"testing"
)

const interestTolerance = 1e-9

func TestIUpperNOverN_IdentityAtN1(t *testing.T) {
	got, err := IUpperNOverN(0.05, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.05) > interestTolerance {
		t.Errorf("expected identity at n=1, got %v", got)
	}
}

func TestIUpperNOverN_RoundTripsWithInverse(t *testing.T) {
	annual := 0.045
	j, err := IUpperNOverN(annual, 12)
	if err != nil {
		t.Fatalf("IUpperNOverN: %v", err)
	}
	back, err := IFromIUpperNOverN(j, 12)
	if err != nil {
		t.Fatalf("IFromIUpperNOverN: %v", err)
	}
	if math.Abs(back-annual) > interestTolerance {
		t.Errorf("round trip: expected %v, got %v", annual, back)
	}
}

func TestIUpperNOverN_SmallRatePrecision(t *testing.T) {
	// A small rate should not collapse to zero from catastrophic
	// cancellation in a naive (1+i)^(1/n)-1 formulation.
	got, err := IUpperNOverN(0.0001, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got <= 0 {
		t.Errorf("expected a small positive monthly rate, got %v", got)
	}
	naive := math.Pow(1.0001, 1.0/12) - 1
	if math.Abs(got-naive) > 1e-12 {
		t.Errorf("expected close agreement with naive formula for this rate, got %v vs %v", got, naive)
	}
}

func TestIUpperNOverN_RejectsNonPositiveFrequency(t *testing.T) {
	if _, err := IUpperNOverN(0.05, 0); err == nil {
		t.Fatal("expected error for n=0")
	}
}

func TestIUpperNOverN_BelowFloorRate(t *testing.T) {
	_, err := IUpperNOverN(-1.5, 12)
	if err == nil {
		t.Fatal("expected ErrRateBelowFloor")
	}
	if _, ok := err.(ErrRateBelowFloor); !ok {
		t.Errorf("expected ErrRateBelowFloor, got %T", err)
	}
}

func TestIUpperNOverN_NegativeOneIsIdentity(t *testing.T) {
	got, err := IUpperNOverN(-1, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1 {
		t.Errorf("expected -1, got %v", got)
	}
}

func TestDUpperNOverN_MatchesDiscountIdentity(t *testing.T) {
	i := 0.06
	n := 12
	d, err := DUpperNOverN(i, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1 - math.Pow(1+i, -1.0/float64(n))
	if math.Abs(d-want) > interestTolerance {
		t.Errorf("expected %v, got %v", want, d)
	}
}

func TestNetOfSpreadAndFee_ZeroSpreadAndFeeIsIdentity(t *testing.T) {
	got, err := NetOfSpreadAndFee(0.05, 0, 0, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.05) > interestTolerance {
		t.Errorf("expected identity when spread and fee are zero, got %v", got)
	}
}

func TestNetOfSpreadAndFee_ReducesNetRate(t *testing.T) {
	withoutSpread, err := NetOfSpreadAndFee(0.08, 0, 0, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withSpread, err := NetOfSpreadAndFee(0.08, 0.02, 0, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withSpread >= withoutSpread {
		t.Errorf("expected a nonzero spread to reduce the net rate: %v vs %v", withSpread, withoutSpread)
	}
}

func TestNetOfSpreadAndFee_FloorsAtNegativeOne(t *testing.T) {
	got, err := NetOfSpreadAndFee(0.01, 0, 10, 12) // an absurd per-period fee drives net below -100%
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1 {
		t.Errorf("expected the rate to floor at -1, got %v", got)
	}
}

func TestSignum(t *testing.T) {
	tests := []struct {
		x        float64
		expected int
	}{
		{5, 1},
		{-5, -1},
		{0, 0},
	}
	for _, tc := range tests {
		if got := Signum(tc.x); got != tc.expected {
			t.Errorf("Signum(%v) = %d, want %d", tc.x, got, tc.expected)
		}
	}
}

func TestUAbs(t *testing.T) {
	if UAbs(-3.5) != 3.5 {
		t.Errorf("expected 3.5, got %v", UAbs(-3.5))
	}
	if UAbs(3.5) != 3.5 {
		t.Errorf("expected 3.5, got %v", UAbs(3.5))
	}
}
