package illustrate

import (
	"math"
	"testing"
)

func TestNewCommFns_RejectsMismatchedLengths(t *testing.T) {
	if _, err := NewCommFns([]float64{0.01, 0.02}, []float64{0.05}); err == nil {
		t.Fatal("expected error for mismatched q/i lengths")
	}
}

func TestNewCommFns_RejectsMortalityOutOfRange(t *testing.T) {
	if _, err := NewCommFns([]float64{1.5}, []float64{0.05}); err == nil {
		t.Fatal("expected error for q out of [0,1]")
	}
}

func TestNewCommFns_DIsMonotoneDecreasing(t *testing.T) {
	q := []float64{0.01, 0.02, 0.03, 0.04}
	i := []float64{0.05, 0.05, 0.05, 0.05}
	f, err := NewCommFns(q, i)
	if err != nil {
		t.Fatalf("NewCommFns: %v", err)
	}
	d := f.D()
	for k := 1; k < len(d); k++ {
		if d[k] >= d[k-1] {
			t.Errorf("expected D to strictly decrease (survivorship and discount both shrink it), d[%d]=%v >= d[%d]=%v", k, d[k], k-1, d[k-1])
		}
	}
}

func TestNewCommFns_MAndNAreCumulativeFromTheEnd(t *testing.T) {
	q := []float64{0.01, 0.02, 0.03}
	i := []float64{0.05, 0.05, 0.05}
	f, err := NewCommFns(q, i)
	if err != nil {
		t.Fatalf("NewCommFns: %v", err)
	}
	c, m := f.C(), f.M()
	lastIdx := len(c) - 1
	if math.Abs(m[lastIdx]-c[lastIdx]) > 1e-12 {
		t.Errorf("expected M at the last duration to equal C there, got %v vs %v", m[lastIdx], c[lastIdx])
	}
	if math.Abs(m[0]-(c[0]+c[1]+c[2])) > 1e-12 {
		t.Errorf("expected M[0] to equal the sum of all C, got %v vs %v", m[0], c[0]+c[1]+c[2])
	}
}

func TestNewULCommFns_RejectsMismatchedLengths(t *testing.T) {
	_, err := NewULCommFns([]float64{0.01}, []float64{0.03, 0.03}, []float64{0.02}, DBOptionA)
	if err == nil {
		t.Fatal("expected error for mismatched qc/ic/ig lengths")
	}
}

func TestNSPFromCommFns_LevelDeathBenefitRatio(t *testing.T) {
	qc := []float64{0.01, 0.02, 0.03, 0.04}
	ic := []float64{0.05, 0.05, 0.05, 0.05}
	ig := []float64{0.03, 0.03, 0.03, 0.03}
	f, err := NewULCommFns(qc, ic, ig, DBOptionA)
	if err != nil {
		t.Fatalf("NewULCommFns: %v", err)
	}
	nsp, err := NSPFromCommFns(f, 0)
	if err != nil {
		t.Fatalf("NSPFromCommFns: %v", err)
	}
	if nsp <= 0 || nsp >= 1 {
		t.Errorf("expected an NSP per unit of death benefit in (0,1), got %v", nsp)
	}
}

func TestNSPFromCommFns_RejectsOutOfRangeDuration(t *testing.T) {
	f, err := NewULCommFns([]float64{0.01}, []float64{0.05}, []float64{0.03}, DBOptionA)
	if err != nil {
		t.Fatalf("NewULCommFns: %v", err)
	}
	if _, err := NSPFromCommFns(f, 5); err == nil {
		t.Fatal("expected error for an out-of-range duration")
	}
}
