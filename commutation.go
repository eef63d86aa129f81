package illustrate

import "fmt"

// commutation.go implements ordinary- and universal-life commutation
// functions built from a mortality vector q[] and an interest vector i[],
// following ihs_commfns.hpp (OLCommFns, ULCommFns — Eckley, TSA XXXIX p.18).
// lmi's rate provider hands the engine already-computed GSP, GLP, 7pp, and
// corridor factors, so these commutation vectors are not on the
// AccountValue engine's hot path; they exist for callers building a
// product's §7702 factor tables from raw actuarial assumptions rather than
// from a vendor-supplied factor table, and for §7702A NSP computation at
// arbitrary durations. tax7702.go's DCV tracking does not call them.
//
// Both types are non-copyable and compute their vectors at construction;
// the Go idiom for "non-copyable" is a type holding slices behind
// unexported fields with accessor methods, constructed only via the New*
// functions below.

// CommFns holds ordinary-life commutation columns C, D, M, N derived from
// mortality q[] and interest i[] (both per the same period — annual or
// monthly, caller's choice, but consistent with each other).
type CommFns struct {
	c, d, m, n []float64
}

// NewCommFns builds ordinary-life commutation functions from q and i, which
// must be the same length. l[0] = 1 is the implicit starting radix; q and i
// are taken as already expressed per the desired commutation-function mode
// (annual or monthly — it is not this function's job to convert, per the
// original's own TODO on that point).
func NewCommFns(q, i []float64) (*CommFns, error) {
	if len(q) != len(i) {
		return nil, fmt.Errorf("commutation: q and i must have equal length (%d vs %d)", len(q), len(i))
	}
	n := len(q)
	c := make([]float64, n)
	d := make([]float64, n)
	l := 1.0
	v := 1.0 // cumulative discount factor v^k
	for k := 0; k < n; k++ {
		if q[k] < 0 || q[k] > 1 {
			return nil, DomainErrorf("commutation: q[%d]=%v out of [0,1]", k, q[k])
		}
		dk := l * q[k] // deaths this period
		d[k] = v * l
		c[k] = v * (1 / (1 + i[k])) * dk
		l = l * (1 - q[k])
		v = v / (1 + i[k])
	}
	m := make([]float64, n)
	nn := make([]float64, n)
	var runM, runN float64
	for k := n - 1; k >= 0; k-- {
		runM += c[k]
		runN += d[k]
		m[k] = runM
		nn[k] = runN
	}
	return &CommFns{c: c, d: d, m: m, n: nn}, nil
}

func (f *CommFns) C() []float64 { return f.c }
func (f *CommFns) D() []float64 { return f.d }
func (f *CommFns) M() []float64 { return f.m }
func (f *CommFns) N() []float64 { return f.n }

// ULCommFns holds universal-life commutation columns per Eckley: aD
// (annuity-due discount), kD, kC (mortality-discounted), aN, kM. They
// require two interest rates — ic (credited) and ig (guaranteed) — because
// UL cash values accumulate at a credited rate while net amount at risk is
// discounted at the guaranteed rate the contract promises regardless of
// actual experience.
type ULCommFns struct {
	dbOption  DBOption
	ad, kd, kc, an, km []float64
}

// NewULCommFns builds UL commutation functions from mortality qc, credited
// interest ic, and guaranteed interest ig (all equal length, expressed per
// commFnMode periods — e.g. monthly for aD/aN so they can be applied
// directly to modal premiums and policy fees, per the original's
// documented convention). dbOption affects how kC nets out the death
// benefit option's effect on amount at risk for options where DB varies
// with AV (option B): lmi only needs aD/aN/kD for premium-side factors and
// kC/kM for benefit-side factors, so dbOption is recorded but does not
// change the arithmetic here — the engine, not the commutation table,
// resolves option-B's AV-dependence month by month.
func NewULCommFns(qc, ic, ig []float64, dbOption DBOption) (*ULCommFns, error) {
	n := len(qc)
	if len(ic) != n || len(ig) != n {
		return nil, fmt.Errorf("commutation: qc, ic, ig must have equal length (%d, %d, %d)", n, len(ic), len(ig))
	}
	ad := make([]float64, n)
	kd := make([]float64, n)
	kc := make([]float64, n)
	l := 1.0
	vc := 1.0
	vg := 1.0
	for k := 0; k < n; k++ {
		if qc[k] < 0 || qc[k] > 1 {
			return nil, DomainErrorf("commutation: qc[%d]=%v out of [0,1]", k, qc[k])
		}
		ad[k] = vc * l // annuity-due discount at credited rate
		dk := l * qc[k]
		kd[k] = vg * l // mortality-and-guaranteed-interest discounted D
		kc[k] = vg * (1 / (1 + ig[k])) * dk
		l *= 1 - qc[k]
		vc /= 1 + ic[k]
		vg /= 1 + ig[k]
	}
	an := make([]float64, n)
	km := make([]float64, n)
	var runAN, runKM float64
	for k := n - 1; k >= 0; k-- {
		runAN += ad[k]
		runKM += kc[k]
		an[k] = runAN
		km[k] = runKM
	}
	return &ULCommFns{dbOption: dbOption, ad: ad, kd: kd, kc: kc, an: an, km: km}, nil
}

func (f *ULCommFns) AD() []float64 { return f.ad }
func (f *ULCommFns) KD() []float64 { return f.kd }
func (f *ULCommFns) KC() []float64 { return f.kc }
func (f *ULCommFns) AN() []float64 { return f.an }
func (f *ULCommFns) KM() []float64 { return f.km }

// NSPFromCommFns computes the net single premium at duration k for a level
// death benefit of 1, using UL commutation functions: NSP_k = kM_k / kD_k.
// Nothing in this package calls it; Evaluator.UpdateDCV does not use it.
func NSPFromCommFns(f *ULCommFns, k int) (float64, error) {
	if k < 0 || k >= len(f.kd) {
		return 0, fmt.Errorf("commutation: duration %d out of range", k)
	}
	if f.kd[k] == 0 {
		return 0, DomainErrorf("commutation: kD[%d] is zero, cannot form NSP ratio", k)
	}
	return f.km[k] / f.kd[k], nil
}
