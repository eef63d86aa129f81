package illustrate

import "testing"

func TestMode_PeriodsPerYear(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected int
	}{
		{ModeAnnual, 1},
		{ModeSemiannual, 2},
		{ModeQuarterly, 4},
		{ModeMonthly, 12},
	}
	for _, tc := range tests {
		if got := tc.mode.PeriodsPerYear(); got != tc.expected {
			t.Errorf("%v.PeriodsPerYear() = %d, want %d", tc.mode, got, tc.expected)
		}
	}
}

func TestOutlay_SolveSetPremium_SplitsProRata(t *testing.T) {
	o, err := NewOutlay(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o.EmployeePremium[2] = 6000
	o.EmployerPremium[2] = 4000
	o.GrossPremium[2] = 10000

	if err := o.SolveSetPremium(20000, 2, 3); err != nil {
		t.Fatalf("SolveSetPremium: %v", err)
	}
	if o.GrossPremium[2] != 20000 {
		t.Errorf("expected gross 20000, got %v", o.GrossPremium[2])
	}
	if o.EmployeePremium[2] != 12000 {
		t.Errorf("expected employee 12000 (60%%), got %v", o.EmployeePremium[2])
	}
	if o.EmployerPremium[2] != 8000 {
		t.Errorf("expected employer 8000 (40%%), got %v", o.EmployerPremium[2])
	}
	if o.Strategy[2] != StrategyExplicit {
		t.Errorf("expected strategy reset to explicit, got %v", o.Strategy[2])
	}
}

func TestOutlay_SolveSetPremium_DefaultsToEmployeeWhenNoPriorSplit(t *testing.T) {
	o, err := NewOutlay(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := o.SolveSetPremium(5000, 0, 5); err != nil {
		t.Fatalf("SolveSetPremium: %v", err)
	}
	for y := 0; y < 5; y++ {
		if o.EmployeePremium[y] != 5000 {
			t.Errorf("year %d: expected employee 5000, got %v", y, o.EmployeePremium[y])
		}
		if o.EmployerPremium[y] != 0 {
			t.Errorf("year %d: expected employer 0, got %v", y, o.EmployerPremium[y])
		}
	}
}

func TestOutlay_ResolvePremium_OverridingPaymentsTakesPrecedence(t *testing.T) {
	o, err := NewOutlay(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o.GrossPremium[1] = 1000
	o.OverridingPayments = []float64{0, 2500, 0, 0, 0}

	got, err := o.ResolvePremium(1, StrategyContext{})
	if err != nil {
		t.Fatalf("ResolvePremium: %v", err)
	}
	if got != 2500 {
		t.Errorf("expected overriding payment 2500, got %v", got)
	}
}

func TestOutlay_ResolvePremium_StrategyDispatch(t *testing.T) {
	ctx := StrategyContext{
		TargetPremium:   100,
		MinimumPremium:  200,
		SevenPayPremium: 300,
		GLP:             400,
		GSP:             500,
		CorridorPremium: 600,
		Salary:          10000,
	}
	tests := []struct {
		strategy PremiumStrategy
		expected float64
	}{
		{StrategyTarget, 100},
		{StrategyMinimum, 200},
		{StrategyMEP, 300},
		{StrategyGLP, 400},
		{StrategyGSP, 500},
		{StrategyCorridor, 600},
	}
	for _, tc := range tests {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			o, err := NewOutlay(1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			o.Strategy[0] = tc.strategy
			got, err := o.ResolvePremium(0, ctx)
			if err != nil {
				t.Fatalf("ResolvePremium: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestOutlay_ResolvePremium_SalaryPct(t *testing.T) {
	o, err := NewOutlay(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o.Strategy[0] = StrategySalaryPct
	o.SalaryPct[0] = 0.1
	got, err := o.ResolvePremium(0, StrategyContext{Salary: 50000})
	if err != nil {
		t.Fatalf("ResolvePremium: %v", err)
	}
	if got != 5000 {
		t.Errorf("expected 5000 (10%% of 50000), got %v", got)
	}
}
