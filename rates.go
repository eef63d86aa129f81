package illustrate

import (
	_ "embed"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// rates.go is the rate-provider boundary. The real data source
// (mortality/interest/load tables) is out of scope and consumed through a
// named interface; this file defines that interface plus a small
// YAML-fixture implementation for tests and the CLI demo, following
// config.go's convention of a //go:embed default and yaml.v3 decoding
// rather than a bespoke file format.

// LoadSchedule bundles the non-duration-indexed load parameters a rate
// provider returns: policy fees, premium-tax and DAC-tax rates, and
// sales-load tiers.
type LoadSchedule struct {
	MonthlyPolicyFee  float64 `yaml:"monthly_policy_fee"`
	AnnualPolicyFee   float64 `yaml:"annual_policy_fee"`
	PremiumTaxRate    float64 `yaml:"premium_tax_rate"`
	DACTaxLoadRate    float64 `yaml:"dac_tax_load_rate"`
	TargetLoadRate    float64 `yaml:"target_load_rate"`
	ExcessLoadRate    float64 `yaml:"excess_load_rate"`
	SalesLoadRate     float64 `yaml:"sales_load_rate"`
	AVLoadRate        float64 `yaml:"av_load_rate"` // monthly, applied to AV
}

// RateProvider is lmi's external data boundary. Every vector it returns is
// indexed 0..yearsToMaturity-1 (or 0..11 for monthly tables expanded per
// year by the caller); calls are pure and must not block on I/O once
// constructed — whatever backs a RateProvider loads all its tables at
// construction time.
type RateProvider interface {
	MonthlyCOI(basis Basis, issueAge, yearsToMaturity int) ([]float64, error)
	InterestFloor(basis Basis, issueAge, yearsToMaturity int) ([]float64, error)
	SeparateAccountGross(basis Basis, issueAge, yearsToMaturity int) ([]float64, error)
	Corridor(issueAge, yearsToMaturity int) ([]float64, error)
	SevenPayPremium(issueAge, yearsToMaturity int) ([]float64, error)
	GLPFactor(issueAge, yearsToMaturity int) ([]float64, error)
	GSPFactor(issueAge, yearsToMaturity int) ([]float64, error)
	Loads() (LoadSchedule, error)
	SurrenderCharge(duration int) (float64, error)
	RiderCharge(rider RiderKind, issueAge, yearsToMaturity int) ([]float64, error)
}

// RiderKind enumerates the supplemental-benefit riders a rate provider can price.
type RiderKind int

const (
	RiderADB RiderKind = iota
	RiderWaiverOfPremium
	RiderChild
	RiderSpouse
)

//go:embed testdata/default_product.yaml
var defaultProductYAML []byte

// ProductFixture is the YAML shape of a deterministic, in-memory
// RateProvider: flat by-duration vectors plus a load schedule and a
// surrender-charge schedule, decoded the way Config is decoded from
// default-config.yaml.
type ProductFixture struct {
	Name               string             `yaml:"name"`
	GuaranteedCOI      []float64          `yaml:"guaranteed_coi"`
	CurrentCOI         []float64          `yaml:"current_coi"`
	GuaranteedInterest []float64          `yaml:"guaranteed_interest"`
	CurrentInterest    []float64          `yaml:"current_interest"`
	SepAcctGross       []float64          `yaml:"sep_acct_gross"`
	Corridor           []float64          `yaml:"corridor"`
	SevenPP            []float64          `yaml:"seven_pay_premium"`
	GLP                []float64          `yaml:"glp_factor"`
	GSP                []float64          `yaml:"gsp_factor"`
	SurrenderCharge    []float64          `yaml:"surrender_charge"`
	Loads              LoadSchedule       `yaml:"loads"`
	RiderCharges       map[string][]float64 `yaml:"rider_charges"`
}

// LoadDefaultProductFixture decodes the embedded baseline product fixture.
func LoadDefaultProductFixture() (ProductFixture, error) {
	return LoadProductFixture(defaultProductYAML)
}

// LoadProductFixture decodes a YAML-encoded ProductFixture.
func LoadProductFixture(data []byte) (ProductFixture, error) {
	var f ProductFixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return ProductFixture{}, fmt.Errorf("rates: decoding product fixture: %w", err)
	}
	return f, nil
}

// FixtureRateProvider implements RateProvider over a ProductFixture,
// extending/truncating its by-duration vectors to the requested
// yearsToMaturity by repeating the final entry — the standard convention
// for actuarial tables indexed to an ultimate age.
type FixtureRateProvider struct {
	Fixture ProductFixture
}

func NewFixtureRateProvider(f ProductFixture) *FixtureRateProvider {
	return &FixtureRateProvider{Fixture: f}
}

func extend(v []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i < len(v) {
			out[i] = v[i]
		} else if len(v) > 0 {
			out[i] = v[len(v)-1]
		}
	}
	return out
}

func (p *FixtureRateProvider) MonthlyCOI(basis Basis, issueAge, n int) ([]float64, error) {
	annual := p.Fixture.CurrentCOI
	if basis == BasisGuaranteed {
		annual = p.Fixture.GuaranteedCOI
	}
	if len(annual) == 0 {
		return nil, fmt.Errorf("rates: product %q has no COI table", p.Fixture.Name)
	}
	yearly := extend(annual, n)
	monthly := make([]float64, n)
	for i, q := range yearly {
		if q < 0 || math.IsNaN(q) {
			return nil, DomainErrorf("invalid COI rate %v at duration %d", q, i)
		}
		// monthly q from annual q, via a single compounding identity
		// rather than ad hoc q/12 division.
		j, err := IUpperNOverN(q, 12)
		if err != nil {
			return nil, err
		}
		monthly[i] = j
	}
	return monthly, nil
}

func (p *FixtureRateProvider) InterestFloor(basis Basis, issueAge, n int) ([]float64, error) {
	annual := p.Fixture.CurrentInterest
	if basis == BasisGuaranteed {
		annual = p.Fixture.GuaranteedInterest
	}
	if len(annual) == 0 {
		return nil, fmt.Errorf("rates: product %q has no interest table", p.Fixture.Name)
	}
	return extend(annual, n), nil
}

func (p *FixtureRateProvider) SeparateAccountGross(basis Basis, issueAge, n int) ([]float64, error) {
	if len(p.Fixture.SepAcctGross) == 0 {
		return make([]float64, n), nil
	}
	return extend(p.Fixture.SepAcctGross, n), nil
}

func (p *FixtureRateProvider) Corridor(issueAge, n int) ([]float64, error) {
	if len(p.Fixture.Corridor) == 0 {
		return nil, fmt.Errorf("rates: product %q has no corridor table", p.Fixture.Name)
	}
	return extend(p.Fixture.Corridor, n), nil
}

func (p *FixtureRateProvider) SevenPayPremium(issueAge, n int) ([]float64, error) {
	if len(p.Fixture.SevenPP) == 0 {
		return nil, fmt.Errorf("rates: product %q has no 7pp table", p.Fixture.Name)
	}
	return extend(p.Fixture.SevenPP, n), nil
}

func (p *FixtureRateProvider) GLPFactor(issueAge, n int) ([]float64, error) {
	return extend(p.Fixture.GLP, n), nil
}

func (p *FixtureRateProvider) GSPFactor(issueAge, n int) ([]float64, error) {
	return extend(p.Fixture.GSP, n), nil
}

func (p *FixtureRateProvider) Loads() (LoadSchedule, error) {
	return p.Fixture.Loads, nil
}

func (p *FixtureRateProvider) SurrenderCharge(duration int) (float64, error) {
	sc := p.Fixture.SurrenderCharge
	if len(sc) == 0 {
		return 0, nil
	}
	if duration < 0 {
		duration = 0
	}
	if duration >= len(sc) {
		return sc[len(sc)-1], nil
	}
	return sc[duration], nil
}

func (p *FixtureRateProvider) RiderCharge(rider RiderKind, issueAge, n int) ([]float64, error) {
	name := riderKey(rider)
	v, ok := p.Fixture.RiderCharges[name]
	if !ok {
		return make([]float64, n), nil
	}
	return extend(v, n), nil
}

func riderKey(r RiderKind) string {
	switch r {
	case RiderADB:
		return "adb"
	case RiderWaiverOfPremium:
		return "waiver_of_premium"
	case RiderChild:
		return "child"
	case RiderSpouse:
		return "spouse"
	default:
		return "unknown"
	}
}
