package illustrate

import (
	"fmt"
	"strconv"
	"strings"
)

// sequence.go implements lmi's age/duration-keyed textual grammar,
// generalizing IncomeConfig.Tiers's pattern (config.go): a slice of
// intervals, each with a StartAge/EndAge that may be open-ended, resolved
// against a concrete age at lookup time via GetTierForAge. lmi's grammar
// additionally accepts keyword endpoints (retirement, maturity) and
// duration (policy-year) endpoints, not just age, and reports parse errors
// by accumulating them rather than failing on the first one — so a caller
// can show every mistake in a pasted sequence at once.

// DurationKind distinguishes how an interval endpoint is expressed.
type DurationKind int

const (
	DurAge        DurationKind = iota // @age
	DurDuration                       // #duration (policy year, 0-based)
	DurYear                           // bare N: policy year, 0-based (same axis as DurDuration)
	DurRetirement                     // the "retirement" keyword
	DurMaturity                       // the "maturity" keyword
)

// Endpoint is one bound of an interval, e.g. "[0", "retirement)", "@65".
type Endpoint struct {
	Kind  DurationKind
	Value int // meaningful only for DurAge/DurDuration/DurYear
}

// Interval is one clause of a parsed sequence: a value (or keyword) and an
// inclusive-begin/exclusive-end pair of endpoints,
// `{value, [begin_duration, begin_mode), [end_duration, end_mode)}`. No lmi
// product parameter is itself keyword-valued, so Value always holds a
// numeric scalar.
type Interval struct {
	Value float64
	Begin Endpoint
	End   Endpoint
}

// Sequence is a parsed, unrealized input sequence: an ordered list of
// intervals plus any diagnostics accumulated while parsing. Overlapping or
// gapped intervals are not diagnosed: Realize lets a later interval
// overwrite an earlier one and leaves years covered by none at zero.
type Sequence struct {
	Intervals   []Interval
	Diagnostics []string
}

// ParseSequence parses lmi's interval-sequence grammar, e.g.:
//
//	"10000 [0,retirement); 5000 [retirement,maturity)"
//
// Errors are accumulated into Sequence.Diagnostics rather than returned, so
// a caller can report every problem in one pass.
func ParseSequence(text string) Sequence {
	var seq Sequence
	text = strings.TrimSpace(text)
	if text == "" {
		return seq
	}
	for _, clause := range strings.Split(text, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		interval, err := parseClause(clause)
		if err != nil {
			seq.Diagnostics = append(seq.Diagnostics, err.Error())
			continue
		}
		seq.Intervals = append(seq.Intervals, interval)
	}
	return seq
}

func parseClause(clause string) (Interval, error) {
	open := strings.IndexAny(clause, "[(")
	if open < 0 {
		return Interval{}, fmt.Errorf("sequence: clause %q has no interval bracket", clause)
	}
	valueText := strings.TrimSpace(clause[:open])
	value, err := strconv.ParseFloat(valueText, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("sequence: clause %q has non-numeric value %q", clause, valueText)
	}

	bracketText := strings.TrimSpace(clause[open:])
	if len(bracketText) < 2 {
		return Interval{}, fmt.Errorf("sequence: clause %q has a malformed interval", clause)
	}
	closeIdx := strings.IndexAny(bracketText, "])")
	if closeIdx < 0 {
		return Interval{}, fmt.Errorf("sequence: clause %q is missing a closing bracket", clause)
	}
	inner := bracketText[1:closeIdx]
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("sequence: clause %q interval needs exactly two endpoints", clause)
	}
	begin, err := parseEndpoint(strings.TrimSpace(parts[0]))
	if err != nil {
		return Interval{}, fmt.Errorf("sequence: clause %q: %w", clause, err)
	}
	end, err := parseEndpoint(strings.TrimSpace(parts[1]))
	if err != nil {
		return Interval{}, fmt.Errorf("sequence: clause %q: %w", clause, err)
	}
	return Interval{Value: value, Begin: begin, End: end}, nil
}

func parseEndpoint(tok string) (Endpoint, error) {
	switch tok {
	case "retirement":
		return Endpoint{Kind: DurRetirement}, nil
	case "maturity":
		return Endpoint{Kind: DurMaturity}, nil
	}
	if strings.HasPrefix(tok, "@") {
		age, err := strconv.Atoi(strings.TrimPrefix(tok, "@"))
		if err != nil {
			return Endpoint{}, fmt.Errorf("malformed age endpoint %q", tok)
		}
		return Endpoint{Kind: DurAge, Value: age}, nil
	}
	if strings.HasPrefix(tok, "#") {
		dur, err := strconv.Atoi(strings.TrimPrefix(tok, "#"))
		if err != nil {
			return Endpoint{}, fmt.Errorf("malformed duration endpoint %q", tok)
		}
		return Endpoint{Kind: DurDuration, Value: dur}, nil
	}
	year, err := strconv.Atoi(tok)
	if err != nil {
		return Endpoint{}, fmt.Errorf("malformed endpoint %q", tok)
	}
	return Endpoint{Kind: DurYear, Value: year}, nil
}

// RealizationContext supplies the concrete values an Endpoint's keyword or
// age may refer to, so a Sequence can be realized into a per-year vector.
type RealizationContext struct {
	IssueAge         int
	RetirementAge    int
	YearsToMaturity  int
	InForceDuration  int // first projected duration, for in-force cases
}

// resolve converts one Endpoint to a 0-based policy-year duration.
func (c RealizationContext) resolve(e Endpoint) int {
	switch e.Kind {
	case DurAge:
		return e.Value - c.IssueAge
	case DurDuration, DurYear:
		return e.Value
	case DurRetirement:
		return c.RetirementAge - c.IssueAge
	case DurMaturity:
		return c.YearsToMaturity
	default:
		return c.YearsToMaturity
	}
}

// Realize converts the parsed sequence into a per-year vector of length
// YearsToMaturity, against the given context. It fails with a domain error
// if the sequence carries any accumulated diagnostics: a sequence with
// parse errors cannot be realized, only reported.
func (s Sequence) Realize(ctx RealizationContext) ([]float64, error) {
	if len(s.Diagnostics) > 0 {
		return nil, DomainErrorf("sequence: cannot realize with unresolved diagnostics: %s", strings.Join(s.Diagnostics, "; "))
	}
	n := ctx.YearsToMaturity
	if n <= 0 {
		return nil, fmt.Errorf("sequence: years-to-maturity must be positive, got %d", n)
	}
	out := make([]float64, n)
	if len(s.Intervals) == 0 {
		return out, nil
	}
	for _, iv := range s.Intervals {
		begin := c_clamp(ctx.resolve(iv.Begin), 0, n)
		end := c_clamp(ctx.resolve(iv.End), 0, n)
		for y := begin; y < end; y++ {
			out[y] = iv.Value
		}
	}
	return out, nil
}

func c_clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Canonicalize serializes a realized per-year vector back to the sequence
// grammar's canonical form: one clause per maximal run of equal values.
// Round-tripping through ParseSequence and Realize on the result must yield
// the same vector (leading/trailing zero-length runs collapse, so the
// textual form need not exactly match whatever a human originally typed).
func Canonicalize(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	var clauses []string
	runStart := 0
	for y := 1; y <= len(values); y++ {
		if y < len(values) && values[y] == values[runStart] {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%v [%d,%d)", values[runStart], runStart, y))
		runStart = y
	}
	return strings.Join(clauses, "; ")
}
