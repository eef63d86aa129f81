// Command lmi runs a single universal-life illustration from the command
// line, grounded in main.go's flag.Usage/flag.String dispatch: a small set
// of flags select the product fixture, the cell's basic parameters, and
// output mode, then one illustration runs and is printed or written as PDF.
package main

import (
	"flag"
	"fmt"
	"os"

	illustrate "lmi"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `lmi - universal life illustration engine

Runs a single-cell illustration against an embedded product fixture and
prints the Current basis's year-by-year ledger, or writes a PDF report.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}

	productFile := flag.String("product", "", "Path to a product fixture YAML file (default: embedded fixture)")
	issueAge := flag.Int("issue-age", 45, "Issue age")
	yearsToMaturity := flag.Int("years", 55, "Years to maturity (e.g. to age 100)")
	specAmt := flag.Float64("spec-amt", 500000, "Initial specified amount")
	premium := flag.Float64("premium", 10000, "Level annual premium")
	ledgerType := flag.String("ledger-type", "illustration-reg", "illustration-reg | nasd | bare-bones")
	pdfOut := flag.String("pdf", "", "Write a PDF report to this path instead of printing to stdout")
	flag.Parse()

	if err := run(*productFile, *issueAge, *yearsToMaturity, *specAmt, *premium, *ledgerType, *pdfOut); err != nil {
		fmt.Fprintln(os.Stderr, "lmi:", err)
		os.Exit(1)
	}
}

func run(productFile string, issueAge, yearsToMaturity int, specAmt, premium float64, ledgerTypeFlag, pdfOut string) error {
	fixture, err := loadFixture(productFile)
	if err != nil {
		return err
	}
	rates := illustrate.NewFixtureRateProvider(fixture)

	db, err := illustrate.NewDeathBenefit(yearsToMaturity, specAmt, illustrate.DBOptionA, 50000)
	if err != nil {
		return err
	}

	outlay, err := illustrate.NewOutlay(yearsToMaturity)
	if err != nil {
		return err
	}
	if err := outlay.SolveSetPremium(premium, 0, yearsToMaturity); err != nil {
		return err
	}

	tax := illustrate.NewEvaluator(illustrate.RegimeCVAT, illustrate.PolicyReducePremium, illustrate.RuleUnnecessaryPremium)

	mlyLoanDueRate, err := illustrate.IUpperNOverN(0.06, 12)
	if err != nil {
		return err
	}
	mlyLoanCredRate, err := illustrate.IUpperNOverN(0.04, 12)
	if err != nil {
		return err
	}

	cell := illustrate.Cell{
		IssueAge:            issueAge,
		RetirementAge:       65,
		YearsToMaturity:     yearsToMaturity,
		MaxLoanPctOfCSV:     0.9,
		MlyLoanDueRate:      mlyLoanDueRate,
		MlyLoanCredRate:     mlyLoanCredRate,
		WDSpecAmtMethod:     illustrate.WDReduceProportional,
		DeductionPreference: illustrate.DeductUnloanedFirst,
		MinSpecAmt:          50000,
		MinPremium:          0,
		RoundCOI:            illustrate.NewRounder(2, illustrate.StyleNearest),
		RoundPolicyFee:      illustrate.NewRounder(2, illustrate.StyleNearest),
		RoundInterest:       illustrate.NewRounder(2, illustrate.StyleNearest),
	}

	lt, err := parseLedgerType(ledgerTypeFlag)
	if err != nil {
		return err
	}

	inv := illustrate.InvariantLedger{
		IssueAge:        issueAge,
		YearsToMaturity: yearsToMaturity,
		ProductName:     fixture.Name,
		Regime:          tax.Regime,
	}

	in := illustrate.Input{
		Invariant:  inv,
		LedgerType: lt,
		Cell:       cell,
		DB:         db,
		Outlay:     outlay,
		Tax:        tax,
		Rates:      rates,
	}

	flags := illustrate.EmitText
	if pdfOut != "" {
		flags = illustrate.EmitPDF
	}
	result, err := illustrate.IllustrateInput(in, flags)
	if err != nil {
		return err
	}

	if pdfOut != "" {
		data, err := illustrate.RenderPDF(result.Ledger)
		if err != nil {
			return err
		}
		return os.WriteFile(pdfOut, data, 0o644)
	}

	printLedger(result.Ledger)
	return nil
}

func loadFixture(path string) (illustrate.ProductFixture, error) {
	if path == "" {
		return illustrate.LoadDefaultProductFixture()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return illustrate.ProductFixture{}, fmt.Errorf("lmi: reading product fixture: %w", err)
	}
	return illustrate.LoadProductFixture(data)
}

func parseLedgerType(s string) (illustrate.LedgerType, error) {
	switch s {
	case "illustration-reg", "":
		return illustrate.LedgerTypeIllustrationReg, nil
	case "nasd":
		return illustrate.LedgerTypeNASD, nil
	case "bare-bones":
		return illustrate.LedgerTypeBareBones, nil
	default:
		return 0, fmt.Errorf("lmi: unknown -ledger-type %q", s)
	}
}

func printLedger(ledger *illustrate.Ledger) {
	vl, ok := ledger.Variants[illustrate.BasisCurrent]
	if !ok {
		for _, v := range ledger.Variants {
			vl = v
			break
		}
	}
	fmt.Printf("%-4s %12s %10s %10s %14s %12s %14s\n",
		"Year", "Premium", "COI", "Interest", "AcctValue", "CSV", "DeathBenefit")
	for y := 0; y < len(vl.AccountValue); y++ {
		fmt.Printf("%-4d %12.2f %10.2f %10.2f %14.2f %12.2f %14.2f\n",
			y+1, vl.GrossPremium[y], vl.COICharge[y], vl.InterestCredited[y],
			vl.AccountValue[y], vl.CashSurrenderVal[y], vl.DeathBenefit[y])
		if vl.Lapsed && y >= vl.LapseYear {
			fmt.Printf("lapsed in year %d\n", vl.LapseYear+1)
			break
		}
	}
}
