package illustrate

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// report.go renders a Ledger to PDF, grounded in PDFActionPlanReport
// (pdf_report.go): same page geometry constants, same title-page and
// bordered-table conventions (CellFormat with a "1" border, a dark header
// row, alternating plain rows), here drawing a basis-by-basis numeric
// ledger instead of a year-by-year cashflow narrative.

const (
	reportPageWidth    = 210.0
	reportPageHeight   = 297.0
	reportMarginLeft   = 15.0
	reportMarginRight  = 15.0
	reportMarginTop    = 15.0
	reportMarginBottom = 20.0
	reportContentWidth = reportPageWidth - reportMarginLeft - reportMarginRight
)

// PDFLedgerReport holds the state accumulated while rendering one Ledger.
type PDFLedgerReport struct {
	pdf    *fpdf.Fpdf
	ledger *Ledger
}

// RenderPDF renders a ledger's Current-basis (or first available basis)
// columns into a numeric tabular PDF and returns the resulting bytes.
func RenderPDF(ledger *Ledger) ([]byte, error) {
	basis, vl, err := primaryVariant(ledger)
	if err != nil {
		return nil, err
	}

	r := &PDFLedgerReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		ledger: ledger,
	}
	r.pdf.SetMargins(reportMarginLeft, reportMarginTop, reportMarginRight)
	r.pdf.SetAutoPageBreak(true, reportMarginBottom)

	r.addTitlePage(basis)
	r.addYearByYearTable(vl)

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func primaryVariant(ledger *Ledger) (Basis, *VariantLedger, error) {
	if ledger == nil {
		return 0, nil, fmt.Errorf("report: ledger is nil")
	}
	if vl, ok := ledger.Variants[BasisCurrent]; ok {
		return BasisCurrent, vl, nil
	}
	for b, vl := range ledger.Variants {
		return b, vl, nil
	}
	return 0, nil, fmt.Errorf("report: ledger has no variants")
}

func (r *PDFLedgerReport) addTitlePage(basis Basis) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 28)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(50)
	r.pdf.CellFormat(reportContentWidth, 15, "Illustration", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 14)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.Ln(10)
	label := fmt.Sprintf("Basis: %s", basis)
	r.pdf.CellFormat(reportContentWidth, 10, label, "", 1, "C", false, 0, "")

	if r.ledger.IsComposite {
		r.pdf.SetFont("Arial", "I", 11)
		r.pdf.Ln(15)
		r.pdf.CellFormat(reportContentWidth, 8, fmt.Sprintf("Composite of %.0f contracts", r.ledger.InForceCount), "", 1, "C", false, 0, "")
	}
}

func (r *PDFLedgerReport) addYearByYearTable(vl *VariantLedger) {
	r.pdf.AddPage()
	r.drawSectionHeader("Year-by-Year Values")

	headers := []string{"Year", "Premium", "COI", "Interest", "Account Value", "CSV", "Death Benefit"}
	widths := []float64{15, 28, 25, 25, 30, 28, 28}
	r.drawTableHeader(headers, widths)

	n := len(vl.AccountValue)
	for y := 0; y < n; y++ {
		row := []string{
			fmt.Sprintf("%d", y+1),
			formatReportMoney(valueAt(vl.GrossPremium, y)),
			formatReportMoney(valueAt(vl.COICharge, y)),
			formatReportMoney(valueAt(vl.InterestCredited, y)),
			formatReportMoney(valueAt(vl.AccountValue, y)),
			formatReportMoney(valueAt(vl.CashSurrenderVal, y)),
			formatReportMoney(valueAt(vl.DeathBenefit, y)),
		}
		r.drawTableRow(row, widths)
		if vl.Lapsed && y >= vl.LapseYear {
			break
		}
	}
}

func valueAt(v []float64, i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

func formatReportMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func (r *PDFLedgerReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(reportContentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(reportMarginLeft, r.pdf.GetY(), reportMarginLeft+reportContentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *PDFLedgerReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *PDFLedgerReport) drawTableRow(cells []string, widths []float64) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFont("Arial", "", 9)
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
