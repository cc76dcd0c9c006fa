package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"reconviewer/internal/domain"
)

const (
	pdfLeftMargin = 12.0
	pdfRowHeight  = 6.0

	// A section never starts in the bottom strip of a page; it begins on a
	// fresh page instead so a heading is not orphaned above its rows.
	pdfSectionBreakY = 240.0
)

// ToPDF renders the result as a paginated PDF document.
//
// Sections are emitted in fixed numbered order, each gated by its config
// flag. When cfg.OnlySelectedItems is set, the two unmatched sections are
// restricted to the given positional selections and their titles carry the
// filtered marker; an unmatched section whose row list ends up empty is
// omitted entirely. Matches are never selection-filtered. Every page gets
// a footer with the report name, "Page X of N" and the export date.
func ToPDF(result *domain.ReconciliationResult, companyName string, cfg domain.PDFExportConfig, selectedBank, selectedLedger map[int]struct{}, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(reportTitle, false)
	// Pin the embedded creation date so repeated calls with the same inputs
	// produce identical bytes.
	pdf.SetCreationDate(now)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(pdfLeftMargin, 14, pdfLeftMargin)
	pdf.SetAutoPageBreak(true, 22)
	pdf.AliasNbPages("")

	footerName := reportTitle
	if companyName != "" {
		footerName = companyName + " - " + reportTitle
	}
	exportDate := now.Format("2006-01-02")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-16)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("%s | Page %d of {nb} | %s", footerName, pdf.PageNo(), exportDate), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	if companyName != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, companyName, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	if cfg.IncludeSummary {
		writePDFSummary(pdf, result.Summary)
	}
	if cfg.IncludeMatches {
		writePDFMatches(pdf, result.MatchedTransactions)
	}
	if cfg.IncludeUnmatchedBank {
		rows := selectedRows(result.UnmatchedBankTransactions, selectedBank, cfg.OnlySelectedItems)
		writePDFUnmatched(pdf, sectionUnmatchedBankName, rows, cfg.OnlySelectedItems)
	}
	if cfg.IncludeUnmatchedLedger {
		rows := selectedRows(result.UnmatchedLedgerEntries, selectedLedger, cfg.OnlySelectedItems)
		writePDFUnmatched(pdf, sectionUnmatchedLedgerName, rows, cfg.OnlySelectedItems)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF document: %w", err)
	}
	return buf.Bytes(), nil
}

func startPDFSection(pdf *gofpdf.Fpdf, title string) {
	if pdf.GetY() > pdfSectionBreakY {
		pdf.AddPage()
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writePDFSummary(pdf *gofpdf.Fpdf, s domain.Summary) {
	startPDFSection(pdf, sectionSummaryTitle)
	pdf.SetFont("Helvetica", "", 10)

	lines := [][2]string{
		{"As at date", s.AsAtDate},
		{"Bank closing balance", domain.FormatCurrency(s.BankBalance)},
		{"Ledger closing balance", domain.FormatCurrency(s.LedgerBalance)},
		{"Matched transactions", fmt.Sprintf("%d (%s)", s.MatchedCount, domain.FormatCurrency(s.MatchedTotal))},
		{"Outstanding bank transactions", fmt.Sprintf("%d (%s)", s.UnmatchedBankCount, domain.FormatCurrency(s.UnmatchedBankTotal))},
		{"Outstanding ledger entries", fmt.Sprintf("%d (%s)", s.UnmatchedLedgerCount, domain.FormatCurrency(s.UnmatchedLedgerTotal))},
	}
	for _, line := range lines {
		pdf.CellFormat(70, pdfRowHeight, line[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, pdfRowHeight, line[1], "", 1, "L", false, 0, "")
	}
}

func writePDFMatches(pdf *gofpdf.Fpdf, pairs []domain.MatchedPair) {
	startPDFSection(pdf, sectionTitle(sectionMatchesName, len(pairs), false))

	pdf.SetFont("Helvetica", "B", 9)
	widths := []float64{24, 48, 22, 24, 48, 22}
	headers := []string{"Bank Date", "Bank Description", "Amount", "Ledger Date", "Ledger Description", "Amount"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], pdfRowHeight, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(pdfRowHeight)

	pdf.SetFont("Helvetica", "", 9)
	for _, pair := range pairs {
		cells := []string{
			pair.BankTransaction.Date,
			pair.BankTransaction.Description,
			domain.FormatCurrency(pair.BankTransaction.Amount),
			pair.LedgerTransaction.Date,
			pair.LedgerTransaction.Description,
			domain.FormatCurrency(pair.LedgerTransaction.Amount),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], pdfRowHeight, c, "", 0, "L", false, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}
}

func writePDFUnmatched(pdf *gofpdf.Fpdf, name string, rows []domain.Transaction, filtered bool) {
	// An empty filtered section is omitted, not rendered as a placeholder.
	if len(rows) == 0 {
		return
	}
	startPDFSection(pdf, sectionTitle(name, len(rows), filtered))

	pdf.SetFont("Helvetica", "B", 9)
	widths := []float64{28, 96, 30, 24}
	headers := []string{"Date", "Description", "Amount", "Type"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], pdfRowHeight, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(pdfRowHeight)

	pdf.SetFont("Helvetica", "", 9)
	for _, tx := range rows {
		cells := []string{tx.Date, tx.Description, domain.FormatCurrency(tx.Amount), tx.Type.String()}
		for i, c := range cells {
			pdf.CellFormat(widths[i], pdfRowHeight, c, "", 0, "L", false, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}
}
