package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"reconviewer/internal/domain"
)

// ToXLSX renders the result as a spreadsheet workbook, one sheet per
// section, with the same gating and selection rules as the PDF export.
func ToXLSX(result *domain.ReconciliationResult, companyName string, cfg domain.PDFExportConfig, selectedBank, selectedLedger map[int]struct{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	if cfg.IncludeSummary {
		if err := writeXLSXSummary(f, result.Summary, companyName); err != nil {
			return nil, err
		}
	}
	if cfg.IncludeMatches {
		if err := writeXLSXMatches(f, result.MatchedTransactions); err != nil {
			return nil, err
		}
	}
	if cfg.IncludeUnmatchedBank {
		rows := selectedRows(result.UnmatchedBankTransactions, selectedBank, cfg.OnlySelectedItems)
		if err := writeXLSXUnmatched(f, "Unmatched Bank", rows); err != nil {
			return nil, err
		}
	}
	if cfg.IncludeUnmatchedLedger {
		rows := selectedRows(result.UnmatchedLedgerEntries, selectedLedger, cfg.OnlySelectedItems)
		if err := writeXLSXUnmatched(f, "Unmatched Ledger", rows); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeXLSXSummary(f *excelize.File, s domain.Summary, companyName string) error {
	rows := [][]any{
		{reportTitle},
		{companyName},
		{"As at date", s.AsAtDate},
		{"Bank closing balance", domain.FormatCurrency(s.BankBalance)},
		{"Ledger closing balance", domain.FormatCurrency(s.LedgerBalance)},
		{},
		{"Category", "Count", "Total Amount"},
		{"Matched Transactions", s.MatchedCount, domain.FormatCurrency(s.MatchedTotal)},
		{"Outstanding Bank Transactions", s.UnmatchedBankCount, domain.FormatCurrency(s.UnmatchedBankTotal)},
		{"Outstanding Ledger Entries", s.UnmatchedLedgerCount, domain.FormatCurrency(s.UnmatchedLedgerTotal)},
	}
	return writeXLSXRows(f, "Summary", rows)
}

func writeXLSXMatches(f *excelize.File, pairs []domain.MatchedPair) error {
	if _, err := f.NewSheet("Matched"); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	rows := [][]any{
		{"Bank Date", "Bank Description", "Bank Amount", "Ledger Date", "Ledger Description", "Ledger Amount"},
	}
	for _, pair := range pairs {
		rows = append(rows, []any{
			pair.BankTransaction.Date,
			pair.BankTransaction.Description,
			domain.FormatCurrency(pair.BankTransaction.Amount),
			pair.LedgerTransaction.Date,
			pair.LedgerTransaction.Description,
			domain.FormatCurrency(pair.LedgerTransaction.Amount),
		})
	}
	return writeXLSXRows(f, "Matched", rows)
}

func writeXLSXUnmatched(f *excelize.File, sheet string, txs []domain.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	rows := [][]any{{"Date", "Description", "Amount", "Type"}}
	for _, tx := range txs {
		rows = append(rows, []any{tx.Date, tx.Description, domain.FormatCurrency(tx.Amount), tx.Type.String()})
	}
	return writeXLSXRows(f, sheet, rows)
}

func writeXLSXRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
