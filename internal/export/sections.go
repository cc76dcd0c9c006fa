// Package export builds the reconciliation artifacts: a delimited text
// report, a paginated PDF document and a spreadsheet workbook. All three
// are pure functions of (result, company name, configuration, selection
// snapshots); timestamps appear only in metadata lines and are passed in
// by the caller.
package export

import (
	"fmt"

	"reconviewer/internal/domain"
)

// Fixed document section titles. Numbering never shifts when a section is
// omitted, so the artifact self-documents which sections are missing.
const (
	sectionSummaryTitle        = "1. Executive Summary"
	sectionMatchesName         = "2. Verified Matches"
	sectionUnmatchedBankName   = "3. Unmatched Bank Items"
	sectionUnmatchedLedgerName = "4. Unmatched Ledger Entries"
	reportTitle                = "Bank Reconciliation Report"
	filteredMarker             = " [Filtered]"
)

// sectionTitle renders a section heading with its row count and, when the
// rows were restricted by selection, an explicit filtered marker.
func sectionTitle(name string, count int, filtered bool) string {
	title := fmt.Sprintf("%s (%d)", name, count)
	if filtered {
		title += filteredMarker
	}
	return title
}

// selectedRows restricts an unmatched collection to the selected positional
// indices when onlySelected is set, preserving collection order. Selection
// is positional over the full collection, not over any filtered view.
func selectedRows(txs []domain.Transaction, selected map[int]struct{}, onlySelected bool) []domain.Transaction {
	if !onlySelected {
		return txs
	}
	rows := make([]domain.Transaction, 0, len(selected))
	for i, tx := range txs {
		if _, ok := selected[i]; ok {
			rows = append(rows, tx)
		}
	}
	return rows
}
