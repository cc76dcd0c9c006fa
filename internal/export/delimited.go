package export

import (
	"strconv"
	"strings"
	"time"

	"reconviewer/internal/domain"
)

// ToDelimitedText renders the full result as a delimited text report.
//
// Row order is deterministic: an optional company-name line, the title
// line, a generation-timestamp line, a blank line, then the "Summary"
// section with its fixed three-row table, followed by the detail sections.
// Every field is wrapped in double quotes with internal quotes doubled.
// This export has no concept of selection or filtering; it always covers
// the entire result.
func ToDelimitedText(result *domain.ReconciliationResult, companyName string, now time.Time) string {
	var b strings.Builder

	if companyName != "" {
		writeRow(&b, companyName)
	}
	writeRow(&b, reportTitle)
	writeRow(&b, "Generated: "+now.Format("2006-01-02 15:04:05"))
	b.WriteString("\n")

	s := result.Summary
	writeRow(&b, "Summary")
	writeRow(&b, "Category", "Count", "Total Amount")
	writeRow(&b, "Matched Transactions", strconv.Itoa(s.MatchedCount), domain.FormatCurrency(s.MatchedTotal))
	writeRow(&b, "Outstanding Bank Transactions", strconv.Itoa(s.UnmatchedBankCount), domain.FormatCurrency(s.UnmatchedBankTotal))
	writeRow(&b, "Outstanding Ledger Entries", strconv.Itoa(s.UnmatchedLedgerCount), domain.FormatCurrency(s.UnmatchedLedgerTotal))

	if len(result.MatchedTransactions) > 0 {
		b.WriteString("\n")
		writeRow(&b, "Matched Transactions")
		writeRow(&b, "Bank Date", "Bank Description", "Bank Amount", "Ledger Date", "Ledger Description", "Ledger Amount")
		for _, pair := range result.MatchedTransactions {
			writeRow(&b,
				pair.BankTransaction.Date,
				pair.BankTransaction.Description,
				domain.FormatCurrency(pair.BankTransaction.Amount),
				pair.LedgerTransaction.Date,
				pair.LedgerTransaction.Description,
				domain.FormatCurrency(pair.LedgerTransaction.Amount),
			)
		}
	}

	writeTransactionSection(&b, "Unmatched Bank Transactions", result.UnmatchedBankTransactions)
	writeTransactionSection(&b, "Unmatched Ledger Entries", result.UnmatchedLedgerEntries)

	return b.String()
}

func writeTransactionSection(b *strings.Builder, name string, txs []domain.Transaction) {
	if len(txs) == 0 {
		return
	}
	b.WriteString("\n")
	writeRow(b, name)
	writeRow(b, "Date", "Description", "Amount", "Type")
	for _, tx := range txs {
		writeRow(b, tx.Date, tx.Description, domain.FormatCurrency(tx.Amount), tx.Type.String())
	}
}

// writeRow emits one delimited row with every field quoted.
//
// encoding/csv is deliberately not used here: it quotes fields only when
// necessary, while this artifact's contract requires every field wrapped in
// double quotes with embedded quotes doubled.
func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(quote(f))
	}
	b.WriteString("\n")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
