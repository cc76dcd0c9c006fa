package domain

import "github.com/shopspring/decimal"

// MatchedPair represents one proposed correspondence between a bank
// transaction and a ledger entry. The two amounts are not guaranteed to be
// equal; discrepancies are displayed as-is. A pair is immutable once
// constructed by the sanitizer.
type MatchedPair struct {
	BankTransaction   Transaction `json:"bankTransaction"`
	LedgerTransaction Transaction `json:"ledgerTransaction"`
}

// Summary provides high-level statistics of a reconciliation outcome.
//
// The five count/total fields are derived by the sanitizer from the actual
// collections, never trusted from the external service. LedgerBalance,
// BankBalance and AsAtDate are passed through from the service's response
// as best-effort extractions.
type Summary struct {
	LedgerBalance        decimal.Decimal `json:"ledgerBalance"`
	BankBalance          decimal.Decimal `json:"bankBalance"`
	AsAtDate             string          `json:"asAtDate"`
	MatchedCount         int             `json:"matchedCount"`
	UnmatchedBankCount   int             `json:"unmatchedBankCount"`
	UnmatchedLedgerCount int             `json:"unmatchedLedgerCount"`
	MatchedTotal         decimal.Decimal `json:"matchedTotal"`
	UnmatchedBankTotal   decimal.Decimal `json:"unmatchedBankTotal"`
	UnmatchedLedgerTotal decimal.Decimal `json:"unmatchedLedgerTotal"`
}

// ReconciliationResult is the canonical outcome of one reconciliation
// attempt. The three transaction collections partition the universe of
// input transactions: every bank transaction appears exactly once, either
// inside a MatchedPair or in UnmatchedBankTransactions, and likewise for
// ledger entries.
//
// The result is immutable once sanitized. Review annotations live in
// overlay maps keyed by positional index (see the review package), so the
// collections must never be reordered or compacted after construction.
type ReconciliationResult struct {
	Summary                   Summary       `json:"summary"`
	MatchedTransactions       []MatchedPair `json:"matchedTransactions"`
	UnmatchedBankTransactions []Transaction `json:"unmatchedBankTransactions"`
	UnmatchedLedgerEntries    []Transaction `json:"unmatchedLedgerEntries"`
}

// PDFExportConfig controls which sections the document export emits and
// whether unmatched sections are restricted to the current selection.
type PDFExportConfig struct {
	IncludeSummary         bool
	IncludeMatches         bool
	IncludeUnmatchedBank   bool
	IncludeUnmatchedLedger bool
	OnlySelectedItems      bool
}

// FullExportConfig returns the configuration for a complete, unfiltered
// document export.
func FullExportConfig() PDFExportConfig {
	return PDFExportConfig{
		IncludeSummary:         true,
		IncludeMatches:         true,
		IncludeUnmatchedBank:   true,
		IncludeUnmatchedLedger: true,
	}
}
