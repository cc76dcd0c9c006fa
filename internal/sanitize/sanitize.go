// Package sanitize normalizes the classification service's raw response
// into the canonical reconciliation result. The service's output is treated
// as untrusted, structurally-partial input: every field may be absent or
// malformed, and all of that is neutralized here, at a single boundary,
// so that nothing downstream has to re-validate field presence.
package sanitize

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"reconviewer/internal/domain"
)

// Sanitize converts an arbitrary, possibly malformed payload into a
// ReconciliationResult. It never fails: missing collections become empty
// slices, non-numeric amounts become zero, and the summary's counts and
// totals are recomputed from the coerced collections rather than trusted
// from the payload.
func Sanitize(raw map[string]any) *domain.ReconciliationResult {
	result := &domain.ReconciliationResult{
		MatchedTransactions:       matchedPairs(raw["matchedTransactions"]),
		UnmatchedBankTransactions: transactions(raw["unmatchedBankTransactions"]),
		UnmatchedLedgerEntries:    transactions(raw["unmatchedLedgerEntries"]),
	}

	summary, _ := raw["summary"].(map[string]any)
	result.Summary = domain.Summary{
		// Balances and the as-at date are pass-through fields: best-effort
		// extraction, not independently verifiable. Balances keep their
		// sign; unlike transaction amounts they are signed quantities.
		LedgerBalance: coerceSigned(summary["ledgerBalance"]),
		BankBalance:   coerceSigned(summary["bankBalance"]),
		AsAtDate:      asString(summary["asAtDate"]),

		MatchedCount:         len(result.MatchedTransactions),
		UnmatchedBankCount:   len(result.UnmatchedBankTransactions),
		UnmatchedLedgerCount: len(result.UnmatchedLedgerEntries),

		// The bank leg is the canonical total source for matched pairs;
		// the two legs of a pair may disagree.
		MatchedTotal:         sumBankLegs(result.MatchedTransactions),
		UnmatchedBankTotal:   sumAmounts(result.UnmatchedBankTransactions),
		UnmatchedLedgerTotal: sumAmounts(result.UnmatchedLedgerEntries),
	}

	return result
}

// matchedPairs extracts matched pairs from an untyped collection value,
// preserving the order received from the service.
func matchedPairs(v any) []domain.MatchedPair {
	items, ok := v.([]any)
	pairs := make([]domain.MatchedPair, 0, len(items))
	if !ok {
		return pairs
	}
	for _, item := range items {
		entry, _ := item.(map[string]any)
		pairs = append(pairs, domain.MatchedPair{
			BankTransaction:   transaction(entry["bankTransaction"]),
			LedgerTransaction: transaction(entry["ledgerTransaction"]),
		})
	}
	return pairs
}

func transactions(v any) []domain.Transaction {
	items, ok := v.([]any)
	txs := make([]domain.Transaction, 0, len(items))
	if !ok {
		return txs
	}
	for _, item := range items {
		txs = append(txs, transaction(item))
	}
	return txs
}

func transaction(v any) domain.Transaction {
	m, _ := v.(map[string]any)
	return domain.Transaction{
		Date:        asString(m["date"]),
		Description: asString(m["description"]),
		Amount:      coerceAmount(m["amount"]),
		Type:        domain.TransactionType(asString(m["type"])),
	}
}

// coerceAmount is the single point where malformed numeric input is
// neutralized: non-numeric or missing values become zero, and the result is
// always the absolute value. Direction is carried by the transaction type,
// never by the sign of the amount.
func coerceAmount(v any) decimal.Decimal {
	return coerceSigned(v).Abs()
}

func coerceSigned(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func sumBankLegs(pairs []domain.MatchedPair) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pairs {
		total = total.Add(p.BankTransaction.Amount)
	}
	return total
}

func sumAmounts(txs []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}
