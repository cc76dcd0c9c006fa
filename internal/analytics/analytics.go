// Package analytics derives dashboard metrics from a sanitized
// reconciliation result. Everything here is a pure function of the result:
// no overlay state, no recomputation of the summary's counts and totals,
// which the sanitizer owns as the single source of truth.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"reconviewer/internal/domain"
)

// DefaultOutlierCount is the number of outliers returned when the caller
// does not ask for a specific count.
const DefaultOutlierCount = 5

// varianceTolerance absorbs floating-point and rounding noise in the
// pass-through balances. It is not a materiality threshold.
var varianceTolerance = decimal.New(1, -2) // 0.01

// OutlierSource identifies which unmatched collection an outlier came from.
type OutlierSource string

const (
	OutlierSourceBank   OutlierSource = "bank"
	OutlierSourceLedger OutlierSource = "ledger"
)

// Outlier is one unmatched item ranked by amount.
type Outlier struct {
	Transaction domain.Transaction
	Source      OutlierSource
}

// TopOutliers returns the n largest unmatched items across both unmatched
// collections, sorted by amount descending. Ties preserve input order
// (bank items before ledger items, each in collection order). n <= 0 asks
// for the default count; fewer than n unmatched items returns all of them.
func TopOutliers(result *domain.ReconciliationResult, n int) []Outlier {
	if n <= 0 {
		n = DefaultOutlierCount
	}

	outliers := make([]Outlier, 0, len(result.UnmatchedBankTransactions)+len(result.UnmatchedLedgerEntries))
	for _, tx := range result.UnmatchedBankTransactions {
		outliers = append(outliers, Outlier{Transaction: tx, Source: OutlierSourceBank})
	}
	for _, tx := range result.UnmatchedLedgerEntries {
		outliers = append(outliers, Outlier{Transaction: tx, Source: OutlierSourceLedger})
	}

	sort.SliceStable(outliers, func(i, j int) bool {
		return outliers[i].Transaction.Amount.GreaterThan(outliers[j].Transaction.Amount)
	})

	if len(outliers) > n {
		outliers = outliers[:n]
	}
	return outliers
}

// VarianceStatus classifies the balance variance.
type VarianceStatus string

const (
	VarianceBalanced     VarianceStatus = "balanced"
	VarianceOutOfBalance VarianceStatus = "out of balance"
)

// Variance is the difference between the bank and ledger closing balances.
type Variance struct {
	Amount decimal.Decimal
	Status VarianceStatus
}

// CheckVariance computes bankBalance - ledgerBalance and classifies it as
// balanced when its magnitude is below the fixed tolerance.
func CheckVariance(result *domain.ReconciliationResult) Variance {
	diff := result.Summary.BankBalance.Sub(result.Summary.LedgerBalance)
	status := VarianceOutOfBalance
	if diff.Abs().LessThan(varianceTolerance) {
		status = VarianceBalanced
	}
	return Variance{Amount: diff, Status: status}
}
