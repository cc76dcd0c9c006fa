package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"reconviewer/internal/domain"
	"reconviewer/internal/sanitize"
)

// ErrReconciliationFailed wraps every failure of a reconciliation attempt.
// An external-call failure is fatal to the attempt: no partial result is
// ever produced or shown.
var ErrReconciliationFailed = errors.New("reconciliation failed")

// ReconciliationUseCase orchestrates one reconciliation attempt: it invokes
// the classification service exactly once (no retries, no batching) and
// sanitizes whatever comes back.
type ReconciliationUseCase struct {
	classifier Classifier
	logger     *zap.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(classifier Classifier, logger *zap.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{classifier: classifier, logger: logger}
}

// Reconcile submits the two documents to the classification service and
// returns the sanitized canonical result. The raw response is never handed
// to callers; malformed fields inside an otherwise-successful response are
// absorbed by the sanitizer rather than escalated.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, bankDoc, ledgerDoc domain.Document, asAtDate string, mode domain.Mode) (*domain.ReconciliationResult, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: unknown processing mode %q", ErrReconciliationFailed, mode)
	}

	raw, err := uc.classifier.Classify(ctx, bankDoc, ledgerDoc, asAtDate, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReconciliationFailed, err)
	}

	result := sanitize.Sanitize(raw)
	uc.logger.Info("reconciliation sanitized",
		zap.String("asAtDate", result.Summary.AsAtDate),
		zap.Int("matched", result.Summary.MatchedCount),
		zap.Int("unmatchedBank", result.Summary.UnmatchedBankCount),
		zap.Int("unmatchedLedger", result.Summary.UnmatchedLedgerCount),
	)
	return result, nil
}
