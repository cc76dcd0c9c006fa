package usecase

import (
	"context"

	"reconviewer/internal/domain"
)

// Classifier defines the interface to the external classification service.
// The usecase layer depends on this interface, not on a concrete
// implementation. The returned payload is untyped on purpose: the service's
// output shape is not a contract this system trusts, and it is sanitized
// before anything downstream touches it.
//
//go:generate mockgen -destination=mocks/mock_classifier.go -source=interface.go Classifier
type Classifier interface {
	Classify(ctx context.Context, bankDoc, ledgerDoc domain.Document, asAtDate string, mode domain.Mode) (map[string]any, error)
}
