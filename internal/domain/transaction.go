package domain

import "github.com/shopspring/decimal"

// TransactionType defines the direction of the transaction (DEBIT or CREDIT).
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// String returns the string representation of TransactionType.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the transaction type is valid.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeDebit || t == TransactionTypeCredit
}

// Transaction represents a single financial movement from either source
// document. Amount is always an absolute value: direction is carried
// exclusively by Type, never by the sign of Amount.
//
// The semantics of Type depend on the transaction's origin: for a
// bank-sourced transaction, credit means funds received and debit means
// funds paid out; for a ledger-sourced entry, debit records a receipt and
// credit records a payment. The model does not encode this asymmetry
// structurally.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
}

// Document is a source document handed to the classification service:
// raw bytes plus the media type they were read as.
type Document struct {
	Name      string
	MediaType string
	Content   []byte
}

// Mode selects the classification service's processing fidelity.
type Mode string

const (
	// ModeFast trades matching fidelity for turnaround time.
	ModeFast Mode = "fast"
	// ModePrecise requests the slower, higher-fidelity pass.
	ModePrecise Mode = "precise"
)

// IsValid checks if the mode is one of the two supported values.
func (m Mode) IsValid() bool {
	return m == ModeFast || m == ModePrecise
}
