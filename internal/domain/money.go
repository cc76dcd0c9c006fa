package domain

import "github.com/shopspring/decimal"

// currencyLabel is the single fixed currency label used across the system.
const currencyLabel = "$"

// FormatCurrency renders a monetary value with the fixed currency label and
// exactly two decimal places, e.g. "$3500.00".
//
// Both export generators and the interactive display share this function so
// that an exported artifact is reproducible byte-for-byte from the same
// result, configuration and selections.
func FormatCurrency(amount decimal.Decimal) string {
	return currencyLabel + amount.StringFixed(2)
}
