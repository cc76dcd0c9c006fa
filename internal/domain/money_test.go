package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"reconviewer/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "whole number gains decimals", amount: "3500", want: "$3500.00"},
		{name: "fraction is fixed to two places", amount: "12.5", want: "$12.50"},
		{name: "zero", amount: "0", want: "$0.00"},
		{name: "negative balance keeps its sign", amount: "-120.5", want: "$-120.50"},
		{name: "sub-cent value rounds", amount: "0.005", want: "$0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.FormatCurrency(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, domain.TransactionTypeCredit.IsValid())
	assert.True(t, domain.TransactionTypeDebit.IsValid())
	assert.False(t, domain.TransactionType("transfer").IsValid())
}

func TestMode_IsValid(t *testing.T) {
	assert.True(t, domain.ModeFast.IsValid())
	assert.True(t, domain.ModePrecise.IsValid())
	assert.False(t, domain.Mode("").IsValid())
}
