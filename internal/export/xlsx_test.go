package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"reconviewer/internal/domain"
)

func TestToXLSX_FullExport(t *testing.T) {
	got, err := ToXLSX(pdfTestResult(), "Acme Corp", domain.FullExportConfig(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(got))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Matched")
	assert.Contains(t, sheets, "Unmatched Bank")
	// The unmatched ledger collection is empty, so its sheet is omitted.
	assert.NotContains(t, sheets, "Unmatched Ledger")

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Bank Reconciliation Report", title)

	matchedTotal, err := f.GetCellValue("Summary", "C8")
	require.NoError(t, err)
	assert.Equal(t, "$3500.00", matchedTotal)

	firstUnmatched, err := f.GetCellValue("Unmatched Bank", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Fee", firstUnmatched)
}

func TestToXLSX_SelectionFiltered(t *testing.T) {
	cfg := domain.PDFExportConfig{
		IncludeUnmatchedBank: true,
		OnlySelectedItems:    true,
	}

	got, err := ToXLSX(pdfTestResult(), "", cfg, map[int]struct{}{1: {}}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(got))
	require.NoError(t, err)
	defer f.Close()

	desc, err := f.GetCellValue("Unmatched Bank", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Wire", desc)

	third, err := f.GetCellValue("Unmatched Bank", "A3")
	require.NoError(t, err)
	assert.Empty(t, third, "only the selected row is exported")
}

func TestToXLSX_EmptyResult(t *testing.T) {
	result := &domain.ReconciliationResult{
		Summary: domain.Summary{
			BankBalance:   decimal.Zero,
			LedgerBalance: decimal.Zero,
		},
	}

	got, err := ToXLSX(result, "", domain.FullExportConfig(), nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
