package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	date := time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name    string
		company string
		ext     string
		want    string
	}{
		{
			name:    "no company name",
			company: "",
			ext:     "csv",
			want:    "reconciliation-report-2024-03-31.csv",
		},
		{
			name:    "company name is slugified",
			company: "Acme Corp",
			ext:     "pdf",
			want:    "acme-corp-reconciliation-report-2024-03-31.pdf",
		},
		{
			name:    "punctuation collapses to single dashes",
			company: "  Smith & Sons, Ltd. ",
			ext:     "xlsx",
			want:    "smith-sons-ltd-reconciliation-report-2024-03-31.xlsx",
		},
		{
			name:    "all-symbol name behaves like no name",
			company: "!!!",
			ext:     "csv",
			want:    "reconciliation-report-2024-03-31.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.company, date, tt.ext))
		})
	}
}
