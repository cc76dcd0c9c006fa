package export

import (
	"strings"
	"time"
)

// baseFilename is the fixed base name shared by all artifacts.
const baseFilename = "reconciliation-report"

// Filename builds an artifact filename: an optional slugified company-name
// prefix, the fixed base name, the export date and the extension, e.g.
// "acme-corp-reconciliation-report-2024-03-31.pdf".
func Filename(companyName string, date time.Time, ext string) string {
	name := baseFilename
	if slug := slugify(companyName); slug != "" {
		name = slug + "-" + name
	}
	return name + "-" + date.Format("2006-01-02") + "." + ext
}

// slugify lowercases the name and collapses every run of non-alphanumeric
// characters into a single dash, trimming leading and trailing dashes.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}
