package leis

import "strings"

// FormatRecord formats a record for display.
// The title heads the output, followed by the category, summary, body and
// document link, separated by blank lines. Empty parts are omitted.
func FormatRecord(rec *LegalRecord) string {
	parts := []string{"# " + rec.Title}
	if rec.Category != "" {
		parts = append(parts, "Category: "+rec.Category)
	}
	if rec.Summary != "" {
		parts = append(parts, rec.Summary)
	}
	if rec.Body != "" {
		parts = append(parts, rec.Body)
	}
	if rec.DocumentLink != nil {
		parts = append(parts, "Document: "+*rec.DocumentLink)
	}
	return strings.Join(parts, "\n\n")
}
