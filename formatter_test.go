package leis_test

import (
	"testing"

	"github.com/fwojciec/leis"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	t.Run("formats all parts", func(t *testing.T) {
		t.Parallel()

		link := "arquivos/lei.pdf"
		rec := &leis.LegalRecord{
			Title:        "LEI Nº 1",
			Category:     "Leis",
			Summary:      "Dispõe sobre.",
			Body:         "Art. 1º\nArt. 2º",
			DocumentLink: &link,
		}

		expected := "# LEI Nº 1\n\nCategory: Leis\n\nDispõe sobre.\n\nArt. 1º\nArt. 2º\n\nDocument: arquivos/lei.pdf"
		assert.Equal(t, expected, leis.FormatRecord(rec))
	})

	t.Run("omits empty category and missing link", func(t *testing.T) {
		t.Parallel()

		rec := &leis.LegalRecord{Title: "T", Summary: "S", Body: "B"}

		assert.Equal(t, "# T\n\nS\n\nB", leis.FormatRecord(rec))
	})
}
