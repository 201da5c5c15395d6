package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/leis"
	"github.com/fwojciec/leis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where RecordWriter is expected
	var _ leis.RecordWriter = &mock.RecordWriter{}
}

func TestRecordWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteRecordFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *leis.LegalRecord
		var calledSrc leis.Source
		w := &mock.RecordWriter{
			WriteRecordFn: func(_ context.Context, src leis.Source, rec *leis.LegalRecord) error {
				calledSrc = src
				calledWith = rec
				return nil
			},
		}

		src := leis.Source{Path: "leis/decretos/d-1.html", Category: "decretos"}
		rec := &leis.LegalRecord{
			Title:    "DECRETO Nº 1",
			Category: "decretos",
			Summary:  "Resumo",
			Body:     "Texto",
		}

		err := w.WriteRecord(context.Background(), src, rec)

		require.NoError(t, err)
		assert.Equal(t, rec, calledWith)
		assert.Equal(t, src, calledSrc)
	})
}
