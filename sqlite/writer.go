package sqlite

import (
	"context"

	"github.com/fwojciec/leis"
)

var _ leis.RecordWriter = (*RecordWriter)(nil)

// RecordWriter stores each record as an Entry.
type RecordWriter struct {
	Entries leis.EntryService
}

// NewRecordWriter returns a RecordWriter backed by entries.
func NewRecordWriter(entries leis.EntryService) *RecordWriter {
	return &RecordWriter{Entries: entries}
}

// WriteRecord creates an entry for rec.
func (w *RecordWriter) WriteRecord(ctx context.Context, src leis.Source, rec *leis.LegalRecord) error {
	return w.Entries.CreateEntry(ctx, &leis.Entry{
		SourcePath:  src.Path,
		LegalRecord: *rec,
	})
}

// Close is a no-op; every write is committed individually.
func (w *RecordWriter) Close() error { return nil }
