// Package jsonl writes records as JSON Lines.
package jsonl

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/fwojciec/leis"
)

// Ensure Writer implements leis.RecordWriter at compile time.
var _ leis.RecordWriter = (*Writer)(nil)

// Writer encodes one JSON object per record, each on its own line.
// It is safe for concurrent use.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	enc *json.Encoder
}

// NewWriter creates a new Writer on w. If w is an io.Closer it is closed
// by Close.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{w: w, enc: enc}
}

// WriteRecord encodes rec followed by a newline.
func (w *Writer) WriteRecord(ctx context.Context, src leis.Source, rec *leis.LegalRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(rec)
}

// Close closes the underlying writer when it supports closing.
func (w *Writer) Close() error {
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
