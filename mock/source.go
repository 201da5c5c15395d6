package mock

import (
	"context"

	"github.com/fwojciec/leis"
)

var (
	_ leis.SourceDiscoverer  = (*SourceDiscoverer)(nil)
	_ leis.RecordWriter      = (*RecordWriter)(nil)
	_ leis.TemplateInspector = (*TemplateInspector)(nil)
	_ leis.RecordFilter      = (*RecordFilter)(nil)
)

// SourceDiscoverer is a mock implementation of leis.SourceDiscoverer.
type SourceDiscoverer struct {
	DiscoverFn func(ctx context.Context, root string) ([]leis.Source, error)
}

func (d *SourceDiscoverer) Discover(ctx context.Context, root string) ([]leis.Source, error) {
	return d.DiscoverFn(ctx, root)
}

// RecordWriter is a mock implementation of leis.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, src leis.Source, rec *leis.LegalRecord) error
	CloseFn       func() error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, src leis.Source, rec *leis.LegalRecord) error {
	return w.WriteRecordFn(ctx, src, rec)
}

func (w *RecordWriter) Close() error {
	return w.CloseFn()
}

// TemplateInspector is a mock implementation of leis.TemplateInspector.
type TemplateInspector struct {
	InspectFn func(html string) leis.TemplateReport
}

func (i *TemplateInspector) Inspect(html string) leis.TemplateReport {
	return i.InspectFn(html)
}

// RecordFilter is a mock implementation of leis.RecordFilter.
type RecordFilter struct {
	SeenFn func(rec *leis.LegalRecord) bool
}

func (f *RecordFilter) Seen(rec *leis.LegalRecord) bool {
	return f.SeenFn(rec)
}
