package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/leis"
)

var (
	_ leis.RecordWriter     = (*LoggingRecordWriter)(nil)
	_ leis.SourceDiscoverer = (*LoggingDiscoverer)(nil)
)

// LoggingRecordWriter wraps a RecordWriter with debug logging.
type LoggingRecordWriter struct {
	next   leis.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next leis.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecord delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) WriteRecord(ctx context.Context, src leis.Source, rec *leis.LegalRecord) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write record",
			"source", src.Path,
			"title", rec.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecord(ctx, src, rec)
}

// Close delegates to the wrapped writer.
func (w *LoggingRecordWriter) Close() (err error) {
	defer func() {
		w.logger.Info("close writer", "err", err)
	}()
	return w.next.Close()
}

// LoggingDiscoverer wraps a SourceDiscoverer with debug logging.
type LoggingDiscoverer struct {
	next   leis.SourceDiscoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next leis.SourceDiscoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the operation.
func (d *LoggingDiscoverer) Discover(ctx context.Context, root string) (sources []leis.Source, err error) {
	defer func(begin time.Time) {
		d.logger.Info("discover",
			"root", root,
			"count", len(sources),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Discover(ctx, root)
}
