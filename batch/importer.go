// Package batch parses a tree of legal-act pages and hands the resulting
// records to a writer.
package batch

import (
	"context"
	"fmt"

	"github.com/fwojciec/leis"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents parsed at once when
// Importer.Concurrency is not set.
const DefaultConcurrency = 4

// Importer orchestrates discovery, parsing and writing of documents.
type Importer struct {
	Discoverer  leis.SourceDiscoverer
	Parser      leis.Parser
	Writer      leis.RecordWriter
	Concurrency int

	// Filter, if set, drops records whose content was already written.
	Filter leis.RecordFilter
}

// Result holds the outcome of an import.
type Result struct {
	Discovered int
	Written    int
	Duplicates int
	Failures   []Failure
}

// Failed returns the number of documents that could not be parsed.
func (r *Result) Failed() int {
	return len(r.Failures)
}

// Failure records why a document was skipped.
type Failure struct {
	Source leis.Source
	Err    error
}

// ProgressEvent reports progress during an import.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressParsed
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

type parseResult struct {
	position int
	source   leis.Source
	record   *leis.LegalRecord
	err      error
}

// Import parses every document under root and writes the records in
// discovery order. Documents that fail to parse are reported in
// Result.Failures and do not stop the import. A writer error does.
// The writer is not closed.
func (im *Importer) Import(ctx context.Context, root string, progress ProgressFunc) (*Result, error) {
	sources, err := im.Discoverer.Discover(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("discovering sources: %w", err)
	}

	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(sources)
	notify := func(ev ProgressEvent) {
		if progress != nil {
			ev.Total = total
			progress(ev)
		}
	}
	notify(ProgressEvent{Type: ProgressStarted})

	resultCh := make(chan parseResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, src := range sources {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					resultCh <- parseResult{position: i, source: src, err: err}
					return nil
				}
				rec, err := im.Parser.ParseFile(src.Path, src.Category)
				resultCh <- parseResult{position: i, source: src, record: rec, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]parseResult, total)
	var completed int
	for r := range resultCh {
		completed++
		results[r.position] = r

		if r.err != nil {
			notify(ProgressEvent{Type: ProgressFailed, Completed: completed, Path: r.source.Path, Error: r.err})
		} else {
			notify(ProgressEvent{Type: ProgressParsed, Completed: completed, Path: r.source.Path})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Discovered: total}
	for _, r := range results {
		if r.err != nil {
			result.Failures = append(result.Failures, Failure{Source: r.source, Err: r.err})
			continue
		}

		if im.Filter != nil && im.Filter.Seen(r.record) {
			result.Duplicates++
			continue
		}

		if err := im.Writer.WriteRecord(ctx, r.source, r.record); err != nil {
			return result, fmt.Errorf("writing %s: %w", r.source.Path, err)
		}
		result.Written++
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total})

	return result, nil
}
