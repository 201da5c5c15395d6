package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/leis"
	"github.com/fwojciec/leis/batch"
	"github.com/fwojciec/leis/bloom"
	leisslog "github.com/fwojciec/leis/slog"
	"github.com/fwojciec/leis/sqlite"
)

// Sizing of the dedupe filter used by import and convert.
const (
	dedupeCapacity = 100_000
	dedupeFPRate   = 1e-6
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	var writer leis.RecordWriter = sqlite.NewRecordWriter(deps.Entries)
	if deps.Logger != nil {
		writer = leisslog.NewLoggingRecordWriter(writer, deps.Logger)
	}

	result, err := runBatch(deps, deps.Stdout, c.Dir, writer, c.Concurrency, c.Dedupe)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Imported %d records (%d duplicates, %d failed)\n",
		result.Written, result.Duplicates, result.Failed())
	return nil
}

// runBatch parses dir into writer. Progress goes to status, skipped pages
// to deps.Stderr.
func runBatch(deps *Dependencies, status io.Writer, dir string, writer leis.RecordWriter, concurrency int, dedupe bool) (*batch.Result, error) {
	im := &batch.Importer{
		Discoverer:  deps.Discoverer,
		Parser:      deps.Parser,
		Writer:      writer,
		Concurrency: concurrency,
	}
	if dedupe {
		im.Filter = bloom.NewFilter(dedupeCapacity, dedupeFPRate)
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(status, "  Found %d pages\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := im.Import(deps.Ctx, dir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leis.ErrorMessage(err))
		return nil, err
	}
	return result, nil
}
