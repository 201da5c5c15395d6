package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/leis"
	"github.com/fwojciec/leis/etree"
	"github.com/fwojciec/leis/fs"
	"github.com/fwojciec/leis/jsonl"
	leisslog "github.com/fwojciec/leis/slog"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	writer, abort, err := c.openWriter(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if deps.Logger != nil {
		writer = leisslog.NewLoggingRecordWriter(writer, deps.Logger)
	}

	result, err := runBatch(deps, deps.Stderr, c.Dir, writer, c.Concurrency, c.Dedupe)
	if err != nil {
		_ = abort()
		return err
	}

	if err := writer.Close(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", c.Output, err)
		return err
	}

	fmt.Fprintf(deps.Stderr, "  Wrote %d records to %s (%d duplicates, %d failed)\n",
		result.Written, c.Output, result.Duplicates, result.Failed())
	return nil
}

// openWriter returns the writer for the selected format and a function
// that discards partial output.
func (c *ConvertCmd) openWriter(deps *Dependencies) (leis.RecordWriter, func() error, error) {
	if c.Format == "md" {
		if c.Output == "-" {
			return nil, nil, leis.Errorf(leis.EINVALID, "md output needs a directory")
		}
		store := fs.NewStore(filepath.Dir(c.Output), filepath.Base(c.Output))
		return store, store.Abort, nil
	}

	// Hide Close so the writer does not close stdout.
	var w io.Writer = struct{ io.Writer }{deps.Stdout}
	abort := func() error { return nil }
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return nil, nil, err
		}
		w = f
		abort = func() error {
			f.Close()
			return os.Remove(c.Output)
		}
	}

	if c.Format == "xml" {
		return etree.NewWriter(w), abort, nil
	}
	return jsonl.NewWriter(w), abort, nil
}
