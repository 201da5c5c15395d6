package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/leis"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	category := c.Category
	if category == "" {
		category = parentDirName(c.File)
	}

	rec, err := deps.Parser.ParseFile(c.File, category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if c.JSON {
		return writeJSON(deps, rec)
	}

	fmt.Fprintln(deps.Stdout, leis.FormatRecord(rec))
	return nil
}

func parentDirName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	return filepath.Base(filepath.Dir(abs))
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
