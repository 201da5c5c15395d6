package main

import (
	"fmt"

	"github.com/fwojciec/leis"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	entry, err := deps.Entries.FindEntryByID(deps.Ctx, c.ID)
	if err != nil {
		if leis.ErrorCode(err) == leis.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'leis list' to see stored records.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", leis.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		return writeJSON(deps, entry)
	}

	fmt.Fprintln(deps.Stdout, leis.FormatRecord(&entry.LegalRecord))
	fmt.Fprintf(deps.Stdout, "\nSource: %s\n", entry.SourcePath)
	return nil
}
