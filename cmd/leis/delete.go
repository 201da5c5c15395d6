package main

import (
	"fmt"

	"github.com/fwojciec/leis"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if (c.ID == "") == (c.Category == "") {
		fmt.Fprintln(deps.Stderr, "error: give either a record ID or --category")
		return leis.Errorf(leis.EINVALID, "give either a record ID or --category")
	}

	if c.Category != "" {
		if err := deps.Entries.DeleteEntriesByCategory(deps.Ctx, c.Category); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", leis.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted category %q\n", c.Category)
		return nil
	}

	if err := deps.Entries.DeleteEntry(deps.Ctx, c.ID); err != nil {
		if leis.ErrorCode(err) == leis.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'leis list' to see stored records.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", leis.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %q\n", c.ID)
	return nil
}
