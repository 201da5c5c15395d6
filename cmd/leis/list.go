package main

import (
	"fmt"

	"github.com/fwojciec/leis"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := leis.EntryFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leis.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'leis import' to add some.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", e.ID, e.Category, e.Title)
	}

	return nil
}

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	counts, err := deps.Entries.FindCategories(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leis.ErrorMessage(err))
		return err
	}

	if len(counts) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'leis import' to add some.")
		return nil
	}

	for _, cc := range counts {
		fmt.Fprintf(deps.Stdout, "%s  %d\n", cc.Category, cc.Count)
	}
	return nil
}
