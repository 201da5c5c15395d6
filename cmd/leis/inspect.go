package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/leis"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	text, err := deps.Decoder.Decode(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	report := deps.Inspector.Inspect(text)

	fmt.Fprintf(deps.Stdout, "heading:        %s (%d h2)\n", yesNo(report.Heading), report.Headings)
	if !report.Heading && report.Headings > 0 {
		fmt.Fprintln(deps.Stdout, "                every h2 spans more than one line")
	}
	fmt.Fprintf(deps.Stdout, "summary start:  %s\n", yesNo(report.SummaryStart))
	fmt.Fprintf(deps.Stdout, "summary end:    %s\n", yesNo(report.SummaryEnd))
	fmt.Fprintf(deps.Stdout, "body start:     %s\n", yesNo(report.BodyStart))
	fmt.Fprintf(deps.Stdout, "body end:       %s\n", yesNo(report.BodyEnd))
	fmt.Fprintf(deps.Stdout, "download link:  %s\n", yesNo(report.Download))

	missing := report.Missing()
	if len(missing) == 0 {
		fmt.Fprintln(deps.Stdout, "\nAll mandatory fields present.")
		return nil
	}

	names := make([]string, len(missing))
	for i, field := range missing {
		names[i] = string(field)
	}
	fmt.Fprintf(deps.Stdout, "\nMissing: %s\n", strings.Join(names, ", "))
	return leis.Errorf(leis.EINVALID, "page %s does not match the template", c.File)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
