package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/leis"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Logger is nil unless --debug is set.
	Logger *slog.Logger

	Decoder    leis.Decoder
	Parser     leis.Parser
	Inspector  leis.TemplateInspector
	Discoverer leis.SourceDiscoverer
	Entries    leis.EntryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log operations to stderr"`

	Parse      ParseCmd      `cmd:"" help:"Parse a single page and print the record"`
	Inspect    InspectCmd    `cmd:"" help:"Report which template markers a page has"`
	Import     ImportCmd     `cmd:"" help:"Parse a directory of pages into the database"`
	Convert    ConvertCmd    `cmd:"" help:"Parse a directory of pages into Markdown, JSONL or XML"`
	List       ListCmd       `cmd:"" help:"List stored records"`
	Show       ShowCmd       `cmd:"" help:"Show a stored record"`
	Categories CategoriesCmd `cmd:"" help:"List categories with record counts"`
	Delete     DeleteCmd     `cmd:"" help:"Delete a stored record or a whole category"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File     string `arg:"" help:"Page to parse"`
	Category string `short:"c" help:"Record category (default: parent directory name)"`
	JSON     bool   `name:"json" help:"Print the record as JSON"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File string `arg:"" help:"Page to inspect"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Dir         string `arg:"" help:"Directory of pages, one subdirectory per category"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent parse limit"`
	Dedupe      bool   `help:"Skip records whose text was already imported in this run"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Dir         string `arg:"" help:"Directory of pages, one subdirectory per category"`
	Format      string `short:"f" enum:"md,jsonl,xml" default:"jsonl" help:"Output format (md, jsonl, xml)"`
	Output      string `short:"o" required:"" help:"Output path (directory for md, file for jsonl and xml, - for stdout)"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent parse limit"`
	Dedupe      bool   `help:"Skip records whose text was already written"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `help:"Only list records of this category"`
	Limit    int    `short:"n" help:"Maximum number of records"`
	Offset   int    `help:"Number of records to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Record ID"`
	JSON bool   `name:"json" help:"Print the record as JSON"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID       string `arg:"" optional:"" help:"Record ID"`
	Category string `help:"Delete every record of this category"`
}
