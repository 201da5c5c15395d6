package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/leis"
	"github.com/fwojciec/leis/charmap"
	"github.com/fwojciec/leis/fs"
	"github.com/fwojciec/leis/goquery"
	"github.com/fwojciec/leis/parse"
	leisslog "github.com/fwojciec/leis/slog"
	"github.com/fwojciec/leis/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	EntryService leis.EntryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("leis"),
		kong.Description("Extract structured records from municipal legal-act pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leis --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Decoder = charmap.NewDecoder()
	deps.Parser = parse.NewParser()
	deps.Inspector = goquery.NewInspector()
	deps.Discoverer = fs.NewDiscoverer()

	if cli.Debug {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.Parser = leisslog.NewLoggingParser(deps.Parser, deps.Logger)
		deps.Discoverer = leisslog.NewLoggingDiscoverer(deps.Discoverer, deps.Logger)
	}

	if needsDB(cmd) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LEIS_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.EntryService = sqlite.NewEntryService(m.DB)
		deps.Entries = m.EntryService
	}

	return kongCtx.Run(deps)
}

func needsDB(cmd string) bool {
	switch cmd {
	case "import", "list", "show", "categories", "delete":
		return true
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("LEIS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "leis.db"
	}
	dir := filepath.Join(home, ".leis")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "leis.db")
}
