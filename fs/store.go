package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/leis"
	"gopkg.in/yaml.v3"
)

// Ensure Store implements leis.RecordWriter at compile time.
var _ leis.RecordWriter = (*Store)(nil)

// Store writes records as Markdown files with YAML frontmatter, with
// atomic update semantics. Records are saved to a temporary directory,
// then moved into place on Close.
type Store struct {
	baseDir string
	name    string
	saved   int
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp/<category>/ and moved to
// baseDir/name on Close.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// WriteRecord saves rec under its category, named after the source file.
// A numeric suffix is added when two sources share a name.
func (s *Store) WriteRecord(ctx context.Context, src leis.Source, rec *leis.LegalRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	content, err := FormatRecord(src, rec)
	if err != nil {
		return err
	}

	dir := filepath.Join(s.tempDir(), categoryDir(rec.Category))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(src.Path), filepath.Ext(src.Path))
	fullPath := filepath.Join(dir, base+".md")
	for i := 2; fileExists(fullPath); i++ {
		fullPath = filepath.Join(dir, fmt.Sprintf("%s-%d.md", base, i))
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return err
	}
	s.saved++
	return nil
}

// Close commits the saved records, replacing any previous output.
// When nothing was saved the previous output is left untouched.
func (s *Store) Close() error {
	if s.saved == 0 {
		return s.Abort()
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved records.
func (s *Store) Abort() error {
	s.saved = 0
	return os.RemoveAll(s.tempDir())
}

type frontmatter struct {
	Title        string `yaml:"title"`
	Category     string `yaml:"category"`
	DocumentLink string `yaml:"document_link,omitempty"`
	Source       string `yaml:"source"`
}

// FormatRecord formats a record with YAML frontmatter followed by the
// summary and body.
func FormatRecord(src leis.Source, rec *leis.LegalRecord) ([]byte, error) {
	fm := frontmatter{
		Title:    rec.Title,
		Category: rec.Category,
		Source:   src.Path,
	}
	if rec.DocumentLink != nil {
		fm.DocumentLink = *rec.DocumentLink
	}

	meta, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("encoding frontmatter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(rec.Summary)
	b.WriteString("\n\n")
	b.WriteString(rec.Body)
	b.WriteString("\n")
	return b.Bytes(), nil
}

// categoryDir keeps a category usable as a single path element.
func categoryDir(category string) string {
	category = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, category)
	if category == "" || category == "." || category == ".." {
		return "_"
	}
	return category
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
