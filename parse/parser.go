// Package parse assembles LegalRecords from documents by running the
// decoder, fragment extractor and cleaner in sequence.
package parse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/leis"
	"github.com/fwojciec/leis/charmap"
	"github.com/fwojciec/leis/html"
	"github.com/fwojciec/leis/regexp"
)

// Ensure Parser implements leis.Parser at compile time.
var _ leis.Parser = (*Parser)(nil)

// Parser turns one document into a LegalRecord.
// It keeps no state between calls, so a single Parser may serve many
// goroutines as long as its collaborators are stateless too.
type Parser struct {
	Decoder   leis.Decoder
	Extractor leis.FragmentExtractor
	Cleaner   leis.Cleaner
}

// NewParser returns a Parser wired with the Windows-1252 decoder, the
// template extractor and the token-walking cleaner.
func NewParser() *Parser {
	return &Parser{
		Decoder:   charmap.NewDecoder(),
		Extractor: regexp.NewExtractor(),
		Cleaner:   html.NewCleaner(),
	}
}

// ParseFile opens path and parses it. The path doubles as the source
// identifier carried by extraction failures.
func (p *Parser) ParseFile(path, category string) (*leis.LegalRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return p.Parse(f, path, category)
}

// Parse reads a document from r. The first failure aborts the parse;
// no partial record is ever returned.
func (p *Parser) Parse(r io.Reader, source, category string) (*leis.LegalRecord, error) {
	text, err := p.Decoder.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}

	fragments, err := p.Extractor.Extract(text, source)
	var missing *leis.MissingFieldError
	if err != nil && (!errors.As(err, &missing) || fragments == nil) {
		return nil, err
	}

	rec := &leis.LegalRecord{
		Category:     category,
		DocumentLink: fragments.DocumentLink,
	}

	// Fields are settled in order. A fragment made only of markup or
	// whitespace counts as missing, and an extraction failure is reported
	// once the fields before it have been checked.
	for _, f := range []struct {
		field    leis.Field
		fragment string
		dst      *string
	}{
		{leis.FieldTitle, fragments.Title, &rec.Title},
		{leis.FieldSummary, fragments.Summary, &rec.Summary},
		{leis.FieldBody, fragments.Body, &rec.Body},
	} {
		if missing != nil && missing.Field == f.field {
			return nil, err
		}
		*f.dst = p.Cleaner.Clean(f.fragment)
		if strings.TrimSpace(*f.dst) == "" {
			return nil, &leis.MissingFieldError{Field: f.field, Source: source}
		}
	}

	return rec, nil
}
