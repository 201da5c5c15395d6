package mock

import (
	"io"

	"github.com/fwojciec/leis"
)

var (
	_ leis.Decoder           = (*Decoder)(nil)
	_ leis.FragmentExtractor = (*FragmentExtractor)(nil)
	_ leis.Cleaner           = (*Cleaner)(nil)
	_ leis.Parser            = (*Parser)(nil)
)

// Decoder is a mock implementation of leis.Decoder.
type Decoder struct {
	DecodeFn func(r io.Reader) (string, error)
}

func (d *Decoder) Decode(r io.Reader) (string, error) {
	return d.DecodeFn(r)
}

// FragmentExtractor is a mock implementation of leis.FragmentExtractor.
type FragmentExtractor struct {
	ExtractFn func(text, source string) (*leis.Fragments, error)
}

func (e *FragmentExtractor) Extract(text, source string) (*leis.Fragments, error) {
	return e.ExtractFn(text, source)
}

// Cleaner is a mock implementation of leis.Cleaner.
type Cleaner struct {
	CleanFn func(fragment string) string
}

func (c *Cleaner) Clean(fragment string) string {
	return c.CleanFn(fragment)
}

// Parser is a mock implementation of leis.Parser.
type Parser struct {
	ParseFn     func(r io.Reader, source, category string) (*leis.LegalRecord, error)
	ParseFileFn func(path, category string) (*leis.LegalRecord, error)
}

func (p *Parser) Parse(r io.Reader, source, category string) (*leis.LegalRecord, error) {
	return p.ParseFn(r, source, category)
}

func (p *Parser) ParseFile(path, category string) (*leis.LegalRecord, error) {
	return p.ParseFileFn(path, category)
}
