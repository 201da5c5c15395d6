package leis

import (
	"context"
	"io"
)

// Field names a fragment of the page template.
type Field string

// Field constants, in the order the assembler checks them.
const (
	FieldTitle        Field = "title"
	FieldSummary      Field = "summary"
	FieldBody         Field = "body"
	FieldDocumentLink Field = "document_link"
)

// LegalRecord is the structured form of one legal-act page.
// Title, Summary and Body are plain text. DocumentLink is the raw href of
// the attached document and is nil when the page has none.
type LegalRecord struct {
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Summary      string  `json:"summary"`
	Body         string  `json:"body"`
	DocumentLink *string `json:"document_link,omitempty"`
}

// Validate returns an error if a mandatory field is empty.
func (r *LegalRecord) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.Summary == "" {
		return Errorf(EINVALID, "record summary required")
	}
	if r.Body == "" {
		return Errorf(EINVALID, "record body required")
	}
	return nil
}

// Fragments holds the raw markup matched for each template field.
type Fragments struct {
	Title        string
	Summary      string
	Body         string
	DocumentLink *string
}

// Decoder converts a legacy single-byte encoded stream to UTF-8 text.
type Decoder interface {
	// Decode reads r to the end and returns the decoded text.
	// Read failures are returned as-is, wrapped with context.
	Decode(r io.Reader) (string, error)
}

// FragmentExtractor locates the template fragments in decoded page text.
type FragmentExtractor interface {
	// Extract returns the matched fragments. source identifies the document
	// in the MissingFieldError returned for the first absent mandatory field;
	// the fragments returned with it may hold the fields checked before.
	Extract(text, source string) (*Fragments, error)
}

// Cleaner reduces an HTML fragment to plain text.
type Cleaner interface {
	Clean(fragment string) string
}

// Parser turns one document into a LegalRecord.
type Parser interface {
	// Parse decodes, extracts and cleans the document read from r.
	Parse(r io.Reader, source, category string) (*LegalRecord, error)

	// ParseFile opens path and parses it.
	ParseFile(path, category string) (*LegalRecord, error)
}

// Source is one input document and the category it belongs to.
type Source struct {
	Path     string
	Category string
}

// SourceDiscoverer finds input documents under a root.
type SourceDiscoverer interface {
	Discover(ctx context.Context, root string) ([]Source, error)
}

// RecordWriter persists records.
// Close flushes or commits whatever the writer buffered.
type RecordWriter interface {
	WriteRecord(ctx context.Context, src Source, rec *LegalRecord) error
	Close() error
}

// RecordFilter detects records whose content was already seen.
type RecordFilter interface {
	// Seen reports whether rec was seen before and remembers it otherwise.
	Seen(rec *LegalRecord) bool
}
