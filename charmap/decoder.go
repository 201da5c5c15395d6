// Package charmap decodes legacy single-byte encoded documents using
// golang.org/x/text character maps.
package charmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/leis"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Ensure Decoder implements leis.Decoder at compile time.
var _ leis.Decoder = (*Decoder)(nil)

// Decoder transcodes a single-byte encoding to UTF-8.
type Decoder struct {
	cm *charmap.Charmap
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithCharmap selects the source encoding.
// Defaults to Windows-1252 if not specified.
func WithCharmap(cm *charmap.Charmap) Option {
	return func(d *Decoder) {
		d.cm = cm
	}
}

// NewDecoder creates a new Decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{cm: charmap.Windows1252}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads r to the end and returns its contents as UTF-8.
// Every byte maps to exactly one code point, so decoding itself cannot fail;
// anything that is not valid UTF-8 afterwards is replaced with U+FFFD.
func (d *Decoder) Decode(r io.Reader) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, d.cm.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}
