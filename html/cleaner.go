// Package html reduces template fragments to plain text by walking their
// tokens with golang.org/x/net/html.
package html

import (
	"strings"

	"github.com/fwojciec/leis"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements leis.Cleaner at compile time.
var _ leis.Cleaner = (*Cleaner)(nil)

// Cleaner rewrites line-break tags as "\n" and drops every other tag,
// keeping the text between tags verbatim.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean walks fragment in document order and returns its plain text.
// Character references are left as written in the source.
func (c *Cleaner) Clean(fragment string) string {
	var b strings.Builder
	b.Grow(len(fragment))

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// A strings.Reader only ends with io.EOF.
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		case html.StartTagToken, html.SelfClosingTagToken:
			// Keep tokenizing inside raw-text elements such as noscript,
			// textarea, title and plaintext so their markup is cleaned too.
			z.NextIsNotRawText()
			if name, _ := z.TagName(); isLineBreak(name) {
				b.WriteByte('\n')
			}
		}
	}
}

func isLineBreak(name []byte) bool {
	return string(name) == "br"
}
