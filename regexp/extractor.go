// Package regexp locates the fragments of the legal-act page template with
// anchored regular expressions.
//
// The patterns encode literal assumptions about one site's markup:
//
//	title     <h2>TITLE</h2>
//	summary   </h2><br>SUMMARY<br><br><img
//	body      ><br><br><br>BODY<p><img
//	link      btn-default" href="LINK" title
//
// Captures are greedy and "." does not match a line break, so when an end
// anchor repeats on the same line the capture runs to its last occurrence.
package regexp

import (
	"regexp"

	"github.com/fwojciec/leis"
)

// Compiled once, read-only afterwards.
var (
	titlePattern        = regexp.MustCompile(`<h2>(?P<title>.*)</h2>`)
	summaryPattern      = regexp.MustCompile(`</h2><br>(?P<summary>.*)<br><br><img`)
	bodyPattern         = regexp.MustCompile(`><br><br><br>(?P<body>.*)<p><img`)
	documentLinkPattern = regexp.MustCompile(`btn-default" href="(?P<link>.*)" title`)
)

// Ensure Extractor implements leis.FragmentExtractor at compile time.
var _ leis.FragmentExtractor = (*Extractor)(nil)

// Extractor matches the template patterns against decoded page text.
// It holds no state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs every pattern over the whole text. Mandatory fields are
// checked in order title, summary, body; the first one missing is returned
// as a *leis.MissingFieldError together with the fragments matched before
// it. A missing document link is not an error.
func (e *Extractor) Extract(text, source string) (*leis.Fragments, error) {
	fragments := &leis.Fragments{}

	for _, f := range []struct {
		field   leis.Field
		pattern *regexp.Regexp
		dst     *string
	}{
		{leis.FieldTitle, titlePattern, &fragments.Title},
		{leis.FieldSummary, summaryPattern, &fragments.Summary},
		{leis.FieldBody, bodyPattern, &fragments.Body},
	} {
		m, ok := capture(f.pattern, text)
		if !ok {
			return fragments, &leis.MissingFieldError{Field: f.field, Source: source}
		}
		*f.dst = m
	}

	if link, ok := capture(documentLinkPattern, text); ok {
		fragments.DocumentLink = &link
	}
	return fragments, nil
}

// capture returns the first submatch of re in text.
func capture(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
