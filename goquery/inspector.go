// Package goquery inspects decoded pages for the markers of the legal-act
// template. It is a diagnostic aid; extraction itself never relies on it.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/leis"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Inspector implements leis.TemplateInspector at compile time.
var _ leis.TemplateInspector = (*Inspector)(nil)

// Inspector reports which template markers a page contains.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses the page and checks each marker against the DOM.
// Markers are checked structurally: "</h2><br>" means an h2 element whose
// next sibling node is a br element, with no text in between.
func (i *Inspector) Inspect(page string) leis.TemplateReport {
	var report leis.TemplateReport

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return report
	}

	headings := doc.Find("h2")
	report.Headings = headings.Length()

	// The title is only extracted from a heading written on one line.
	headings.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		inner, err := sel.Html()
		if err == nil && !strings.Contains(inner, "\n") {
			report.Heading = true
			return false
		}
		return true
	})

	headings.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if isElement(sel.Get(0).NextSibling, atom.Br) {
			report.SummaryStart = true
			return false
		}
		return true
	})

	doc.Find("br").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		n := sel.Get(0)
		if !report.SummaryEnd && isElement(n.NextSibling, atom.Br) && isElement(n.NextSibling.NextSibling, atom.Img) {
			report.SummaryEnd = true
		}
		if !report.BodyStart && isElement(n.NextSibling, atom.Br) && isElement(n.NextSibling.NextSibling, atom.Br) &&
			(n.PrevSibling == nil || n.PrevSibling.Type == html.ElementNode) {
			report.BodyStart = true
		}
		return !(report.SummaryEnd && report.BodyStart)
	})

	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if isElement(sel.Get(0).FirstChild, atom.Img) {
			report.BodyEnd = true
			return false
		}
		return true
	})

	report.Download = doc.Find(".btn-default[href][title]").Length() > 0

	return report
}

// isElement reports whether n is an element node of the given tag.
func isElement(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}
