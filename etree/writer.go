// Package etree writes records as an XML document using beevik/etree.
package etree

import (
	"context"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/leis"
)

// Ensure Writer implements leis.RecordWriter at compile time.
var _ leis.RecordWriter = (*Writer)(nil)

// Writer collects records under a <records> root and writes the document
// on Close.
type Writer struct {
	w    io.Writer
	doc  *etree.Document
	root *etree.Element
}

// NewWriter creates a new Writer on w. If w is an io.Closer it is closed
// after the document has been written.
func NewWriter(w io.Writer) *Writer {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("records")
	return &Writer{w: w, doc: doc, root: root}
}

// WriteRecord appends rec as a <record> element.
//
//	<record category="..." source="...">
//	  <title>...</title>
//	  <summary>...</summary>
//	  <body>...</body>
//	  <document-link>...</document-link>
//	</record>
func (w *Writer) WriteRecord(ctx context.Context, src leis.Source, rec *leis.LegalRecord) error {
	el := w.root.CreateElement("record")
	el.CreateAttr("category", rec.Category)
	if src.Path != "" {
		el.CreateAttr("source", src.Path)
	}
	el.CreateElement("title").SetText(rec.Title)
	el.CreateElement("summary").SetText(rec.Summary)
	el.CreateElement("body").SetText(rec.Body)
	if rec.DocumentLink != nil {
		el.CreateElement("document-link").SetText(*rec.DocumentLink)
	}
	return nil
}

// Close writes the indented document.
func (w *Writer) Close() error {
	w.doc.Indent(2)
	if _, err := w.doc.WriteTo(w.w); err != nil {
		return fmt.Errorf("writing XML: %w", err)
	}
	if c, ok := w.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
