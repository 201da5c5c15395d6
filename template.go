package leis

// TemplateReport lists which markers of the page template a document has.
type TemplateReport struct {
	Heading      bool // <h2>...</h2> on a single line
	SummaryStart bool // </h2><br>
	SummaryEnd   bool // <br><br><img
	BodyStart    bool // ><br><br><br>
	BodyEnd      bool // <p><img
	Download     bool // a.btn-default[href][title]

	Headings int
}

// Missing returns the mandatory fields whose markers are absent.
func (r TemplateReport) Missing() []Field {
	var fields []Field
	if !r.Heading {
		fields = append(fields, FieldTitle)
	}
	if !r.SummaryStart || !r.SummaryEnd {
		fields = append(fields, FieldSummary)
	}
	if !r.BodyStart || !r.BodyEnd {
		fields = append(fields, FieldBody)
	}
	return fields
}

// TemplateInspector reports template markers for decoded page text.
type TemplateInspector interface {
	Inspect(html string) TemplateReport
}
