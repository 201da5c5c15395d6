// Package slog provides logging decorators for leis services.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/leis"
)

// Ensure LoggingParser implements leis.Parser.
var _ leis.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   leis.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next leis.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(r io.Reader, source, category string) (rec *leis.LegalRecord, err error) {
	defer func(begin time.Time) {
		p.log("parse", source, category, rec, begin, err)
	}(time.Now())
	return p.next.Parse(r, source, category)
}

// ParseFile delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParseFile(path, category string) (rec *leis.LegalRecord, err error) {
	defer func(begin time.Time) {
		p.log("parse file", path, category, rec, begin, err)
	}(time.Now())
	return p.next.ParseFile(path, category)
}

func (p *LoggingParser) log(msg, source, category string, rec *leis.LegalRecord, begin time.Time, err error) {
	var bodyLen int
	if rec != nil {
		bodyLen = len(rec.Body)
	}
	p.logger.Info(msg,
		"source", source,
		"category", category,
		"body_bytes", bodyLen,
		"duration", time.Since(begin),
		"err", err,
	)
}
