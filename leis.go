// Package leis extracts structured records from municipal legal-act pages.
// It decodes legacy single-byte HTML, locates the title, summary, body and
// document link fragments of one fixed page template, and reduces them to
// plain text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., charmap/, html/, sqlite/).
package leis
