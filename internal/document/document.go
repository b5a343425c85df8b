package document

import "strings"

// Cell is a single table cell. Structural extractors can yield cells that are
// missing entirely or hold placeholder junk; those arrive here as invalid
// cells rather than sentinel strings.
type Cell struct {
	Text  string
	Valid bool
}

// NewCell builds a Cell from raw provider output. Empty strings and the
// "None"/"nan" placeholders some extractors emit for missing cells map to an
// invalid Cell.
func NewCell(text string) Cell {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "None" || trimmed == "nan" {
		return Cell{}
	}
	return Cell{Text: text, Valid: true}
}

// Table is a row-major grid of cells. Row 0 is conventionally, but not
// necessarily, a header row.
type Table [][]Cell

// Row builds a table row from raw cell strings.
func Row(values ...string) []Cell {
	row := make([]Cell, len(values))
	for i, v := range values {
		row[i] = NewCell(v)
	}
	return row
}

// Page is a single page of a source document.
type Page interface {
	// ExtractTables returns tables detected by layout analysis, if the
	// underlying engine supports any.
	ExtractTables() []Table

	// ExtractText returns the page's plain text rendering. The second return
	// is false when the page has no extractable text.
	ExtractText() (string, bool)
}

// Document is the page source for one processing run.
type Document interface {
	// Pages returns the document's pages in order.
	Pages() []Page

	// Close releases resources held by the underlying engine.
	Close() error
}
