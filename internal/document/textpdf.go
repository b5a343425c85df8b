package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Characters inside a row arrive without any spacing between them, so words
// are split wherever the horizontal gap to the previous glyph exceeds this
// many points.
const wordGap = 1.0

// TextPDF implements the Document interface using a pure Go PDF reader. It
// reconstructs page text from positioned glyph rows, which keeps receipt
// columns on one line even when the text stream interleaves them.
type TextPDF struct {
	file   *os.File
	reader *pdf.Reader
}

// NewTextPDF opens a PDF file with the pure Go engine
func NewTextPDF(path string) (*TextPDF, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("PDF file not found: %s", path)
	}

	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	return &TextPDF{file: file, reader: reader}, nil
}

// Pages returns one Page per PDF page
func (t *TextPDF) Pages() []Page {
	pages := make([]Page, 0, t.reader.NumPage())
	for i := 1; i <= t.reader.NumPage(); i++ {
		pages = append(pages, &textPage{page: t.reader.Page(i)})
	}
	return pages
}

// Close closes the underlying PDF file
func (t *TextPDF) Close() error {
	return t.file.Close()
}

type textPage struct {
	page pdf.Page
}

// ExtractTables always returns nil: this engine has no layout analysis.
func (p *textPage) ExtractTables() []Table {
	return nil
}

// ExtractText returns the page text assembled row by row
func (p *textPage) ExtractText() (string, bool) {
	if p.page.V.IsNull() {
		return "", false
	}

	rows, err := p.page.GetTextByRow()
	if err != nil {
		return "", false
	}

	var lines []string
	for _, row := range rows {
		if line := assembleRow(row.Content); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

// assembleRow joins a row's glyphs into a line, inserting spaces at word gaps.
func assembleRow(content []pdf.Text) string {
	var b strings.Builder
	prevEnd := 0.0
	for i, ch := range content {
		if i > 0 && ch.X-prevEnd > wordGap {
			b.WriteByte(' ')
		}
		b.WriteString(ch.S)
		prevEnd = ch.X + ch.W
	}
	return strings.TrimSpace(b.String())
}
