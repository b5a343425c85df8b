package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Fitz implements the Document interface using MuPDF
type Fitz struct {
	doc *fitz.Document
}

// NewFitz opens a PDF file with MuPDF
func NewFitz(path string) (*Fitz, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("PDF file not found: %s", path)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	return &Fitz{doc: doc}, nil
}

// Pages returns one Page per PDF page
func (f *Fitz) Pages() []Page {
	pages := make([]Page, 0, f.doc.NumPage())
	for i := 0; i < f.doc.NumPage(); i++ {
		pages = append(pages, &fitzPage{doc: f.doc, index: i})
	}
	return pages
}

// Close closes the underlying MuPDF document
func (f *Fitz) Close() error {
	return f.doc.Close()
}

type fitzPage struct {
	doc   *fitz.Document
	index int
}

// ExtractTables always returns nil: MuPDF exposes no table geometry through
// go-fitz, so pages read by this engine are parsed from their text rendering.
func (p *fitzPage) ExtractTables() []Table {
	return nil
}

// ExtractText returns the page's plain text
func (p *fitzPage) ExtractText() (string, bool) {
	text, err := p.doc.Text(p.index)
	if err != nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
