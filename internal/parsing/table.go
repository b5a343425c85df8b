package parsing

import (
	"errors"
	"regexp"
	"strings"

	"github.com/basile/kvitto/internal/document"
)

// ErrNoTable is returned when no structural or synthetic table could be
// assembled from any page.
var ErrNoTable = errors.New("no tables found in document")

// Header columns are separated by runs of two or more spaces.
var columnGapRe = regexp.MustCompile(`\s{2,}`)

type scanState int

const (
	beforeHeader scanState = iota
	inTable
	scanDone
)

// ExtractTable gathers candidate tables from every page and returns the
// largest one, which on a receipt is the item table. Pages that offer
// structural tables contribute those directly; pages that don't are parsed
// from their text rendering. Ties on row count go to the first candidate seen.
func ExtractTable(doc document.Document) (document.Table, error) {
	var candidates []document.Table
	for _, page := range doc.Pages() {
		tables := page.ExtractTables()
		candidates = append(candidates, tables...)
		if len(tables) > 0 {
			continue
		}
		if text, ok := page.ExtractText(); ok {
			if table := parseReceiptText(text); table != nil {
				candidates = append(candidates, table)
			}
		}
	}

	if len(candidates) == 0 {
		return nil, ErrNoTable
	}

	best := candidates[0]
	for _, table := range candidates[1:] {
		if len(table) > len(best) {
			best = table
		}
	}
	return best, nil
}

// parseReceiptText assembles a synthetic table from plain receipt text: a
// header row split on column gaps, then one row per item line until the
// totals section begins. A table without at least a header and one item is
// discarded.
func parseReceiptText(text string) document.Table {
	var rows document.Table
	state := beforeHeader

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || state == scanDone {
			continue
		}

		switch classifyLine(line, state == inTable) {
		case tagHeader:
			rows = append(rows, document.Row(columnGapRe.Split(line, -1)...))
			state = inTable
		case tagTerminator:
			state = scanDone
		case tagItem:
			if state != inTable {
				continue
			}
			record, ok := parseItemLine(strings.Fields(line))
			if !ok {
				continue
			}
			rows = append(rows, document.Row(
				record.description,
				record.articleNumber,
				record.unitPrice,
				record.quantity,
				record.lineTotal,
			))
		}
	}

	if len(rows) < 2 {
		return nil
	}
	return rows
}

// ExtractItems runs the full pipeline for one document: table extraction
// followed by row normalization. An empty pair list with a nil error means
// the table held no usable rows.
func ExtractItems(doc document.Document) ([]Pair, error) {
	table, err := ExtractTable(doc)
	if err != nil {
		return nil, err
	}
	return Normalize(table), nil
}
