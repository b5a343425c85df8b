package parsing

import (
	"regexp"
	"strings"

	"github.com/basile/kvitto/internal/document"
)

// priceJunkRe matches everything that is not part of a price, such as
// currency symbols and stray letters in the price cell.
var priceJunkRe = regexp.MustCompile(`[^\d,.\-]`)

// Pair is the validated (item, price) unit handed to an export sink. Price
// always has the form D.DD.
type Pair struct {
	Item  string
	Price string
}

// Normalize maps a table to (item, price) pairs in row order. Row 0 is the
// header and resolves which columns hold the description and the price; data
// rows with a missing cell or a malformed price are dropped silently. A table
// without at least a header and one data row yields nothing.
func Normalize(table document.Table) []Pair {
	if len(table) < 2 {
		return nil
	}

	descCol, priceCol := resolveColumns(table[0])

	var pairs []Pair
	for _, row := range table[1:] {
		pi := priceCol
		if pi < 0 {
			// No price column matched in the header; use each row's last cell.
			if len(row) < 2 {
				continue
			}
			pi = len(row) - 1
		} else if pi >= len(row) {
			continue
		}
		if descCol >= len(row) {
			continue
		}

		descCell, priceCell := row[descCol], row[pi]
		if !descCell.Valid || !priceCell.Valid {
			continue
		}

		item := strings.TrimSpace(descCell.Text)
		price := priceJunkRe.ReplaceAllString(strings.TrimSpace(priceCell.Text), "")
		price = strings.ReplaceAll(price, ",", ".")
		if item == "" || !amountRe.MatchString(price) {
			continue
		}

		// A leading + or * would be read as a formula by spreadsheet sinks.
		if strings.HasPrefix(item, "+") || strings.HasPrefix(item, "*") {
			item = "'" + item
		}

		pairs = append(pairs, Pair{Item: item, Price: price})
	}
	return pairs
}

// resolveColumns inspects the header row for the description and price
// columns. priceCol -1 means "last cell of each row".
func resolveColumns(header []document.Cell) (descCol, priceCol int) {
	descCol, priceCol = 0, -1
	for i, cell := range header {
		lower := strings.ToLower(cell.Text)
		switch {
		case strings.Contains(lower, "beskrivning") || strings.Contains(lower, "description"):
			descCol = i
		case strings.Contains(lower, "summa"):
			priceCol = i
		}
	}
	return descCol, priceCol
}
