package export

import (
	"fmt"

	"github.com/basile/kvitto/internal/parsing"
)

// buildSheetValues lays out the spreadsheet grid shared by the Sheets and
// XLSX sinks: the item rows with empty expense-split columns, then a blank
// separator, then the summary block with labels in column F and formulas in
// column G. The last summary row carries the receipt's own paid total so the
// sheet total can be checked against it.
func buildSheetValues(pairs []parsing.Pair, paidTotal string) [][]interface{} {
	values := [][]interface{}{
		{"Item", "Shared expenses", "My expenses", "Jessica expenses", "", "", ""},
	}

	for _, pair := range pairs {
		values = append(values, []interface{}{pair.Item, pair.Price, "", "", "", "", ""})
	}

	values = append(values, []interface{}{"", "", "", "", "", "", ""})

	// First summary row, 1-based: header + items + separator + 1.
	startRow := len(pairs) + 3
	values = append(values,
		[]interface{}{"", "", "", "", "", "Sum of shared expenses", "=SUM(B:B)"},
		[]interface{}{"", "", "", "", "", "Sum of my expenses", "=SUM(C:C)"},
		[]interface{}{"", "", "", "", "", "Sum of Jessica's expenses", "=SUM(D:D)"},
		[]interface{}{"", "", "", "", "", "Sheet total", fmt.Sprintf("=SUM(G%d:G%d)", startRow, startRow+2)},
		[]interface{}{"", "", "", "", "", "PDF total", paidTotal},
	)
	return values
}
