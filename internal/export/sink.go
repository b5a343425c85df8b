// Package export publishes extracted receipt items to a flat file or a
// Google Sheets spreadsheet.
package export

import "github.com/basile/kvitto/internal/parsing"

// DefaultSheetName is the sheet tab name used when none is given. The CLI
// replaces it with the receipt date when one was found.
const DefaultSheetName = "Receipt Items"

// Sink consumes the extracted pairs plus the scanned scalar fields and
// publishes them somewhere.
type Sink interface {
	Export(pairs []parsing.Pair, fields parsing.ScalarFields) error
}
