// Package parsing recovers structured line items from receipt documents. The
// receipts it targets are Swedish store receipts, which is where the keyword
// tables come from.
package parsing

import "strings"

type lineTag int

const (
	tagOther lineTag = iota
	tagHeader
	tagItem
	tagTerminator
)

// headerKeywords are the column titles of the receipt item table.
var headerKeywords = []string{"Beskrivning", "Artikelnummer", "Pris", "Mängd", "Summa"}

// terminatorKeywords mark the totals/payment section that follows the items.
var terminatorKeywords = []string{"betalat", "moms", "kort", "totalt", "köp"}

// classifyLine tags one line of receipt text. Terminators only exist once a
// header has been seen; before that, footer-looking lines are treated like any
// other text.
func classifyLine(line string, headerSeen bool) lineTag {
	for _, keyword := range headerKeywords {
		if strings.Contains(line, keyword) {
			return tagHeader
		}
	}

	if headerSeen {
		lower := strings.ToLower(line)
		for _, keyword := range terminatorKeywords {
			if strings.Contains(lower, keyword) {
				return tagTerminator
			}
		}
	}

	if len(strings.Fields(line)) >= 4 {
		return tagItem
	}
	return tagOther
}
