package parsing

import (
	"regexp"
	"strings"
)

var (
	articleNumberRe = regexp.MustCompile(`^\d{4,}$`)
	priceTokenRe    = regexp.MustCompile(`^\d+[,.]\d{2}$`)
)

// The receipts never render a parseable quantity column, so every item
// carries the literal unit label.
const quantityLabel = "1.00 st"

// itemRecord is one decomposed receipt item line
type itemRecord struct {
	description   string
	articleNumber string
	unitPrice     string
	quantity      string
	lineTotal     string
}

// parseItemLine decomposes a tokenized item line. The first 4+ digit run is
// the article number; everything before it is the description and the price
// candidates follow it. Lines without an article number, a description, or at
// least two prices (unit price and line total) are not items — that is a
// normal outcome, not an error.
func parseItemLine(tokens []string) (itemRecord, bool) {
	for i, token := range tokens {
		if !articleNumberRe.MatchString(token) {
			continue
		}

		description := strings.Join(tokens[:i], " ")
		if description == "" {
			return itemRecord{}, false
		}

		var prices []string
		for _, rest := range tokens[i+1:] {
			if priceTokenRe.MatchString(rest) {
				prices = append(prices, strings.ReplaceAll(rest, ",", "."))
			}
		}
		if len(prices) < 2 {
			return itemRecord{}, false
		}

		return itemRecord{
			description:   description,
			articleNumber: token,
			unitPrice:     prices[0],
			quantity:      quantityLabel,
			lineTotal:     prices[len(prices)-1],
		}, true
	}
	return itemRecord{}, false
}
