package parsing

import (
	"regexp"
	"strings"

	"github.com/basile/kvitto/internal/document"
)

const paidPrefix = "Betalat "

var (
	amountRe = regexp.MustCompile(`^\d+\.\d{2}$`)
	dateRe   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// ScalarFields holds the two best-effort fields scanned independently of the
// item table. An empty string means the field was not found, which is a
// normal outcome.
type ScalarFields struct {
	// PaidTotal is the receipt's paid amount in D.DD form.
	PaidTotal string
	// Date is the receipt date in YYYY-MM-DD form.
	Date string
}

// ScanFields scans the document for both scalar fields
func ScanFields(doc document.Document) ScalarFields {
	return ScalarFields{
		PaidTotal: ScanPaidTotal(doc),
		Date:      ScanDocumentDate(doc),
	}
}

// ScanPaidTotal finds the paid total: the first line starting with "Betalat"
// whose remainder is a well-formed amount. The comma decimal separator is
// normalized to a dot.
func ScanPaidTotal(doc document.Document) string {
	for _, page := range doc.Pages() {
		text, ok := page.ExtractText()
		if !ok {
			continue
		}
		for _, raw := range strings.Split(text, "\n") {
			line := strings.TrimSpace(raw)
			if !strings.HasPrefix(line, paidPrefix) {
				continue
			}
			amount := strings.TrimSpace(strings.TrimPrefix(line, paidPrefix))
			amount = strings.ReplaceAll(amount, ",", ".")
			if amountRe.MatchString(amount) {
				return amount
			}
		}
	}
	return ""
}

// ScanDocumentDate finds the receipt date: the first YYYY-MM-DD substring on
// a line mentioning "Datum".
func ScanDocumentDate(doc document.Document) string {
	for _, page := range doc.Pages() {
		text, ok := page.ExtractText()
		if !ok {
			continue
		}
		for _, raw := range strings.Split(text, "\n") {
			if !strings.Contains(raw, "Datum") {
				continue
			}
			if match := dateRe.FindString(raw); match != "" {
				return match
			}
		}
	}
	return ""
}
