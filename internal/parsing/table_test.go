package parsing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/basile/kvitto/internal/document"
)

// fakePage implements document.Page for tests
type fakePage struct {
	tables []document.Table
	text   string
}

func (p *fakePage) ExtractTables() []document.Table {
	return p.tables
}

func (p *fakePage) ExtractText() (string, bool) {
	if p.text == "" {
		return "", false
	}
	return p.text, true
}

// fakeDocument implements document.Document for tests
type fakeDocument struct {
	pages []document.Page
}

func (d *fakeDocument) Pages() []document.Page {
	return d.pages
}

func (d *fakeDocument) Close() error {
	return nil
}

const receiptText = `ICA Nära Storgatan
Datum 2025-03-14 12:00
Beskrivning Artikelnummer Pris Mängd Summa
Milk 12345 10,00 1 10,00
Bread 67890 25,50 1 25,50
Betalat 35,50
Moms 12% 3,80`

var _ = Describe("ExtractTable", func() {
	var (
		doc   *fakeDocument
		table document.Table
		err   error
	)

	JustBeforeEach(func() {
		table, err = ExtractTable(doc)
	})

	When("a page offers a structural table", func() {
		BeforeEach(func() {
			doc = &fakeDocument{pages: []document.Page{
				&fakePage{
					tables: []document.Table{{
						document.Row("Beskrivning", "Summa"),
						document.Row("Bread", "25,50"),
					}},
					text: receiptText,
				},
			}}
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the structural table without parsing the text", func() {
			Expect(table).To(HaveLen(2))
			Expect(table[0][0].Text).To(Equal("Beskrivning"))
		})
	})

	When("a page only offers text", func() {
		BeforeEach(func() {
			doc = &fakeDocument{pages: []document.Page{
				&fakePage{text: receiptText},
			}}
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should assemble a synthetic table with a header and the item rows", func() {
			Expect(table).To(HaveLen(3))
		})

		It("should stop at the totals section", func() {
			for _, row := range table {
				Expect(row[0].Text).NotTo(ContainSubstring("Betalat"))
				Expect(row[0].Text).NotTo(ContainSubstring("Moms"))
			}
		})

		It("should emit item rows in receipt column order", func() {
			Expect(table[1][0].Text).To(Equal("Milk"))
			Expect(table[1][1].Text).To(Equal("12345"))
			Expect(table[1][2].Text).To(Equal("10.00"))
			Expect(table[1][3].Text).To(Equal("1.00 st"))
			Expect(table[1][4].Text).To(Equal("10.00"))
		})
	})

	When("several pages offer candidate tables", func() {
		BeforeEach(func() {
			doc = &fakeDocument{pages: []document.Page{
				&fakePage{tables: []document.Table{{
					document.Row("Beskrivning", "Summa"),
					document.Row("Bread", "25,50"),
				}}},
				&fakePage{tables: []document.Table{{
					document.Row("Beskrivning", "Summa"),
					document.Row("Milk", "10,00"),
					document.Row("Eggs", "32,00"),
				}}},
			}}
		})

		It("should pick the table with the most rows", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(table).To(HaveLen(3))
			Expect(table[1][0].Text).To(Equal("Milk"))
		})
	})

	When("candidate tables tie on row count", func() {
		BeforeEach(func() {
			doc = &fakeDocument{pages: []document.Page{
				&fakePage{tables: []document.Table{{
					document.Row("Beskrivning", "Summa"),
					document.Row("First", "1,00"),
				}}},
				&fakePage{tables: []document.Table{{
					document.Row("Beskrivning", "Summa"),
					document.Row("Second", "2,00"),
				}}},
			}}
		})

		It("should keep the first candidate seen", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(table[1][0].Text).To(Equal("First"))
		})

		It("should pick the same table on every run", func() {
			for i := 0; i < 5; i++ {
				again, againErr := ExtractTable(doc)
				Expect(againErr).NotTo(HaveOccurred())
				Expect(again[1][0].Text).To(Equal("First"))
			}
		})
	})

	When("the text has no header line", func() {
		BeforeEach(func() {
			doc = &fakeDocument{pages: []document.Page{
				&fakePage{text: "ICA Nära Storgatan\nTack för besöket\nVälkommen åter snart igen"},
			}}
		})

		It("should fail with the no-table error", func() {
			Expect(err).To(MatchError(ErrNoTable))
		})
	})

	When("the header is never followed by an item line", func() {
		BeforeEach(func() {
			doc = &fakeDocument{pages: []document.Page{
				&fakePage{text: "Beskrivning Artikelnummer Pris Mängd Summa\nBetalat 35,50"},
			}}
		})

		It("should discard the degenerate synthetic table", func() {
			Expect(err).To(MatchError(ErrNoTable))
		})
	})

	When("the document has no pages", func() {
		BeforeEach(func() {
			doc = &fakeDocument{}
		})

		It("should fail with the no-table error", func() {
			Expect(err).To(MatchError(ErrNoTable))
		})
	})
})

var _ = Describe("ExtractItems", func() {
	var (
		doc   *fakeDocument
		pairs []Pair
		err   error
	)

	JustBeforeEach(func() {
		pairs, err = ExtractItems(doc)
	})

	When("processing a text-only receipt", func() {
		BeforeEach(func() {
			doc = &fakeDocument{pages: []document.Page{
				&fakePage{text: receiptText},
			}}
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should produce one pair per item in order", func() {
			Expect(pairs).To(Equal([]Pair{
				{Item: "Milk", Price: "10.00"},
				{Item: "Bread", Price: "25.50"},
			}))
		})
	})

	When("processing a receipt with a structural table", func() {
		BeforeEach(func() {
			doc = &fakeDocument{pages: []document.Page{
				&fakePage{tables: []document.Table{{
					document.Row("Beskrivning", "Summa"),
					document.Row("Bread", "25,50"),
					document.Row("", "nan"),
				}}},
			}}
		})

		It("should drop the malformed row", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(pairs).To(Equal([]Pair{{Item: "Bread", Price: "25.50"}}))
		})
	})

	When("no table can be found", func() {
		BeforeEach(func() {
			doc = &fakeDocument{pages: []document.Page{
				&fakePage{text: "Tack för besöket hos oss"},
			}}
		})

		It("should surface the no-table error", func() {
			Expect(err).To(MatchError(ErrNoTable))
			Expect(pairs).To(BeEmpty())
		})
	})
})
