package parsing

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parseItemLine", func() {
	var (
		line   string
		record itemRecord
		ok     bool
	)

	JustBeforeEach(func() {
		record, ok = parseItemLine(strings.Fields(line))
	})

	When("parsing a regular item line", func() {
		BeforeEach(func() {
			line = "Milk 12345 10,00 1 10,00"
		})

		It("should succeed", func() {
			Expect(ok).To(BeTrue())
		})

		It("should take everything before the article number as the description", func() {
			Expect(record.description).To(Equal("Milk"))
		})

		It("should capture the article number", func() {
			Expect(record.articleNumber).To(Equal("12345"))
		})

		It("should normalize the comma decimal separator", func() {
			Expect(record.unitPrice).To(Equal("10.00"))
			Expect(record.lineTotal).To(Equal("10.00"))
		})

		It("should emit the literal quantity label", func() {
			Expect(record.quantity).To(Equal("1.00 st"))
		})
	})

	When("the description spans several tokens", func() {
		BeforeEach(func() {
			line = "Mellanmjölk 1,5% 7310865004703 16,50 1 16,50"
		})

		It("should join the description tokens with single spaces", func() {
			Expect(ok).To(BeTrue())
			Expect(record.description).To(Equal("Mellanmjölk 1,5%"))
		})
	})

	When("more than two prices follow the article number", func() {
		BeforeEach(func() {
			line = "Apples 98765 12,50 3,00 37,50"
		})

		It("should use the first price as unit price and the last as line total", func() {
			Expect(ok).To(BeTrue())
			Expect(record.unitPrice).To(Equal("12.50"))
			Expect(record.lineTotal).To(Equal("37.50"))
		})
	})

	When("no token is a 4+ digit run", func() {
		BeforeEach(func() {
			line = "Milk 123 10,00 1 10,00"
		})

		It("should fail without an error", func() {
			Expect(ok).To(BeFalse())
		})
	})

	When("fewer than two prices follow the article number", func() {
		BeforeEach(func() {
			line = "Milk 12345 10,00 1 st"
		})

		It("should fail", func() {
			Expect(ok).To(BeFalse())
		})

		It("should fail again on the same input", func() {
			again, againOK := parseItemLine(strings.Fields(line))
			Expect(againOK).To(BeFalse())
			Expect(again).To(Equal(record))
		})
	})

	When("the article number is the first token", func() {
		BeforeEach(func() {
			line = "12345 10,00 1 10,00"
		})

		It("should fail because the description is empty", func() {
			Expect(ok).To(BeFalse())
		})
	})
})
