package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devscope/devscope/redact/matchers"
)

var _ = Describe("Substring", func() {
	var matcher matchers.Matcher

	BeforeEach(func() {
		matcher = matchers.Substring("exact match")
	})

	It("returns true when the line matches case-sensitively", func() {
		line := []byte("this is an exact match")
		matched, start, end := matcher.Match(line)
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(11))
		Expect(end).To(Equal(22))
	})

	It("returns false when the line does not match case-sensitively", func() {
		matched, _, _ := matcher.Match([]byte("THIS IS NOT QUITE AN EXACT MATCH"))
		Expect(matched).To(BeFalse())
	})

	It("reports every occurrence", func() {
		Expect(matcher.Spans([]byte("exact match, exact match"))).To(Equal([]matchers.Span{
			{Start: 0, End: 11},
			{Start: 13, End: 24},
		}))
	})
})
