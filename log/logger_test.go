package log_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/devscope/devscope/log"
)

var _ = Describe("NewLogger", func() {
	var out *gbytes.Buffer

	BeforeEach(func() {
		out = gbytes.NewBuffer()
	})

	It("drops debug lines by default", func() {
		logger := log.NewLogger("devscope", out, false)
		logger.Debug("noisy")
		logger.Info("visible")

		Expect(out).To(gbytes.Say("devscope.visible"))
		Expect(string(out.Contents())).NotTo(ContainSubstring("noisy"))
	})

	It("keeps debug lines when asked", func() {
		logger := log.NewLogger("devscope", out, true)
		logger.Session("extract").Debug("noisy")

		Expect(out).To(gbytes.Say("devscope.extract.noisy"))
	})
})
