package linewebhook_test

import (
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devscope/devscope/linewebhook"
)

var _ = Describe("Router", func() {
	var (
		server *httptest.Server
		hits   int
	)

	BeforeEach(func() {
		hits = 0
		callback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.WriteHeader(http.StatusOK)
		})

		server = httptest.NewServer(linewebhook.NewRouter(lagertest.NewTestLogger("line"), callback))
	})

	AfterEach(func() {
		server.Close()
	})

	It("routes callbacks to the handler", func() {
		resp, err := http.Post(server.URL+"/line-webhook", "application/json", nil)
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(hits).To(Equal(1))
	})

	It("only accepts callbacks over POST", func() {
		resp, err := http.Get(server.URL + "/line-webhook")
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusMethodNotAllowed))
		Expect(hits).To(BeZero())
	})

	It("answers health checks", func() {
		resp, err := http.Get(server.URL + "/healthz")
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})
})
