package notionsync_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jomei/notionapi"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/devscope/devscope/notionsync"
)

var _ = Describe("NewClient", func() {
	var (
		server *ghttp.Server
		client *notionapi.Client
	)

	BeforeEach(func() {
		server = ghttp.NewServer()

		var err error
		client, err = notionsync.NewClient("secret_token", server.URL())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	It("creates pages in the database through the configured endpoint", func() {
		server.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest("POST", "/v1/pages"),
			ghttp.VerifyHeaderKV("Authorization", "Bearer secret_token"),
			func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()

				body, err := io.ReadAll(r.Body)
				Expect(err).NotTo(HaveOccurred())

				var page struct {
					Parent struct {
						DatabaseID string `json:"database_id"`
					} `json:"parent"`
					Properties map[string]json.RawMessage `json:"properties"`
				}
				Expect(json.Unmarshal(body, &page)).To(Succeed())
				Expect(page.Parent.DatabaseID).To(Equal("db-1"))
				Expect(page.Properties).To(HaveKey(notionsync.PropertyTitle))
				Expect(string(page.Properties[notionsync.PropertyTitle])).To(ContainSubstring(`"content":"Add API"`))
				Expect(string(page.Properties[notionsync.PropertyAuthor])).To(ContainSubstring(`"name":"alice"`))
			},
			ghttp.RespondWith(http.StatusOK, `{"object":"page","id":"page-1"}`),
		))

		request := notionsync.NewPageRequest("db-1", merged(1, "Add API", at(10, 10, 0), at(12, 10, 30)), jst)
		page, err := client.Page.Create(context.Background(), request)
		Expect(err).NotTo(HaveOccurred())
		Expect(page.ID).To(Equal(notionapi.ObjectID("page-1")))
	})

	It("returns notion errors", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusBadRequest,
			`{"object":"error","status":400,"code":"validation_error","message":"URL is not a valid URL"}`))

		request := notionsync.NewPageRequest("db-1", merged(1, "Add API", at(10, 10, 0), at(12, 10, 30)), jst)
		_, err := client.Page.Create(context.Background(), request)
		Expect(err).To(HaveOccurred())
		Expect(server.ReceivedRequests()).To(HaveLen(1))
	})
})
