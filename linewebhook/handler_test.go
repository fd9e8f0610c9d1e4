package linewebhook_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/devscope/devscope/linewebhook"
)

const textMessageCallback = `{
  "destination": "U0000000000",
  "events": [
    {
      "type": "message",
      "mode": "active",
      "timestamp": 1704067200000,
      "webhookEventId": "01HEXAMPLE",
      "deliveryContext": {"isRedelivery": false},
      "replyToken": "reply-token",
      "source": {"type": "user", "userId": "U1234"},
      "message": {"type": "text", "id": "4680", "quoteToken": "quote", "text": "hello bot"}
    }
  ]
}`

func sign(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

var _ = Describe("Handler", func() {
	var (
		logger    *lagertest.TestLogger
		handler   http.Handler
		recorder  *httptest.ResponseRecorder
		body      string
		signature string
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("line")
		handler = linewebhook.NewHandler(logger, "channel-secret")
		recorder = httptest.NewRecorder()

		body = textMessageCallback
		signature = sign("channel-secret", body)
	})

	JustBeforeEach(func() {
		req := httptest.NewRequest("POST", "/line-webhook", bytes.NewBufferString(body))
		req.Header.Set("X-Line-Signature", signature)
		handler.ServeHTTP(recorder, req)
	})

	Context("when the signature matches", func() {
		It("responds with webhook", func() {
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(Equal("webhook"))
		})

		It("logs every event", func() {
			Expect(logger).To(gbytes.Say("line.webhook-handler.handle-callback.received"))
			Expect(logger).To(gbytes.Say(`"source":"user:U1234","text":"hello bot","type":"message"`))
		})
	})

	Context("when the signature was made with another secret", func() {
		BeforeEach(func() {
			signature = sign("other-secret", body)
		})

		It("is forbidden", func() {
			Expect(recorder.Code).To(Equal(http.StatusForbidden))
			Expect(logger).To(gbytes.Say("invalid-signature"))
		})
	})

	Context("when the signature is missing", func() {
		BeforeEach(func() {
			signature = ""
		})

		It("is forbidden", func() {
			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})
	})

	Context("when the body is not a callback", func() {
		BeforeEach(func() {
			body = `{"events": [`
			signature = sign("channel-secret", body)
		})

		It("is a bad request", func() {
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(logger).To(gbytes.Say("invalid-payload"))
		})
	})
})
