package linewebhook

import (
	"errors"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

type handler struct {
	logger        lager.Logger
	channelSecret string
}

// NewHandler verifies the X-Line-Signature of every callback against the
// channel secret and logs the events it carries.
func NewHandler(logger lager.Logger, channelSecret string) http.Handler {
	return &handler{
		logger:        logger.Session("webhook-handler"),
		channelSecret: channelSecret,
	}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("handle-callback", lager.Data{
		"user-agent": r.Header.Get("User-Agent"),
		"signature":  r.Header.Get(signatureHeader),
	})
	logger.Debug("starting")

	cb, err := webhook.ParseRequest(h.channelSecret, r)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			logger.Error("invalid-signature", err)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		logger.Error("invalid-payload", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logger.Info("received", lager.Data{
		"destination": cb.Destination,
		"events":      len(cb.Events),
	})

	for _, event := range cb.Events {
		logger.Info("event", describe(event))
	}

	logger.Debug("done")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("webhook"))
}

const signatureHeader = "X-Line-Signature"

func describe(event webhook.EventInterface) lager.Data {
	data := lager.Data{"type": event.GetType()}

	switch e := event.(type) {
	case webhook.MessageEvent:
		data["source"] = source(e.Source)
		if text, ok := e.Message.(webhook.TextMessageContent); ok {
			data["text"] = text.Text
		}
	case webhook.FollowEvent:
		data["source"] = source(e.Source)
	case webhook.UnfollowEvent:
		data["source"] = source(e.Source)
	case webhook.JoinEvent:
		data["source"] = source(e.Source)
	case webhook.LeaveEvent:
		data["source"] = source(e.Source)
	case webhook.PostbackEvent:
		data["source"] = source(e.Source)
		if e.Postback != nil {
			data["postback"] = e.Postback.Data
		}
	}

	return data
}

func source(s webhook.SourceInterface) string {
	switch src := s.(type) {
	case webhook.UserSource:
		return "user:" + src.UserId
	case webhook.GroupSource:
		return "group:" + src.GroupId
	case webhook.RoomSource:
		return "room:" + src.RoomId
	default:
		return "unknown"
	}
}
