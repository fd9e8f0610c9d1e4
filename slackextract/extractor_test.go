package slackextract_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	"github.com/slack-go/slack"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/ghttp"

	"github.com/devscope/devscope/slackextract"
	"github.com/devscope/devscope/slackextract/slackextractfakes"
)

func message(user, ts, threadTS, text string) slack.Message {
	return slack.Message{Msg: slack.Msg{
		User:            user,
		Timestamp:       ts,
		ThreadTimestamp: threadTS,
		Text:            text,
	}}
}

func historyPage(cursor string, messages ...slack.Message) *slack.GetConversationHistoryResponse {
	resp := &slack.GetConversationHistoryResponse{Messages: messages}
	resp.ResponseMetaData.NextCursor = cursor
	return resp
}

var _ = Describe("Extractor", func() {
	var (
		api       *slackextractfakes.FakeSlackAPI
		clock     *fakeclock.FakeClock
		logger    *lagertest.TestLogger
		cfg       slackextract.Config
		extractor *slackextract.Extractor
	)

	BeforeEach(func() {
		api = &slackextractfakes.FakeSlackAPI{}
		clock = fakeclock.NewFakeClock(time.Unix(1700000000, 0))
		logger = lagertest.NewTestLogger("slackextract")

		cfg = slackextract.Config{
			ChannelID:       "C123",
			Workspace:       "acme",
			ExcludedUserIDs: []string{"UBOT"},
			MessageLimit:    100,
			Location:        time.FixedZone("JST", 9*60*60),
		}

		api.GetUsersInConversationContextReturns([]string{"U1", "U2"}, "", nil)
		api.GetUserInfoContextStub = func(ctx context.Context, id string) (*slack.User, error) {
			switch id {
			case "U1":
				return &slack.User{ID: "U1", Name: "alice", RealName: "Alice Liddell"}, nil
			case "U2":
				return &slack.User{ID: "U2", Name: "bob"}, nil
			default:
				return nil, errors.New("user_not_found")
			}
		}
	})

	JustBeforeEach(func() {
		extractor = slackextract.NewExtractor(api, clock, cfg)
	})

	Context("with a single page of history", func() {
		BeforeEach(func() {
			api.GetConversationHistoryContextReturns(historyPage("",
				message("U2", "1700000300.000300", "", "thanks <@U1>"),
				message("", "1700000250.000250", "", "bot says hi"),
				message("UBOT", "1700000220.000220", "", "deploy finished"),
				message("U1", "1700000200.000200", "1700000200.000200", "release today?"),
			), nil)

			api.GetConversationRepliesContextReturns([]slack.Message{
				message("U1", "1700000200.000200", "1700000200.000200", "release today?"),
				message("U2", "1700000210.000210", "1700000200.000200", "yes"),
				message("UBOT", "1700000215.000215", "1700000200.000200", "noted"),
			}, false, "", nil)
		})

		It("returns messages oldest first with replies after their parent", func() {
			result, err := extractor.Extract(context.Background(), logger)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Messages).To(Equal([]slackextract.FormattedMessage{
				{
					Timestamp: "2023/11/15 07:16:40",
					Username:  "Alice Liddell",
					Text:      "release today?",
					URL:       "https://acme.slack.com/archives/C123/p1700000200000200",
				},
				{
					Timestamp: "2023/11/15 07:16:50",
					Username:  "bob",
					Text:      "yes",
					IsReply:   true,
				},
				{
					Timestamp: "2023/11/15 07:18:20",
					Username:  "bob",
					Text:      "thanks @Alice Liddell",
					URL:       "https://acme.slack.com/archives/C123/p1700000300000300",
				},
			}))
		})

		It("counts messages and replies", func() {
			result, err := extractor.Extract(context.Background(), logger)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Stats.TotalMessages).To(Equal(2))
			Expect(result.Stats.TotalReplies).To(Equal(1))
			Expect(result.Stats.EstimatedMinutes).To(Equal(1))
			Expect(result.Stats.ActualMinutes).To(Equal(1))
		})

		It("only asks for replies of thread parents", func() {
			_, err := extractor.Extract(context.Background(), logger)
			Expect(err).NotTo(HaveOccurred())

			Expect(api.GetConversationRepliesContextCallCount()).To(Equal(1))
			_, params := api.GetConversationRepliesContextArgsForCall(0)
			Expect(params.ChannelID).To(Equal("C123"))
			Expect(params.Timestamp).To(Equal("1700000200.000200"))
			Expect(params.Limit).To(Equal(slackextract.PageSize))
		})

		It("logs the extraction", func() {
			_, err := extractor.Extract(context.Background(), logger)
			Expect(err).NotTo(HaveOccurred())

			Expect(logger).To(gbytes.Say("slackextract.extract.starting"))
			Expect(logger).To(gbytes.Say("slackextract.extract.done"))
		})

		Context("when a date range is given", func() {
			BeforeEach(func() {
				cfg.StartDate = "2024-01-01"
				cfg.EndDate = "2024-01-31"
			})

			It("bounds the history request", func() {
				_, err := extractor.Extract(context.Background(), logger)
				Expect(err).NotTo(HaveOccurred())

				_, params := api.GetConversationHistoryContextArgsForCall(0)
				Expect(params.Oldest).To(Equal("1704067200"))
				Expect(params.Latest).To(Equal("1706745599"))
				Expect(params.Limit).To(Equal(slackextract.PageSize))
			})
		})

		Context("when no date range is given", func() {
			It("starts from the beginning of the channel", func() {
				_, err := extractor.Extract(context.Background(), logger)
				Expect(err).NotTo(HaveOccurred())

				_, params := api.GetConversationHistoryContextArgsForCall(0)
				Expect(params.Oldest).To(Equal("0"))
				Expect(params.Latest).To(BeEmpty())
			})
		})

		Context("when replies cannot be fetched", func() {
			BeforeEach(func() {
				api.GetConversationRepliesContextReturns(nil, false, "", errors.New("thread_not_found"))
			})

			It("keeps the parent without replies", func() {
				result, err := extractor.Extract(context.Background(), logger)
				Expect(err).NotTo(HaveOccurred())

				Expect(result.Messages).To(HaveLen(2))
				Expect(result.Stats.TotalReplies).To(BeZero())
			})
		})
	})

	Context("when the history spans several pages", func() {
		BeforeEach(func() {
			api.GetConversationHistoryContextReturnsOnCall(0, historyPage("next-page",
				message("U1", "1700000400.000400", "", "four"),
				message("U1", "1700000300.000300", "", "three"),
			), nil)
			api.GetConversationHistoryContextReturnsOnCall(1, historyPage("",
				message("U2", "1700000200.000200", "", "two"),
				message("U2", "1700000100.000100", "", "one"),
			), nil)
		})

		It("follows the cursor", func() {
			result, err := extractor.Extract(context.Background(), logger)
			Expect(err).NotTo(HaveOccurred())

			Expect(api.GetConversationHistoryContextCallCount()).To(Equal(2))
			_, params := api.GetConversationHistoryContextArgsForCall(1)
			Expect(params.Cursor).To(Equal("next-page"))

			var texts []string
			for _, m := range result.Messages {
				texts = append(texts, m.Text)
			}
			Expect(texts).To(Equal([]string{"one", "two", "three", "four"}))
		})

		Context("when the limit is reached on the first page", func() {
			BeforeEach(func() {
				cfg.MessageLimit = 1
			})

			It("stops fetching and keeps the newest messages", func() {
				result, err := extractor.Extract(context.Background(), logger)
				Expect(err).NotTo(HaveOccurred())

				Expect(api.GetConversationHistoryContextCallCount()).To(Equal(1))
				Expect(result.Messages).To(HaveLen(1))
				Expect(result.Messages[0].Text).To(Equal("four"))
			})
		})
	})

	Context("when rate limited", func() {
		BeforeEach(func() {
			api.GetConversationHistoryContextReturnsOnCall(0, nil, &slack.RateLimitedError{RetryAfter: 30 * time.Second})
			api.GetConversationHistoryContextReturnsOnCall(1, historyPage("",
				message("U1", "1700000100.000100", "", "hello"),
			), nil)
		})

		It("waits before retrying the same request", func() {
			done := make(chan slackextract.Result, 1)
			go func() {
				defer GinkgoRecover()
				result, err := extractor.Extract(context.Background(), logger)
				Expect(err).NotTo(HaveOccurred())
				done <- result
			}()

			Eventually(clock.WatcherCount).Should(Equal(1))
			Consistently(done).ShouldNot(Receive())

			clock.Increment(30 * time.Second)

			var result slackextract.Result
			Eventually(done).Should(Receive(&result))
			Expect(result.Messages).To(HaveLen(1))
			Expect(api.GetConversationHistoryContextCallCount()).To(Equal(2))
			Expect(logger).To(gbytes.Say("rate-limited"))
		})

		It("gives up when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())

			errs := make(chan error, 1)
			go func() {
				_, err := extractor.Extract(ctx, logger)
				errs <- err
			}()

			Eventually(clock.WatcherCount).Should(Equal(1))
			cancel()

			Eventually(errs).Should(Receive(MatchError(context.Canceled)))
		})
	})

	Context("when rate limited without a usable Retry-After", func() {
		extractInBackground := func(extractor *slackextract.Extractor) chan slackextract.Result {
			done := make(chan slackextract.Result, 1)
			go func() {
				defer GinkgoRecover()
				result, err := extractor.Extract(context.Background(), logger)
				Expect(err).NotTo(HaveOccurred())
				done <- result
			}()
			return done
		}

		waitsAMinute := func(done chan slackextract.Result) slackextract.Result {
			Eventually(clock.WatcherCount).Should(Equal(1))

			clock.Increment(59 * time.Second)
			Consistently(done).ShouldNot(Receive())

			clock.Increment(time.Second)

			var result slackextract.Result
			Eventually(done).Should(Receive(&result))
			return result
		}

		It("waits a minute before retrying the history", func() {
			server := ghttp.NewServer()
			defer server.Close()

			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/conversations.members"),
					ghttp.RespondWith(http.StatusOK, `{"ok":true,"members":["U1"],"response_metadata":{"next_cursor":""}}`),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/users.info"),
					ghttp.RespondWith(http.StatusOK, `{"ok":true,"user":{"id":"U1","name":"alice","real_name":"Alice"}}`),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/conversations.history"),
					ghttp.RespondWith(http.StatusTooManyRequests, "", http.Header{"Retry-After": []string{"0"}}),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/conversations.history"),
					ghttp.RespondWith(http.StatusOK,
						`{"ok":true,"has_more":false,"messages":[{"type":"message","user":"U1","text":"hi <@U1>","ts":"1700000100.000100"}]}`),
				),
			)

			api := slack.New("xoxb-token", slack.OptionAPIURL(server.URL()+"/"))
			done := extractInBackground(slackextract.NewExtractor(api, clock, cfg))

			Eventually(server.ReceivedRequests).Should(HaveLen(3))
			result := waitsAMinute(done)

			Expect(server.ReceivedRequests()).To(HaveLen(4))
			Expect(result.Messages).To(HaveLen(1))
			Expect(result.Messages[0].Text).To(Equal("hi @Alice"))
			Expect(logger).To(gbytes.Say(`"retry-after":"1m0s"`))
		})

		It("waits a minute before retrying a user lookup", func() {
			lookups := 0
			api.GetUserInfoContextStub = func(ctx context.Context, id string) (*slack.User, error) {
				lookups++
				if lookups == 1 {
					return nil, &slack.RateLimitedError{}
				}
				return &slack.User{ID: id, Name: "alice", RealName: "Alice"}, nil
			}
			api.GetUsersInConversationContextReturns([]string{"U1"}, "", nil)
			api.GetConversationHistoryContextReturns(historyPage("",
				message("U1", "1700000100.000100", "", "hello"),
			), nil)

			result := waitsAMinute(extractInBackground(slackextract.NewExtractor(api, clock, cfg)))

			Expect(api.GetUserInfoContextCallCount()).To(Equal(2))
			Expect(result.Messages[0].Username).To(Equal("Alice"))
		})

		It("waits a minute before retrying a thread", func() {
			api.GetConversationHistoryContextReturns(historyPage("",
				message("U1", "1700000200.000200", "1700000200.000200", "release today?"),
			), nil)
			api.GetConversationRepliesContextReturnsOnCall(0, nil, false, "", &slack.RateLimitedError{})
			api.GetConversationRepliesContextReturnsOnCall(1, []slack.Message{
				message("U1", "1700000200.000200", "1700000200.000200", "release today?"),
				message("U2", "1700000210.000210", "1700000200.000200", "yes"),
			}, false, "", nil)

			result := waitsAMinute(extractInBackground(slackextract.NewExtractor(api, clock, cfg)))

			Expect(api.GetConversationRepliesContextCallCount()).To(Equal(2))
			Expect(result.Stats.TotalReplies).To(Equal(1))
			Expect(result.Messages[1].IsReply).To(BeTrue())
		})
	})

	Context("when the channel does not exist", func() {
		BeforeEach(func() {
			api.GetConversationHistoryContextReturns(nil, errors.New("channel_not_found"))
		})

		It("returns a descriptive error", func() {
			_, err := extractor.Extract(context.Background(), logger)
			Expect(err).To(MatchError(slackextract.ErrChannelNotFound))
			Expect(logger).To(gbytes.Say("slackextract.extract.failed"))
		})
	})

	Context("when a user cannot be looked up", func() {
		BeforeEach(func() {
			api.GetUsersInConversationContextReturns(nil, "", errors.New("missing_scope"))
			api.GetConversationHistoryContextReturns(historyPage("",
				message("U404", "1700000100.000100", "", "ping <@U404>"),
			), nil)
		})

		It("falls back to the user id", func() {
			result, err := extractor.Extract(context.Background(), logger)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Messages[0].Username).To(Equal("U404"))
			Expect(result.Messages[0].Text).To(Equal("ping @U404"))
			Expect(api.GetUserInfoContextCallCount()).To(Equal(1))
		})
	})

	Context("when channel members span several pages", func() {
		BeforeEach(func() {
			api.GetUsersInConversationContextReturnsOnCall(0, []string{"U1"}, "more", nil)
			api.GetUsersInConversationContextReturnsOnCall(1, []string{"U2"}, "", nil)
			api.GetConversationHistoryContextReturns(historyPage(""), nil)
		})

		It("loads every member", func() {
			_, err := extractor.Extract(context.Background(), logger)
			Expect(err).NotTo(HaveOccurred())

			Expect(api.GetUsersInConversationContextCallCount()).To(Equal(2))
			_, params := api.GetUsersInConversationContextArgsForCall(1)
			Expect(params.Cursor).To(Equal("more"))
			Expect(api.GetUserInfoContextCallCount()).To(Equal(2))
		})
	})
})
