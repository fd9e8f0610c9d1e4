package slackextract

import (
	"context"
	"errors"
	"math"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/slack-go/slack"
)

const (
	PageSize          = 50
	DefaultRetryAfter = 60 * time.Second
	TimestampLayout   = "2006/01/02 15:04:05"
)

//go:generate counterfeiter . SlackAPI

// SlackAPI is the subset of *slack.Client the extractor uses.
type SlackAPI interface {
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetConversationRepliesContext(ctx context.Context, params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error)
	GetUsersInConversationContext(ctx context.Context, params *slack.GetUsersInConversationParameters) ([]string, string, error)
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)
}

type Config struct {
	ChannelID       string
	Workspace       string
	ExcludedUserIDs []string
	MessageLimit    int
	StartDate       string
	EndDate         string
	Location        *time.Location
}

type Message struct {
	Text     string
	User     string
	TS       string
	ThreadTS string
	Replies  []Message
}

type User struct {
	ID       string
	Name     string
	RealName string
}

func (u User) DisplayName() string {
	switch {
	case u.RealName != "":
		return u.RealName
	case u.Name != "":
		return u.Name
	default:
		return u.ID
	}
}

type FormattedMessage struct {
	Timestamp string `json:"timestamp"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	IsReply   bool   `json:"isReply"`
	URL       string `json:"url,omitempty"`
}

type Stats struct {
	TotalMessages    int `json:"totalMessages"`
	TotalReplies     int `json:"totalReplies"`
	EstimatedMinutes int `json:"estimatedTimeMinutes"`
	ActualMinutes    int `json:"actualTimeMinutes"`
}

type Result struct {
	Messages []FormattedMessage
	Stats    Stats
}

type Extractor struct {
	api   SlackAPI
	clock clock.Clock
	cfg   Config

	excluded map[string]bool
	users    map[string]User
}

func NewExtractor(api SlackAPI, clock clock.Clock, cfg Config) *Extractor {
	if cfg.Location == nil {
		cfg.Location = DefaultLocation()
	}

	excluded := map[string]bool{}
	for _, id := range cfg.ExcludedUserIDs {
		excluded[id] = true
	}

	return &Extractor{
		api:      api,
		clock:    clock,
		cfg:      cfg,
		excluded: excluded,
		users:    map[string]User{},
	}
}

func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// EstimateMinutes assumes each history page costs about six seconds.
func EstimateMinutes(limit int) int {
	requests := (limit + PageSize - 1) / PageSize
	minutes := (requests + 9) / 10
	if minutes < 1 {
		return 1
	}
	return minutes
}

func actualMinutes(elapsed time.Duration) int {
	minutes := int(math.Round(elapsed.Seconds() / 60))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func (e *Extractor) Extract(ctx context.Context, logger lager.Logger) (Result, error) {
	logger = logger.Session("extract", lager.Data{
		"channel": e.cfg.ChannelID,
		"limit":   e.cfg.MessageLimit,
		"start":   e.cfg.StartDate,
		"end":     e.cfg.EndDate,
	})

	estimated := EstimateMinutes(e.cfg.MessageLimit)
	logger.Info("starting", lager.Data{"estimated-minutes": estimated})
	started := e.clock.Now()

	if err := e.loadChannelMembers(ctx, logger); err != nil {
		logger.Error("failed", err)
		return Result{}, err
	}

	messages, err := e.fetchMessages(ctx, logger)
	if err != nil {
		err = Classify(err)
		logger.Error("failed", err)
		return Result{}, err
	}

	formatted, err := e.formatMessages(ctx, logger, messages)
	if err != nil {
		logger.Error("failed", err)
		return Result{}, err
	}

	stats := Stats{
		TotalMessages:    len(messages),
		TotalReplies:     countReplies(messages),
		EstimatedMinutes: estimated,
		ActualMinutes:    actualMinutes(e.clock.Since(started)),
	}

	logger.Info("done", lager.Data{
		"messages": stats.TotalMessages,
		"replies":  stats.TotalReplies,
	})

	return Result{Messages: formatted, Stats: stats}, nil
}

// withRetry calls fn until it returns something other than a rate limit
// error. There is no bound on attempts.
func (e *Extractor) withRetry(ctx context.Context, logger lager.Logger, fn func() error) error {
	for {
		err := fn()

		var rateLimited *slack.RateLimitedError
		if !errors.As(err, &rateLimited) {
			return err
		}

		if err := e.waitOut(ctx, logger, rateLimited); err != nil {
			return err
		}
	}
}

func (e *Extractor) waitOut(ctx context.Context, logger lager.Logger, rateLimited *slack.RateLimitedError) error {
	wait := rateLimited.RetryAfter
	if wait <= 0 {
		wait = DefaultRetryAfter
	}

	logger.Info("rate-limited", lager.Data{"retry-after": wait.String()})

	timer := e.clock.NewTimer(wait)
	select {
	case <-timer.C():
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}

func (e *Extractor) loadChannelMembers(ctx context.Context, logger lager.Logger) error {
	logger = logger.Session("load-channel-members")
	logger.Debug("starting")

	var members []string
	cursor := ""
	for {
		var (
			ids  []string
			next string
		)
		err := e.withRetry(ctx, logger, func() error {
			var err error
			ids, next, err = e.api.GetUsersInConversationContext(ctx, &slack.GetUsersInConversationParameters{
				ChannelID: e.cfg.ChannelID,
				Cursor:    cursor,
			})
			return err
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			logger.Info("falling-back-to-on-demand-users", lager.Data{"error": err.Error()})
			return nil
		}

		members = append(members, ids...)
		if next == "" {
			break
		}
		cursor = next
	}

	for _, id := range members {
		if err := e.loadUser(ctx, logger, id); err != nil {
			return err
		}
	}

	logger.Debug("done", lager.Data{"members": len(members), "users": len(e.users)})
	return nil
}

// loadUser caches the user. Lookup failures register a placeholder so the
// id is used as the display name; only context cancellation is returned.
func (e *Extractor) loadUser(ctx context.Context, logger lager.Logger, id string) error {
	if _, ok := e.users[id]; ok {
		return nil
	}

	var user *slack.User
	err := e.withRetry(ctx, logger, func() error {
		var err error
		user, err = e.api.GetUserInfoContext(ctx, id)
		return err
	})

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err != nil {
		logger.Error("failed-to-load-user", err, lager.Data{"user": id})
		e.users[id] = User{ID: id, Name: id, RealName: id}
		return nil
	}

	if user != nil && user.ID != "" && user.Name != "" {
		e.users[user.ID] = User{ID: user.ID, Name: user.Name, RealName: user.RealName}
	}

	return nil
}

func (e *Extractor) keep(msg slack.Message) bool {
	return msg.User != "" && !e.excluded[msg.User]
}

func convert(msg slack.Message) Message {
	return Message{
		Text:     msg.Text,
		User:     msg.User,
		TS:       msg.Timestamp,
		ThreadTS: msg.ThreadTimestamp,
	}
}

func (e *Extractor) fetchMessages(ctx context.Context, logger lager.Logger) ([]Message, error) {
	logger = logger.Session("fetch-messages")
	logger.Debug("starting")

	oldest := "0"
	if e.cfg.StartDate != "" {
		ts, err := DateToTimestamp(e.cfg.StartDate, false)
		if err != nil {
			return nil, err
		}
		oldest = ts
	}

	latest := ""
	if e.cfg.EndDate != "" {
		ts, err := DateToTimestamp(e.cfg.EndDate, true)
		if err != nil {
			return nil, err
		}
		latest = ts
	}

	var messages []Message
	cursor := ""
	requests := 0

	for {
		var resp *slack.GetConversationHistoryResponse
		err := e.withRetry(ctx, logger, func() error {
			requests++
			var err error
			resp, err = e.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
				ChannelID: e.cfg.ChannelID,
				Cursor:    cursor,
				Limit:     PageSize,
				Oldest:    oldest,
				Latest:    latest,
			})
			return err
		})
		if err != nil {
			logger.Error("failed", err, lager.Data{"requests": requests})
			return nil, err
		}

		for _, msg := range resp.Messages {
			if len(messages) >= e.cfg.MessageLimit {
				break
			}

			if !e.keep(msg) {
				continue
			}

			m := convert(msg)
			if m.ThreadTS != "" && m.ThreadTS == m.TS {
				replies, err := e.fetchReplies(ctx, logger, m.ThreadTS)
				if err != nil {
					return nil, err
				}
				m.Replies = replies
			}

			messages = append(messages, m)
		}

		logger.Debug("fetched-page", lager.Data{"request": requests, "total": len(messages)})

		cursor = resp.ResponseMetaData.NextCursor
		if cursor == "" || len(messages) >= e.cfg.MessageLimit {
			break
		}
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	logger.Debug("done", lager.Data{"messages": len(messages), "requests": requests})
	return messages, nil
}

// fetchReplies drops the thread parent. Failures other than cancellation
// yield no replies.
func (e *Extractor) fetchReplies(ctx context.Context, logger lager.Logger, threadTS string) ([]Message, error) {
	logger = logger.Session("fetch-replies", lager.Data{"thread-ts": threadTS})

	var msgs []slack.Message
	err := e.withRetry(ctx, logger, func() error {
		var err error
		msgs, _, _, err = e.api.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
			ChannelID: e.cfg.ChannelID,
			Timestamp: threadTS,
			Limit:     PageSize,
		})
		return err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err != nil {
		logger.Error("failed", err)
		return nil, nil
	}

	if len(msgs) < 2 {
		return nil, nil
	}

	var replies []Message
	for _, msg := range msgs[1:] {
		if e.keep(msg) {
			replies = append(replies, convert(msg))
		}
	}

	return replies, nil
}

func (e *Extractor) displayName(id string) string {
	if user, ok := e.users[id]; ok {
		return user.DisplayName()
	}
	return id
}

func (e *Extractor) formatText(ctx context.Context, logger lager.Logger, text string) (string, error) {
	for _, id := range MentionedUsers(text) {
		if err := e.loadUser(ctx, logger, id); err != nil {
			return "", err
		}
	}

	return ReplaceMentions(text, e.displayName), nil
}

func (e *Extractor) formatMessage(ctx context.Context, logger lager.Logger, msg Message, isReply bool) (FormattedMessage, error) {
	if err := e.loadUser(ctx, logger, msg.User); err != nil {
		return FormattedMessage{}, err
	}

	text, err := e.formatText(ctx, logger, msg.Text)
	if err != nil {
		return FormattedMessage{}, err
	}

	formatted := FormattedMessage{
		Timestamp: FormatTimestamp(msg.TS, e.cfg.Location),
		Username:  e.displayName(msg.User),
		Text:      text,
		IsReply:   isReply,
	}

	if !isReply {
		formatted.URL = Permalink(e.cfg.Workspace, e.cfg.ChannelID, msg.TS, msg.ThreadTS)
	}

	return formatted, nil
}

func (e *Extractor) formatMessages(ctx context.Context, logger lager.Logger, messages []Message) ([]FormattedMessage, error) {
	logger = logger.Session("format-messages")

	var formatted []FormattedMessage
	for _, msg := range messages {
		f, err := e.formatMessage(ctx, logger, msg, false)
		if err != nil {
			return nil, err
		}
		formatted = append(formatted, f)

		for _, reply := range msg.Replies {
			f, err := e.formatMessage(ctx, logger, reply, true)
			if err != nil {
				return nil, err
			}
			formatted = append(formatted, f)
		}
	}

	return formatted, nil
}

func countReplies(messages []Message) int {
	count := 0
	for _, m := range messages {
		count += len(m.Replies)
	}
	return count
}
