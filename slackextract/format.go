package slackextract

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var mentionPattern = regexp.MustCompile(`<@([A-Z0-9]+)>`)

var (
	ErrInvalidAuth     = errors.New("slack authentication failed: check SLACK_BOT_TOKEN")
	ErrChannelNotFound = errors.New("channel not found: check the channel id")
	ErrNotInChannel    = errors.New("bot is not a member of the channel: invite it first")
)

// Classify maps slack api error codes onto the errors above.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "invalid_auth"),
		strings.Contains(msg, "not_authed"),
		strings.Contains(msg, "token_revoked"),
		strings.Contains(msg, "account_inactive"):
		return fmt.Errorf("%w (%s)", ErrInvalidAuth, msg)
	case strings.Contains(msg, "channel_not_found"):
		return fmt.Errorf("%w (%s)", ErrChannelNotFound, msg)
	case strings.Contains(msg, "not_in_channel"):
		return fmt.Errorf("%w (%s)", ErrNotInChannel, msg)
	}

	return err
}

// DateToTimestamp converts YYYY-MM-DD (UTC) into a slack epoch timestamp.
// With endOfDay the last second of that day is used.
func DateToTimestamp(date string, endOfDay bool) (string, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}

	return strconv.FormatInt(t.Unix(), 10), nil
}

func parseTS(ts string) (time.Time, bool) {
	secs := ts
	if i := strings.IndexByte(ts, '.'); i >= 0 {
		secs = ts[:i]
	}

	n, err := strconv.ParseInt(secs, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	return time.Unix(n, 0), true
}

func FormatTimestamp(ts string, loc *time.Location) string {
	t, ok := parseTS(ts)
	if !ok {
		return ts
	}
	return t.In(loc).Format(TimestampLayout)
}

func Permalink(workspace, channelID, ts, threadTS string) string {
	link := fmt.Sprintf("https://%s.slack.com/archives/%s/p%s", workspace, channelID, strings.Replace(ts, ".", "", 1))

	if threadTS != "" && threadTS != ts {
		q := url.Values{}
		q.Set("thread_ts", threadTS)
		q.Set("cid", channelID)
		link += "?" + q.Encode()
	}

	return link
}

func MentionedUsers(text string) []string {
	var ids []string
	seen := map[string]bool{}
	for _, m := range mentionPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			ids = append(ids, m[1])
		}
	}
	return ids
}

func ReplaceMentions(text string, displayName func(id string) string) string {
	return mentionPattern.ReplaceAllStringFunc(text, func(m string) string {
		id := mentionPattern.FindStringSubmatch(m)[1]
		return "@" + displayName(id)
	})
}
