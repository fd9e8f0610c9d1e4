package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/slackextract"
)

const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var ErrUnknownFormat = errors.New("unknown output format (expected text, json or markdown)")

func processingMinutes(stats slackextract.Stats) int {
	if stats.ActualMinutes > 0 {
		return stats.ActualMinutes
	}
	return stats.EstimatedMinutes
}

func generatedAt(now time.Time) string {
	return now.In(slackextract.DefaultLocation()).Format(slackextract.TimestampLayout)
}

func RenderText(result slackextract.Result, now time.Time) string {
	var b strings.Builder

	fmt.Fprintln(&b, "# Slack Messages Export")
	fmt.Fprintf(&b, "# Generated: %s\n", generatedAt(now))
	fmt.Fprintf(&b, "# Total Messages: %d\n", result.Stats.TotalMessages)
	fmt.Fprintf(&b, "# Total Replies: %d\n", result.Stats.TotalReplies)
	fmt.Fprintf(&b, "# Processing Time: %d minutes\n", processingMinutes(result.Stats))
	fmt.Fprintln(&b, "# ==========================================")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b)

	lines := make([]string, 0, len(result.Messages))
	for _, m := range result.Messages {
		prefix := "- "
		if m.IsReply {
			prefix = "  - "
		}
		lines = append(lines, fmt.Sprintf("%s[%s] %s: %s", prefix, m.Timestamp, m.Username, m.Text))
	}

	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	return b.String()
}

type slackDocument struct {
	GeneratedAt string                          `json:"generated_at"`
	Stats       slackextract.Stats              `json:"stats"`
	Messages    []slackextract.FormattedMessage `json:"messages"`
}

func RenderJSON(result slackextract.Result, now time.Time) (string, error) {
	messages := result.Messages
	if messages == nil {
		messages = []slackextract.FormattedMessage{}
	}

	bs, err := json.MarshalIndent(slackDocument{
		GeneratedAt: generatedAt(now),
		Stats:       result.Stats,
		Messages:    messages,
	}, "", "  ")
	if err != nil {
		return "", err
	}

	return string(bs) + "\n", nil
}

func RenderMarkdown(result slackextract.Result, now time.Time) string {
	var b strings.Builder

	fmt.Fprintln(&b, "# Slack Messages Export")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Generated: %s\n", generatedAt(now))
	fmt.Fprintf(&b, "- Total Messages: %d\n", result.Stats.TotalMessages)
	fmt.Fprintf(&b, "- Total Replies: %d\n", result.Stats.TotalReplies)
	fmt.Fprintf(&b, "- Processing Time: %d minutes\n", processingMinutes(result.Stats))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "## Messages")
	fmt.Fprintln(&b)

	for _, m := range result.Messages {
		if m.IsReply {
			fmt.Fprintf(&b, "  - **%s** %s: %s\n", m.Username, m.Timestamp, m.Text)
			continue
		}

		stamp := m.Timestamp
		if m.URL != "" {
			stamp = fmt.Sprintf("[%s](%s)", m.Timestamp, m.URL)
		}
		fmt.Fprintf(&b, "- **%s** %s: %s\n", m.Username, stamp, m.Text)
	}

	return b.String()
}

func Render(format string, result slackextract.Result, now time.Time) (string, error) {
	switch format {
	case FormatText:
		return RenderText(result, now), nil
	case FormatJSON:
		return RenderJSON(result, now)
	case FormatMarkdown:
		return RenderMarkdown(result, now), nil
	}
	return "", ErrUnknownFormat
}

func WriteSlackMessages(logger lager.Logger, path, format string, result slackextract.Result, now time.Time) error {
	logger = logger.Session("write-slack-messages", lager.Data{"path": path, "format": format})
	logger.Debug("starting")

	content, err := Render(format, result, now)
	if err != nil {
		logger.Error("failed", err)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("failed", err)
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		logger.Error("failed", err)
		return err
	}

	logger.Debug("done", lager.Data{"bytes": len(content)})
	return nil
}
