package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/slack-go/slack"

	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/export"
	"github.com/devscope/devscope/redact"
	"github.com/devscope/devscope/slackextract"
)

type SlackCommand struct {
	Extract SlackExtractCommand `command:"extract" description:"Extract messages from a Slack channel"`
	Config  SlackConfigCommand  `command:"config" description:"Show current configuration and help"`
}

type SlackExtractCommand struct {
	Channel         string   `short:"c" long:"channel" description:"slack channel id (e.g. C1234567890)" env:"DEFAULT_CHANNEL_ID" value-name:"CHANNEL_ID"`
	Token           string   `short:"t" long:"token" description:"slack bot token" env:"SLACK_BOT_TOKEN" value-name:"TOKEN"`
	Output          string   `short:"o" long:"output" description:"output file" default:"slack-messages.txt" value-name:"PATH"`
	Format          string   `short:"f" long:"format" description:"output format" choice:"text" choice:"json" choice:"markdown" default:"text"`
	Limit           int      `short:"l" long:"limit" description:"maximum number of messages to extract" default:"100" value-name:"N"`
	Exclude         []string `short:"e" long:"exclude" description:"comma separated user ids to exclude" value-name:"USER_IDS"`
	StartDate       string   `long:"start-date" description:"first day to extract (YYYY-MM-DD)" value-name:"DATE"`
	EndDate         string   `long:"end-date" description:"last day to extract (YYYY-MM-DD)" value-name:"DATE"`
	Workspace       string   `short:"w" long:"workspace" description:"slack workspace used for message links" env:"SLACK_WORKSPACE" value-name:"NAME"`
	ShowCredentials bool     `long:"show-suspected-credentials" description:"do not redact credentials found in messages"`
	APIURL          string   `long:"slack-api-url" description:"slack web api endpoint" default:"https://slack.com/api/" value-name:"URL" hidden:"true"`
	Debug           bool     `long:"debug" description:"enables debug logging"`
}

func (command *SlackExtractCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := newLogger("slack", command.Debug)

	envExcluded := config.SplitList(os.Getenv("EXCLUDED_USER_IDS"))
	cliExcluded := config.SplitList(command.Exclude...)
	excluded := append(append([]string{}, envExcluded...), cliExcluded...)

	if err := command.validate(); err != nil {
		return err
	}

	start, end := command.StartDate, command.EndDate
	if start == "" {
		start = "All time"
	}
	if end == "" {
		end = "Now"
	}

	say(cyan("Configuration:"))
	sayf("   Channel ID: %s\n", command.Channel)
	sayf("   Message limit: %d\n", command.Limit)
	sayf("   Output file: %s\n", command.Output)
	sayf("   Date range: %s to %s\n", start, end)
	sayf("   Excluded users from ENV: %s\n", orNone(strings.Join(envExcluded, ", ")))
	sayf("   Excluded users from CLI: %s\n", orNone(strings.Join(cliExcluded, ", ")))
	sayf("   Total excluded users: %s\n", orNone(strings.Join(excluded, ", ")))
	sayf("   Estimated time: about %d minute(s)\n", slackextract.EstimateMinutes(command.Limit))
	say()

	api := slack.New(command.Token, slack.OptionAPIURL(command.APIURL))
	clk := clock.NewClock()

	extractor := slackextract.NewExtractor(api, clk, slackextract.Config{
		ChannelID:       command.Channel,
		Workspace:       command.Workspace,
		ExcludedUserIDs: excluded,
		MessageLimit:    command.Limit,
		StartDate:       command.StartDate,
		EndDate:         command.EndDate,
	})

	result, err := extractor.Extract(context.Background(), logger)
	if err != nil {
		return err
	}

	if command.ShowCredentials {
		reportCredentials(logger, result.Messages)
	} else {
		redactMessages(logger, result.Messages)
	}

	if err := export.WriteSlackMessages(logger, command.Output, command.Format, result, clk.Now()); err != nil {
		return err
	}

	sayf("%s %d messages (%d replies) written to %s\n",
		green("[DONE]"), result.Stats.TotalMessages, result.Stats.TotalReplies, command.Output)

	return nil
}

func (command *SlackExtractCommand) validate() error {
	var errs []error

	if command.Token == "" {
		errs = append(errs, errors.New("slack bot token is required: set SLACK_BOT_TOKEN or use --token"))
	}

	if command.Channel == "" {
		errs = append(errs, errors.New("channel id is required: use --channel"))
	}

	if command.Limit <= 0 {
		errs = append(errs, errors.New("limit must be positive"))
	}

	for _, date := range []string{command.StartDate, command.EndDate} {
		if date != "" && !config.ValidDate(date) {
			errs = append(errs, fmt.Errorf("%q: %w", date, config.ErrInvalidDate))
		}
	}

	return validationError(errs)
}

func redactMessages(logger lager.Logger, messages []slackextract.FormattedMessage) {
	redactor := redact.NewDefaultRedactor()

	total := 0
	for i := range messages {
		text, count := redactor.Redact(logger, messages[i].Text)
		messages[i].Text = text
		total += count
	}

	if total > 0 {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), fmt.Sprintf("Redacted %d suspected credential(s). Use --show-suspected-credentials to keep them.", total))
	}
}

// reportCredentials points at the messages that still carry credentials.
func reportCredentials(logger lager.Logger, messages []slackextract.FormattedMessage) {
	redactor := redact.NewDefaultRedactor()

	for _, message := range messages {
		lines := strings.Split(message.Text, "\n")
		redactor.Sniff(logger, lines, func(logger lager.Logger, v redact.Violation) error {
			logger.Info("suspected-credential", lager.Data{
				"timestamp": message.Timestamp,
				"line":      v.LineNumber,
			})
			fmt.Fprintf(os.Stderr, "%s suspected credential in message from %s at %s (line %d)\n",
				yellow("[WARN]"), message.Username, message.Timestamp, v.LineNumber)
			return nil
		})
	}
}

type SlackConfigCommand struct{}

func (command *SlackConfigCommand) Execute(args []string) error {
	warnIfOldExecutable()

	set := func(name string) string {
		if os.Getenv(name) != "" {
			return green("set")
		}
		return red("not set")
	}
	value := func(name string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		return red("not set")
	}

	say(cyan("Slack extractor configuration"))
	say()
	say("Environment variables:")
	say("  SLACK_BOT_TOKEN    - slack bot token (required)")
	say("  DEFAULT_CHANNEL_ID - channel id used when --channel is omitted")
	say("  EXCLUDED_USER_IDS  - comma separated user ids to exclude")
	say("  SLACK_WORKSPACE    - workspace name used for message links")
	say()
	say("Required Slack app scopes:")
	say("  channels:history - read messages in public channels")
	say("  groups:history   - read messages in private channels")
	say("  im:history       - read direct messages")
	say("  mpim:history     - read group direct messages")
	say("  users:read       - resolve user names")
	say()
	say("API rate limits (for non-approved apps):")
	say("  conversations.history and conversations.replies allow about 1 request per minute.")
	say("  Rate limited requests wait for Retry-After (60 seconds when absent) and retry.")
	say()
	say("Example usage:")
	say("  devscope slack extract --channel C1234567890 --limit 50 --output messages.txt")
	say("  devscope slack extract -c C1234567890 -l 100 -e U1111111111,U2222222222")
	say()
	say("Current environment:")
	sayf("  SLACK_BOT_TOKEN: %s\n", set("SLACK_BOT_TOKEN"))
	sayf("  DEFAULT_CHANNEL_ID: %s\n", value("DEFAULT_CHANNEL_ID"))
	sayf("  EXCLUDED_USER_IDS: %s\n", value("EXCLUDED_USER_IDS"))
	sayf("  SLACK_WORKSPACE: %s\n", value("SLACK_WORKSPACE"))

	return nil
}
