package redact

import (
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/devscope/devscope/redact/matchers"
)

const Placeholder = "[REDACTED]"

const fakePattern = `FAKE`
const examplePattern = `EXAMPLE`

const awsAccessKeyIDPattern = `AKIA[A-Z0-9]{16}`
const awsSecretAccessKeyPattern = `KEY["']?\s*(?::|=>|=)\s*["']?[A-Z0-9/\+=]{40}["']?`
const slackTokenPattern = `XOX[ABPRSO]-[A-Z0-9-]{10,}`
const githubTokenPattern = `GH[PORSU]_[A-Z0-9]{36,}`
const cryptSHA256Pattern = `\$5\$[A-Z0-9./]{1,16}\$[A-Z0-9./]{43}`
const cryptSHA512Pattern = `\$6\$[A-Z0-9./]{1,16}\$[A-Z0-9./]{86}`
const privateKeyHeaderPattern = `-----BEGIN(.*)PRIVATE KEY-----`

type Violation struct {
	LineNumber int
	Line       string
	Start      int
	End        int
}

func (v Violation) Credential() string {
	return v.Line[v.Start:v.End]
}

type ViolationHandlerFunc func(lager.Logger, Violation) error

// Redactor finds credentials pasted into free text.
type Redactor struct {
	matcher          matchers.Matcher
	exclusionMatcher matchers.Matcher
}

func NewRedactor(matcher, exclusionMatcher matchers.Matcher) *Redactor {
	return &Redactor{
		matcher:          matcher,
		exclusionMatcher: exclusionMatcher,
	}
}

func NewDefaultRedactor() *Redactor {
	return &Redactor{
		matcher: matchers.UpcasedMulti(
			matchers.Filter(matchers.Format(awsAccessKeyIDPattern), "AKIA"),
			matchers.Format(awsSecretAccessKeyPattern),
			matchers.Filter(matchers.Format(slackTokenPattern), "XOX"),
			matchers.Filter(matchers.Format(githubTokenPattern), "GHP_", "GHO_", "GHR_", "GHS_", "GHU_"),
			matchers.Filter(matchers.Format(cryptSHA256Pattern), "$5$"),
			matchers.Filter(matchers.Format(cryptSHA512Pattern), "$6$"),
			matchers.Format(privateKeyHeaderPattern),
		),
		exclusionMatcher: matchers.UpcasedMulti(
			matchers.Substring(fakePattern),
			matchers.Substring(examplePattern),
		),
	}
}

// credentials drops the spans that carry a FAKE or EXAMPLE marker themselves.
func (r *Redactor) credentials(line []byte) []matchers.Span {
	spans := r.matcher.Spans(line)
	if r.exclusionMatcher == nil {
		return spans
	}

	kept := spans[:0]
	for _, s := range spans {
		if match, _, _ := r.exclusionMatcher.Match(line[s.Start:s.End]); match {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// Redact replaces every credential in text and reports how many it replaced.
func (r *Redactor) Redact(logger lager.Logger, text string) (string, int) {
	logger = logger.Session("redact")

	lines := strings.Split(text, "\n")
	count := 0

	for i, line := range lines {
		spans := r.credentials([]byte(line))
		if len(spans) == 0 {
			continue
		}

		var b strings.Builder
		prev := 0
		for _, s := range spans {
			b.WriteString(line[prev:s.Start])
			b.WriteString(Placeholder)
			prev = s.End
		}
		b.WriteString(line[prev:])

		lines[i] = b.String()
		count += len(spans)
	}

	if count > 0 {
		logger.Info("redacted", lager.Data{"count": count})
	}

	return strings.Join(lines, "\n"), count
}

// Sniff reports the first credential of every line to handleViolation.
func (r *Redactor) Sniff(
	logger lager.Logger,
	lines []string,
	handleViolation ViolationHandlerFunc,
) error {
	logger = logger.Session("sniff")
	logger.Debug("starting")

	var result error

	for i, line := range lines {
		if spans := r.credentials([]byte(line)); len(spans) > 0 {
			violation := Violation{
				LineNumber: i + 1,
				Line:       line,
				Start:      spans[0].Start,
				End:        spans[0].End,
			}

			err := handleViolation(logger, violation)
			if err != nil {
				logger.Error("failed", err)
				result = multierror.Append(result, err)
			}
		}
	}

	logger.Debug("done")
	return result
}
