package export

import (
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/models"
)

const csvDateLayout = "2006-01-02 15:04:05"

var pullRequestColumns = []string{
	"pr_number",
	"title",
	"url",
	"repository_name",
	"author",
	"state",
	"created_at",
	"updated_at",
	"merged_at",
	"closed_at",
	"additions",
	"deletions",
	"changed_files",
	"labels",
	"milestone",
	"assignees",
	"comments_count",
	"reviews_count",
	"review_threads_count",
	"time_to_merge_minutes",
	"time_to_first_approval_minutes",
	"first_approval_at",
	"first_approver",
	"ready_for_review_at",
}

var reviewSummaryColumns = []string{
	"user",
	"period_start",
	"period_end",
	"reviewed_pr_count",
	"submitted_review_action_count",
	"total_review_comments_given",
}

var combinedColumns = []string{
	"pr_number",
	"title",
	"url",
	"repository_name",
	"author",
	"state",
	"created_at",
	"merged_at",
	"additions",
	"deletions",
	"changed_files",
	"time_to_merge_minutes",
	"time_to_first_approval_minutes",
	"comments_count",
	"reviews_count",
	"labels",
	"assignees",
}

var combinedReviewerColumns = []string{
	"reviewer_user",
	"reviewer_pr_count",
	"reviewer_action_count",
	"reviewer_comments_given",
}

type CSVOptions struct {
	OutputDir   string
	Filename    string
	OmitHeaders bool
}

// CSVExporter writes files meant for spreadsheet and BI imports: every
// string cell is quoted, numbers are not.
type CSVExporter struct {
	clock    clock.Clock
	location *time.Location
}

func NewCSVExporter(clock clock.Clock, location *time.Location) *CSVExporter {
	if location == nil {
		location = time.Local
	}

	return &CSVExporter{
		clock:    clock,
		location: location,
	}
}

func quote(value string) string {
	if value == "" {
		return ""
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func number(n int) string {
	return strconv.Itoa(n)
}

func minutes(m *float64) string {
	if m == nil || *m == 0 {
		return ""
	}
	return strconv.FormatFloat(*m, 'f', -1, 64)
}

func (e *CSVExporter) date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return quote(t.In(e.location).Format(csvDateLayout))
}

func (e *CSVExporter) datePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return e.date(*t)
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return quote(*s)
}

func (e *CSVExporter) defaultFilename(kind string) string {
	stamp := e.clock.Now().UTC().Format("2006-01-02T15-04-05")
	return kind + "_" + stamp + ".csv"
}

func encode(headers []string, rows [][]string, omitHeaders bool) string {
	var b strings.Builder

	if !omitHeaders {
		b.WriteString(strings.Join(headers, ","))
		b.WriteString("\n")
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

func (e *CSVExporter) write(logger lager.Logger, kind string, headers []string, rows [][]string, opts CSVOptions) (string, error) {
	logger = logger.Session("export-csv", lager.Data{"kind": kind, "rows": len(rows)})
	logger.Debug("starting")

	name := opts.Filename
	if name == "" {
		name = e.defaultFilename(kind)
	}

	path, err := WriteText(opts.OutputDir, name, encode(headers, rows, opts.OmitHeaders))
	if err != nil {
		logger.Error("failed", err)
		return "", err
	}

	logger.Info("done", lager.Data{"path": path})
	return path, nil
}

func (e *CSVExporter) pullRequestRow(pr models.PullRequest) []string {
	milestone := ""
	if pr.Milestone != nil {
		milestone = pr.Milestone.Title
	}

	return []string{
		number(pr.Number),
		quote(pr.Title),
		quote(pr.URL),
		quote(pr.Repository.NameWithOwner),
		quote(pr.Author.Login),
		quote(pr.State),
		e.date(pr.CreatedAt),
		e.date(pr.UpdatedAt),
		e.datePtr(pr.MergedAt),
		e.datePtr(pr.ClosedAt),
		number(pr.Additions),
		number(pr.Deletions),
		number(pr.ChangedFiles),
		quote(strings.Join(pr.LabelNames(), ";")),
		quote(milestone),
		quote(strings.Join(pr.AssigneeLogins(), ";")),
		number(pr.CommentsCount),
		number(pr.ReviewsCount),
		number(pr.ReviewThreadsCount),
		minutes(pr.TimeToMergeMinutes),
		minutes(pr.TimeToFirstApprovalMinutes),
		e.datePtr(pr.FirstApprovalAt),
		optional(pr.FirstApprover),
		e.date(pr.ReadyForReviewAt),
	}
}

func (e *CSVExporter) PullRequests(logger lager.Logger, prs []models.PullRequest, opts CSVOptions) (string, error) {
	rows := make([][]string, 0, len(prs))
	for _, pr := range prs {
		rows = append(rows, e.pullRequestRow(pr))
	}

	return e.write(logger, "pull_requests", pullRequestColumns, rows, opts)
}

// AllUsersPullRequests has the same layout as PullRequests; only the default
// filename differs.
func (e *CSVExporter) AllUsersPullRequests(logger lager.Logger, prs []models.PullRequest, opts CSVOptions) (string, error) {
	rows := make([][]string, 0, len(prs))
	for _, pr := range prs {
		rows = append(rows, e.pullRequestRow(pr))
	}

	return e.write(logger, "all_users_pull_requests", pullRequestColumns, rows, opts)
}

func (e *CSVExporter) ReviewSummaries(logger lager.Logger, summaries []models.ReviewSummary, opts CSVOptions) (string, error) {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			quote(s.User),
			quote(s.PeriodStart),
			quote(s.PeriodEnd),
			number(s.ReviewedPRCount),
			number(s.SubmittedReviewActionCount),
			number(s.TotalReviewCommentsGiven),
		})
	}

	return e.write(logger, "review_summary", reviewSummaryColumns, rows, opts)
}

// Combined appends the reviewer columns to every row when summary is set.
func (e *CSVExporter) Combined(logger lager.Logger, prs []models.PullRequest, summary *models.ReviewSummary, opts CSVOptions) (string, error) {
	headers := combinedColumns
	if summary != nil {
		headers = append(append([]string{}, combinedColumns...), combinedReviewerColumns...)
	}

	rows := make([][]string, 0, len(prs))
	for _, pr := range prs {
		row := []string{
			number(pr.Number),
			quote(pr.Title),
			quote(pr.URL),
			quote(pr.Repository.NameWithOwner),
			quote(pr.Author.Login),
			quote(pr.State),
			e.date(pr.CreatedAt),
			e.datePtr(pr.MergedAt),
			number(pr.Additions),
			number(pr.Deletions),
			number(pr.ChangedFiles),
			minutes(pr.TimeToMergeMinutes),
			minutes(pr.TimeToFirstApprovalMinutes),
			number(pr.CommentsCount),
			number(pr.ReviewsCount),
			quote(strings.Join(pr.LabelNames(), ";")),
			quote(strings.Join(pr.AssigneeLogins(), ";")),
		}

		if summary != nil {
			row = append(row,
				quote(summary.User),
				number(summary.ReviewedPRCount),
				number(summary.SubmittedReviewActionCount),
				number(summary.TotalReviewCommentsGiven),
			)
		}

		rows = append(rows, row)
	}

	return e.write(logger, "combined_analysis", headers, rows, opts)
}
