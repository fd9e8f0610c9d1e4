package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/models"
)

const (
	DefaultSheet = "Sheet1"

	dataColumns = "A1:X1000"
	keyColumns  = "A1:D1000"
	dateLayout  = "2006-01-02T15:04:05"
)

var headers = []interface{}{
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

type Appender struct {
	values        ValuesAPI
	spreadsheetID string
	location      *time.Location
}

func NewAppender(values ValuesAPI, spreadsheetID string, location *time.Location) *Appender {
	if location == nil {
		location = tokyo()
	}

	return &Appender{
		values:        values,
		spreadsheetID: spreadsheetID,
		location:      location,
	}
}

func tokyo() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

func sheetRange(sheet, cells string) string {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(sheet, "'", "''"), cells)
}

func (a *Appender) date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(a.location).Format(dateLayout)
}

func (a *Appender) datePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return a.date(*t)
}

func minutes(m *float64) interface{} {
	if m == nil || *m == 0 {
		return ""
	}
	return *m
}

func (a *Appender) row(pr models.PullRequest) []interface{} {
	milestone := ""
	if pr.Milestone != nil {
		milestone = pr.Milestone.Title
	}

	approver := ""
	if pr.FirstApprover != nil {
		approver = *pr.FirstApprover
	}

	return []interface{}{
		pr.Number,
		pr.Title,
		pr.URL,
		pr.Repository.NameWithOwner,
		pr.Author.Login,
		pr.State,
		a.date(pr.CreatedAt),
		a.date(pr.UpdatedAt),
		a.datePtr(pr.MergedAt),
		a.datePtr(pr.ClosedAt),
		pr.Additions,
		pr.Deletions,
		pr.ChangedFiles,
		strings.Join(pr.LabelNames(), ";"),
		milestone,
		strings.Join(pr.AssigneeLogins(), ";"),
		pr.CommentsCount,
		pr.ReviewsCount,
		pr.ReviewThreadsCount,
		minutes(pr.TimeToMergeMinutes),
		minutes(pr.TimeToFirstApprovalMinutes),
		a.datePtr(pr.FirstApprovalAt),
		approver,
		a.date(pr.ReadyForReviewAt),
	}
}

// AppendPullRequests appends one row per pull request below the existing
// data, writing the header row first when the sheet is empty.
func (a *Appender) AppendPullRequests(ctx context.Context, logger lager.Logger, prs []models.PullRequest, sheet string) (int, error) {
	logger = logger.Session("append-pull-requests", lager.Data{
		"spreadsheet": a.spreadsheetID,
		"sheet":       sheet,
	})
	logger.Info("starting")

	if len(prs) == 0 {
		logger.Info("nothing-to-append")
		return 0, nil
	}

	existing, err := a.values.Get(ctx, a.spreadsheetID, sheetRange(sheet, dataColumns))
	if err != nil {
		logger.Error("failed", err)
		return 0, err
	}

	rows := make([][]interface{}, 0, len(prs)+1)
	if len(existing) == 0 {
		rows = append(rows, headers)
	}
	for _, pr := range prs {
		rows = append(rows, a.row(pr))
	}

	if err := a.values.Append(ctx, a.spreadsheetID, sheetRange(sheet, dataColumns), rows); err != nil {
		logger.Error("failed", err)
		return 0, err
	}

	logger.Info("done", lager.Data{"appended": len(prs)})
	return len(prs), nil
}

// AppendNewPullRequests skips pull requests whose repository and number are
// already on the sheet.
func (a *Appender) AppendNewPullRequests(ctx context.Context, logger lager.Logger, prs []models.PullRequest, sheet string) (int, error) {
	logger = logger.Session("append-new-pull-requests", lager.Data{
		"spreadsheet": a.spreadsheetID,
		"sheet":       sheet,
	})

	existing := a.existingKeys(ctx, logger, sheet)

	var fresh []models.PullRequest
	for _, pr := range prs {
		if _, ok := existing[pr.Key()]; !ok {
			fresh = append(fresh, pr)
		}
	}

	logger.Info("filtered", lager.Data{"total": len(prs), "new": len(fresh)})

	return a.AppendPullRequests(ctx, logger, fresh, sheet)
}

func cell(v interface{}) string {
	switch c := v.(type) {
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(c)
	}
}

func (a *Appender) existingKeys(ctx context.Context, logger lager.Logger, sheet string) map[string]struct{} {
	keys := map[string]struct{}{}

	rows, err := a.values.Get(ctx, a.spreadsheetID, sheetRange(sheet, keyColumns))
	if err != nil {
		logger.Error("failed-to-read-existing-rows", err)
		return keys
	}

	for i, row := range rows {
		if i == 0 || len(row) < 4 {
			continue
		}

		number, repo := cell(row[0]), cell(row[3])
		if number == "" || repo == "" {
			continue
		}

		keys[repo+"#"+number] = struct{}{}
	}

	return keys
}
