package notionsync

import (
	"context"
	"time"

	"github.com/jomei/notionapi"

	"github.com/devscope/devscope/models"
)

// Columns of the pull request database.
const (
	PropertyTitle        = "プルリク名"
	PropertyAuthor       = "作成者"
	PropertyDeletions    = "削除行数"
	PropertyCreatedAt    = "作成日"
	PropertyChangedFiles = "修正ファイル"
	PropertyAdditions    = "追加行数"
	PropertyMergedAt     = "マージ時間"
	PropertyURL          = "URL"
	PropertyLeadTime     = "リードタイム(h)"
	PropertyApprovals    = "Approve時間"
)

const approvalLayout = "2006-01-02 15:04"

//go:generate counterfeiter . PageCreator

type PageCreator interface {
	Create(ctx context.Context, request *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

func date(t time.Time, location *time.Location) notionapi.DateProperty {
	d := notionapi.Date(t.In(location).Truncate(time.Minute))
	return notionapi.DateProperty{Date: &notionapi.DateObject{Start: &d}}
}

func text(content string) notionapi.RichText {
	return notionapi.RichText{Text: &notionapi.Text{Content: content}}
}

// NewPageRequest describes one merged pull request as a database row. Times
// are shown in location to the minute.
func NewPageRequest(databaseID string, pr models.MergedPullRequest, location *time.Location) *notionapi.PageCreateRequest {
	approvals := make([]notionapi.RichText, 0, 2*len(pr.Approvals))
	for _, a := range pr.Approvals {
		reviewer := text(a.Reviewer + ": ")
		reviewer.Annotations = &notionapi.Annotations{Bold: true, Color: notionapi.ColorDefault}

		approvals = append(approvals,
			reviewer,
			text(a.ApprovedAt.In(location).Format(approvalLayout)+"\n"),
		)
	}

	properties := notionapi.Properties{
		PropertyTitle: notionapi.TitleProperty{
			Title: []notionapi.RichText{text(pr.Title)},
		},
		PropertyAuthor: notionapi.SelectProperty{
			Select: notionapi.Option{Name: pr.Author.Login},
		},
		PropertyDeletions:    notionapi.NumberProperty{Number: float64(pr.Deletions)},
		PropertyCreatedAt:    date(pr.CreatedAt, location),
		PropertyChangedFiles: notionapi.NumberProperty{Number: float64(pr.ChangedFiles)},
		PropertyAdditions:    notionapi.NumberProperty{Number: float64(pr.Additions)},
		PropertyURL:          notionapi.URLProperty{URL: pr.URL},
		PropertyLeadTime:     notionapi.NumberProperty{Number: pr.LeadTimeHours()},
		PropertyApprovals:    notionapi.RichTextProperty{RichText: approvals},
	}

	if pr.MergedAt != nil {
		properties[PropertyMergedAt] = date(*pr.MergedAt, location)
	}

	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: properties,
	}
}
