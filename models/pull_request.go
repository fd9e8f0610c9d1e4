package models

import (
	"math"
	"strconv"
	"time"
)

const (
	StateOpen   = "OPEN"
	StateClosed = "CLOSED"
	StateMerged = "MERGED"
)

type User struct {
	Login string `json:"login"`
}

type Repository struct {
	NameWithOwner string `json:"nameWithOwner"`
	Owner         User   `json:"owner"`
	Name          string `json:"name"`
}

type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Milestone struct {
	Title string     `json:"title"`
	DueOn *time.Time `json:"due_on"`
}

// PullRequest is one entry of a created_prs_details file.
type PullRequest struct {
	Number     int        `json:"pr_number"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	URL        string     `json:"url"`
	Repository Repository `json:"repository"`
	Author     User       `json:"author"`
	State      string     `json:"state"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	MergedAt  *time.Time `json:"merged_at"`
	ClosedAt  *time.Time `json:"closed_at"`

	Additions    int `json:"additions"`
	Deletions    int `json:"deletions"`
	ChangedFiles int `json:"changed_files"`

	Labels    []Label    `json:"labels"`
	Milestone *Milestone `json:"milestone"`
	Assignees []User     `json:"assignees"`

	CommentsCount      int `json:"comments_on_pr_total_count"`
	ReviewsCount       int `json:"reviews_submitted_total_count"`
	ReviewThreadsCount int `json:"review_threads_total_count"`

	TimeToMergeMinutes         *float64   `json:"time_to_merge_minutes"`
	TimeToFirstApprovalMinutes *float64   `json:"time_to_first_approval_minutes"`
	FirstApprovalAt            *time.Time `json:"first_approval_at"`
	FirstApprover              *string    `json:"first_approver"`
	ReadyForReviewAt           time.Time  `json:"ready_for_review_at"`
}

type Approval struct {
	Reviewer   string    `json:"reviewer"`
	ApprovedAt time.Time `json:"approved_at"`
}

// MergedPullRequest carries every approval, oldest first.
type MergedPullRequest struct {
	PullRequest
	Approvals []Approval `json:"approvals"`
}

// LeadTimeHours is the time from creation to merge, rounded to a tenth of
// an hour.
func (pr MergedPullRequest) LeadTimeHours() float64 {
	if pr.MergedAt == nil {
		return 0
	}
	minutes := math.Floor(pr.MergedAt.Sub(pr.CreatedAt).Minutes())
	return math.Round(minutes/60*10) / 10
}

func (pr PullRequest) Key() string {
	return PullRequestKey(pr.Repository.NameWithOwner, pr.Number)
}

func (pr PullRequest) IsMerged() bool {
	return pr.State == StateMerged
}

func (pr PullRequest) LabelNames() []string {
	names := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		names = append(names, l.Name)
	}
	return names
}

func (pr PullRequest) AssigneeLogins() []string {
	logins := make([]string, 0, len(pr.Assignees))
	for _, a := range pr.Assignees {
		logins = append(logins, a.Login)
	}
	return logins
}

func PullRequestKey(repository string, number int) string {
	return repository + "#" + strconv.Itoa(number)
}
