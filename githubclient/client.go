package githubclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/google/go-github/v72/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/devscope/devscope/models"
)

const (
	DefaultGraphQLURL = "https://api.github.com/graphql"
	DefaultAPIURL     = "https://api.github.com/"
)

var ErrNotFound = errors.New("not found on github")

//go:generate counterfeiter . Client

type Client interface {
	SearchPullRequests(ctx context.Context, logger lager.Logger, query, after string) (PullRequestPage, error)
	UserReviews(ctx context.Context, logger lager.Logger, login, after string) (ReviewPage, error)
	PullRequestTimeline(ctx context.Context, logger lager.Logger, owner, name string, number int) (Timeline, error)
	RepositoryPullRequestStats(ctx context.Context, logger lager.Logger, repository, start, end string) (RepositoryStats, error)
	LatestRelease(ctx context.Context, logger lager.Logger, owner, repo string) (Release, error)
}

type PageInfo struct {
	HasNextPage bool
	EndCursor   string
}

// PullRequest is a search hit. Author and Repository are nil when GitHub
// could not resolve them (deleted users, inaccessible repositories).
type PullRequest struct {
	Number     int
	Title      string
	Body       string
	URL        string
	Repository *models.Repository
	Author     *models.User
	State      string

	CreatedAt time.Time
	UpdatedAt time.Time
	MergedAt  *time.Time
	ClosedAt  *time.Time

	Additions    int
	Deletions    int
	ChangedFiles int

	Labels    []models.Label
	Milestone *models.Milestone
	Assignees []models.User

	CommentsCount      int
	ReviewsCount       int
	ReviewThreadsCount int
}

type PullRequestPage struct {
	PullRequests []PullRequest
	PageInfo     PageInfo
}

type Review struct {
	PullRequestNumber int
	Repository        string
	State             string
	SubmittedAt       *time.Time
	CommentsCount     int
}

type ReviewPage struct {
	UserFound bool
	Reviews   []Review
	PageInfo  PageInfo
}

type TimelineReview struct {
	State     string
	Author    string
	CreatedAt time.Time
}

type Timeline struct {
	Reviews          []TimelineReview
	ReadyForReviewAt *time.Time
}

type RepositoryStats struct {
	Total  int
	Merged int
	Open   int
	Closed int

	FirstCreatedAt *time.Time
	LastCreatedAt  *time.Time
}

type Asset struct {
	Name        string
	DownloadURL string
}

type Release struct {
	TagName         string
	TargetCommitish string
	Assets          []Asset
}

type client struct {
	graphql *githubv4.Client
	rest    *github.Client
}

func NewClient(graphqlURL, apiURL string, httpClient *http.Client) (*client, error) {
	rest := github.NewClient(httpClient)

	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("parsing github api url: %w", err)
		}
		rest.BaseURL = baseURL
	}

	if graphqlURL == "" {
		graphqlURL = DefaultGraphQLURL
	}

	return &client{
		graphql: githubv4.NewEnterpriseClient(graphqlURL, httpClient),
		rest:    rest,
	}, nil
}

func NewOAuthHTTPClient(ctx context.Context, token string) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, src)
}

func BuildPRSearchQuery(author, start, end string, repositories []string) string {
	query := fmt.Sprintf("author:%s is:pr created:%s..%s", author, start, end)

	if len(repositories) > 0 {
		repos := make([]string, 0, len(repositories))
		for _, repo := range repositories {
			repos = append(repos, "repo:"+repo)
		}
		query = fmt.Sprintf("%s (%s)", query, strings.Join(repos, " "))
	}

	return query
}

func BuildMergedSearchQuery(repository, start, end string) string {
	return fmt.Sprintf("repo:%s is:pr is:merged merged:%s..%s", repository, start, end)
}

func cursor(after string) *githubv4.String {
	if after == "" {
		return nil
	}
	return githubv4.NewString(githubv4.String(after))
}

func timePtr(dt *githubv4.DateTime) *time.Time {
	if dt == nil {
		return nil
	}
	t := dt.Time
	return &t
}

type pageInfo struct {
	HasNextPage bool
	EndCursor   *string
}

func (p pageInfo) convert() PageInfo {
	info := PageInfo{HasNextPage: p.HasNextPage}
	if p.EndCursor != nil {
		info.EndCursor = *p.EndCursor
	}
	return info
}

type pullRequestNode struct {
	Number     int
	Title      string
	Body       string
	URL        string
	Repository *struct {
		NameWithOwner string
		Name          string
		Owner         struct {
			Login string
		}
	}
	Author *struct {
		Login string
	}
	State        string
	CreatedAt    githubv4.DateTime
	UpdatedAt    githubv4.DateTime
	MergedAt     *githubv4.DateTime
	ClosedAt     *githubv4.DateTime
	Additions    int
	Deletions    int
	ChangedFiles int
	Labels       struct {
		Nodes []struct {
			Name  string
			Color string
		}
	} `graphql:"labels(first: 20)"`
	Milestone *struct {
		Title string
		DueOn *githubv4.DateTime
	}
	Assignees struct {
		Nodes []struct {
			Login string
		}
	} `graphql:"assignees(first: 10)"`
	Comments struct {
		TotalCount int
	}
	Reviews struct {
		TotalCount int
	}
	ReviewThreads struct {
		TotalCount int
	}
}

func (n pullRequestNode) convert() PullRequest {
	pr := PullRequest{
		Number:             n.Number,
		Title:              n.Title,
		Body:               n.Body,
		URL:                n.URL,
		State:              n.State,
		CreatedAt:          n.CreatedAt.Time,
		UpdatedAt:          n.UpdatedAt.Time,
		MergedAt:           timePtr(n.MergedAt),
		ClosedAt:           timePtr(n.ClosedAt),
		Additions:          n.Additions,
		Deletions:          n.Deletions,
		ChangedFiles:       n.ChangedFiles,
		Labels:             []models.Label{},
		Assignees:          []models.User{},
		CommentsCount:      n.Comments.TotalCount,
		ReviewsCount:       n.Reviews.TotalCount,
		ReviewThreadsCount: n.ReviewThreads.TotalCount,
	}

	if n.Repository != nil {
		pr.Repository = &models.Repository{
			NameWithOwner: n.Repository.NameWithOwner,
			Name:          n.Repository.Name,
			Owner:         models.User{Login: n.Repository.Owner.Login},
		}
	}

	if n.Author != nil {
		pr.Author = &models.User{Login: n.Author.Login}
	}

	for _, l := range n.Labels.Nodes {
		pr.Labels = append(pr.Labels, models.Label{Name: l.Name, Color: l.Color})
	}

	for _, a := range n.Assignees.Nodes {
		pr.Assignees = append(pr.Assignees, models.User{Login: a.Login})
	}

	if n.Milestone != nil {
		pr.Milestone = &models.Milestone{
			Title: n.Milestone.Title,
			DueOn: timePtr(n.Milestone.DueOn),
		}
	}

	return pr
}

func (c *client) SearchPullRequests(ctx context.Context, logger lager.Logger, query, after string) (PullRequestPage, error) {
	logger = logger.Session("search-pull-requests", lager.Data{
		"query": query,
		"after": after,
	})
	logger.Debug("starting")

	var q struct {
		Search struct {
			PageInfo pageInfo
			Nodes    []struct {
				PullRequest pullRequestNode `graphql:"... on PullRequest"`
			}
		} `graphql:"search(query: $query, type: ISSUE, first: 100, after: $after)"`
	}

	variables := map[string]interface{}{
		"query": githubv4.String(query),
		"after": cursor(after),
	}

	if err := c.graphql.Query(ctx, &q, variables); err != nil {
		logger.Error("failed", err)
		return PullRequestPage{}, fmt.Errorf("failed to search pull requests: %w", err)
	}

	page := PullRequestPage{PageInfo: q.Search.PageInfo.convert()}
	for _, node := range q.Search.Nodes {
		page.PullRequests = append(page.PullRequests, node.PullRequest.convert())
	}

	logger.Debug("done", lager.Data{"count": len(page.PullRequests)})
	return page, nil
}

func (c *client) UserReviews(ctx context.Context, logger lager.Logger, login, after string) (ReviewPage, error) {
	logger = logger.Session("user-reviews", lager.Data{
		"login": login,
		"after": after,
	})
	logger.Debug("starting")

	var q struct {
		User *struct {
			PullRequestReviews struct {
				PageInfo pageInfo
				Nodes    []struct {
					PullRequest struct {
						Number     int
						Repository struct {
							NameWithOwner string
						}
					}
					State       string
					SubmittedAt *githubv4.DateTime
					Comments    struct {
						TotalCount int
					}
				}
			} `graphql:"pullRequestReviews(first: 100, after: $after)"`
		} `graphql:"user(login: $login)"`
	}

	variables := map[string]interface{}{
		"login": githubv4.String(login),
		"after": cursor(after),
	}

	if err := c.graphql.Query(ctx, &q, variables); err != nil {
		if q.User == nil && strings.Contains(err.Error(), "Could not resolve to a User") {
			logger.Info("user-not-found")
			return ReviewPage{}, nil
		}
		logger.Error("failed", err)
		return ReviewPage{}, fmt.Errorf("failed to get user reviews: %w", err)
	}

	if q.User == nil {
		logger.Info("user-not-found")
		return ReviewPage{}, nil
	}

	page := ReviewPage{
		UserFound: true,
		PageInfo:  q.User.PullRequestReviews.PageInfo.convert(),
	}

	for _, node := range q.User.PullRequestReviews.Nodes {
		page.Reviews = append(page.Reviews, Review{
			PullRequestNumber: node.PullRequest.Number,
			Repository:        node.PullRequest.Repository.NameWithOwner,
			State:             node.State,
			SubmittedAt:       timePtr(node.SubmittedAt),
			CommentsCount:     node.Comments.TotalCount,
		})
	}

	logger.Debug("done", lager.Data{"count": len(page.Reviews)})
	return page, nil
}

func (c *client) PullRequestTimeline(ctx context.Context, logger lager.Logger, owner, name string, number int) (Timeline, error) {
	logger = logger.Session("pull-request-timeline", lager.Data{
		"owner":  owner,
		"name":   name,
		"number": number,
	})
	logger.Debug("starting")

	var q struct {
		Repository *struct {
			PullRequest *struct {
				Reviews struct {
					Nodes []struct {
						State     string
						CreatedAt githubv4.DateTime
						Author    *struct {
							Login string
						}
					}
				} `graphql:"reviews(first: 100)"`
				TimelineItems struct {
					Nodes []struct {
						ReadyForReviewEvent struct {
							CreatedAt githubv4.DateTime
						} `graphql:"... on ReadyForReviewEvent"`
					}
				} `graphql:"timelineItems(itemTypes: [READY_FOR_REVIEW_EVENT], first: 1)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(name),
		"number": githubv4.Int(number),
	}

	if err := c.graphql.Query(ctx, &q, variables); err != nil {
		logger.Error("failed", err)
		return Timeline{}, fmt.Errorf("failed to get pull request timeline: %w", err)
	}

	if q.Repository == nil || q.Repository.PullRequest == nil {
		logger.Error("failed", ErrNotFound)
		return Timeline{}, ErrNotFound
	}

	var timeline Timeline
	for _, r := range q.Repository.PullRequest.Reviews.Nodes {
		review := TimelineReview{State: r.State, CreatedAt: r.CreatedAt.Time}
		if r.Author != nil {
			review.Author = r.Author.Login
		}
		timeline.Reviews = append(timeline.Reviews, review)
	}

	for _, item := range q.Repository.PullRequest.TimelineItems.Nodes {
		if !item.ReadyForReviewEvent.CreatedAt.IsZero() {
			t := item.ReadyForReviewEvent.CreatedAt.Time
			timeline.ReadyForReviewAt = &t
			break
		}
	}

	logger.Debug("done")
	return timeline, nil
}

func (c *client) RepositoryPullRequestStats(ctx context.Context, logger lager.Logger, repository, start, end string) (RepositoryStats, error) {
	logger = logger.Session("repository-pull-request-stats", lager.Data{
		"repository": repository,
		"start":      start,
		"end":        end,
	})
	logger.Debug("starting")

	base := fmt.Sprintf("repo:%s is:pr created:%s..%s", repository, start, end)

	var stats RepositoryStats

	first, total, err := c.searchOne(ctx, base, "asc")
	if err != nil {
		logger.Error("failed", err)
		return RepositoryStats{}, err
	}
	stats.Total = total
	stats.FirstCreatedAt = first

	if total > 0 {
		last, _, err := c.searchOne(ctx, base, "desc")
		if err != nil {
			logger.Error("failed", err)
			return RepositoryStats{}, err
		}
		stats.LastCreatedAt = last
	}

	counts := []struct {
		qualifier string
		dest      *int
	}{
		{"is:merged", &stats.Merged},
		{"is:open", &stats.Open},
		{"is:closed is:unmerged", &stats.Closed},
	}

	for _, count := range counts {
		_, n, err := c.searchOne(ctx, base+" "+count.qualifier, "asc")
		if err != nil {
			logger.Error("failed", err, lager.Data{"qualifier": count.qualifier})
			return RepositoryStats{}, err
		}
		*count.dest = n
	}

	logger.Debug("done", lager.Data{"total": stats.Total})
	return stats, nil
}

func (c *client) searchOne(ctx context.Context, query, order string) (*time.Time, int, error) {
	opts := &github.SearchOptions{
		Sort:        "created",
		Order:       order,
		ListOptions: github.ListOptions{PerPage: 1},
	}

	result, _, err := c.rest.Search.Issues(ctx, query, opts)
	if err != nil {
		if isNotFound(err) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("failed to search issues: %w", err)
	}

	var created *time.Time
	if len(result.Issues) > 0 && result.Issues[0].CreatedAt != nil {
		t := result.Issues[0].CreatedAt.Time
		created = &t
	}

	return created, result.GetTotal(), nil
}

func (c *client) LatestRelease(ctx context.Context, logger lager.Logger, owner, repo string) (Release, error) {
	logger = logger.Session("latest-release", lager.Data{
		"owner": owner,
		"repo":  repo,
	})
	logger.Debug("starting")

	release, _, err := c.rest.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		logger.Error("failed", err)
		if isNotFound(err) {
			return Release{}, ErrNotFound
		}
		return Release{}, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	r := Release{
		TagName:         release.GetTagName(),
		TargetCommitish: release.GetTargetCommitish(),
	}
	for _, asset := range release.Assets {
		r.Assets = append(r.Assets, Asset{
			Name:        asset.GetName(),
			DownloadURL: asset.GetBrowserDownloadURL(),
		})
	}

	logger.Debug("done")
	return r, nil
}

func isNotFound(err error) bool {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		return errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound
	}
	return false
}
