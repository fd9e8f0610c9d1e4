package analyzer

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/export"
	"github.com/devscope/devscope/githubclient"
	"github.com/devscope/devscope/models"
	"github.com/devscope/devscope/throttle"
)

type Options struct {
	User          string
	Period        config.Period
	Repositories  []string
	OutputDir     string
	WithApprovals bool
}

type Files struct {
	PullRequests      string
	ReviewSummary     string
	OverallSummary    string
	RepositorySummary string
}

// Controller runs the individual analysis steps and writes each result to
// its own JSON file.
type Controller struct {
	opts Options

	pullRequests *PullRequestService
	reviews      *ReviewService
	summaries    *SummaryService
	repositories *RepositoryService
}

func NewController(client githubclient.Client, throttle throttle.Throttle, opts Options) *Controller {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}

	return &Controller{
		opts:         opts,
		pullRequests: NewPullRequestService(client, throttle, opts.WithApprovals),
		reviews:      NewReviewService(client, throttle),
		summaries:    NewSummaryService(),
		repositories: NewRepositoryService(client, throttle),
	}
}

func (c *Controller) filename(prefix string) string {
	return export.Filename(prefix, c.opts.User, c.opts.Period.Start, c.opts.Period.End, "json")
}

func (c *Controller) ExecuteFullAnalysis(ctx context.Context, logger lager.Logger) (Files, error) {
	logger = logger.Session("full-analysis", lager.Data{
		"user":   c.opts.User,
		"period": c.opts.Period.String(),
	})
	logger.Info("starting")

	var files Files
	var err error

	files.PullRequests, err = c.CollectPullRequestDetails(ctx, logger)
	if err != nil {
		logger.Error("failed", err)
		return Files{}, err
	}

	reviews, err := c.reviews.FetchReviews(ctx, logger, c.opts.User, c.opts.Period)
	if err != nil {
		logger.Error("failed", err)
		return Files{}, err
	}

	files.ReviewSummary, err = c.writeReviewSummary(logger, reviews)
	if err != nil {
		logger.Error("failed", err)
		return Files{}, err
	}

	files.OverallSummary, err = c.GenerateOverallSummary(logger, files.PullRequests)
	if err != nil {
		logger.Error("failed", err)
		return Files{}, err
	}

	files.RepositorySummary, err = c.generateRepositorySummary(ctx, logger, files.PullRequests, reviews)
	if err != nil {
		logger.Error("failed", err)
		return Files{}, err
	}

	logger.Info("done", lager.Data{
		"pull-requests":      files.PullRequests,
		"review-summary":     files.ReviewSummary,
		"overall-summary":    files.OverallSummary,
		"repository-summary": files.RepositorySummary,
	})

	return files, nil
}

func (c *Controller) CollectPullRequestDetails(ctx context.Context, logger lager.Logger) (string, error) {
	prs, err := c.pullRequests.FetchUserPullRequests(ctx, logger, c.opts.User, c.opts.Period, c.opts.Repositories)
	if err != nil {
		return "", err
	}

	return export.WriteJSON(c.opts.OutputDir, c.filename("created_prs_details"), prs)
}

func (c *Controller) GenerateReviewSummary(ctx context.Context, logger lager.Logger) (string, error) {
	reviews, err := c.reviews.FetchReviews(ctx, logger, c.opts.User, c.opts.Period)
	if err != nil {
		return "", err
	}

	return c.writeReviewSummary(logger, reviews)
}

func (c *Controller) writeReviewSummary(logger lager.Logger, reviews []githubclient.Review) (string, error) {
	summary := SummarizeReviews(c.opts.User, c.opts.Period, reviews)

	logger.Info("review-summary", lager.Data{
		"reviewed-prs":   summary.ReviewedPRCount,
		"review-actions": summary.SubmittedReviewActionCount,
		"comments":       summary.TotalReviewCommentsGiven,
	})

	return export.WriteJSON(c.opts.OutputDir, c.filename("my_review_summary"), summary)
}

func (c *Controller) GenerateOverallSummary(logger lager.Logger, prFile string) (string, error) {
	var prs []models.PullRequest
	if err := export.ReadJSON(prFile, &prs); err != nil {
		return "", err
	}

	summary := c.summaries.GenerateOverallSummary(logger, c.opts.User, c.opts.Period, prs)

	return export.WriteJSON(c.opts.OutputDir, c.filename("overall_summary"), summary)
}

func (c *Controller) GenerateRepositorySummary(ctx context.Context, logger lager.Logger, prFile string) (string, error) {
	reviews, err := c.reviews.FetchReviews(ctx, logger, c.opts.User, c.opts.Period)
	if err != nil {
		return "", err
	}

	return c.generateRepositorySummary(ctx, logger, prFile, reviews)
}

func (c *Controller) generateRepositorySummary(ctx context.Context, logger lager.Logger, prFile string, reviews []githubclient.Review) (string, error) {
	var prs []models.PullRequest
	if err := export.ReadJSON(prFile, &prs); err != nil {
		return "", err
	}

	summary, err := c.repositories.GenerateRepositorySummary(ctx, logger, prs, reviews, c.opts.User, c.opts.Period)
	if err != nil {
		return "", err
	}

	return export.WriteJSON(c.opts.OutputDir, c.filename("repository_summary"), summary)
}
