package analyzer

import (
	"context"
	"sort"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/githubclient"
	"github.com/devscope/devscope/models"
	"github.com/devscope/devscope/throttle"
)

type RepositoryService struct {
	client   githubclient.Client
	throttle throttle.Throttle
}

func NewRepositoryService(client githubclient.Client, throttle throttle.Throttle) *RepositoryService {
	return &RepositoryService{
		client:   client,
		throttle: throttle,
	}
}

func isoTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// GenerateRepositorySummary groups the user's pull requests by repository.
// Reviews are credited to repositories the user also opened pull requests in.
func (s *RepositoryService) GenerateRepositorySummary(ctx context.Context, logger lager.Logger, prs []models.PullRequest, reviews []githubclient.Review, user string, period config.Period) (models.RepositorySummary, error) {
	logger = logger.Session("generate-repository-summary", lager.Data{
		"user":          user,
		"pull-requests": len(prs),
	})
	logger.Info("starting")

	var order []string
	activities := map[string]*models.RepositoryActivity{}
	first := map[string]time.Time{}
	last := map[string]time.Time{}

	for _, pr := range prs {
		name := pr.Repository.NameWithOwner

		activity, ok := activities[name]
		if !ok {
			activity = &models.RepositoryActivity{RepositoryName: name}
			activities[name] = activity
			order = append(order, name)
		}

		activity.CreatedPRsCount++
		if pr.IsMerged() {
			activity.MergedPRsCount++
		}
		activity.TotalAdditions += pr.Additions
		activity.TotalDeletions += pr.Deletions
		activity.TotalCommentsReceived += pr.CommentsCount
		activity.TotalReviewCommentsReceived += pr.ReviewThreadsCount

		if f, ok := first[name]; !ok || pr.CreatedAt.Before(f) {
			first[name] = pr.CreatedAt
		}
		if l, ok := last[name]; !ok || pr.CreatedAt.After(l) {
			last[name] = pr.CreatedAt
		}
	}

	reviewed := map[string]map[string]struct{}{}
	for _, review := range reviews {
		activity, ok := activities[review.Repository]
		if !ok {
			continue
		}

		if reviewed[review.Repository] == nil {
			reviewed[review.Repository] = map[string]struct{}{}
		}
		reviewed[review.Repository][models.PullRequestKey(review.Repository, review.PullRequestNumber)] = struct{}{}

		activity.ReviewActionsCount++
		activity.ReviewCommentsGiven += review.CommentsCount
	}

	for _, name := range order {
		activity := activities[name]
		activity.ReviewedPRsCount = len(reviewed[name])

		f, l := first[name], last[name]
		activity.FirstPRCreatedAt = isoTime(&f)
		activity.LastPRCreatedAt = isoTime(&l)

		if err := s.addOverallStats(ctx, logger, activity, period); err != nil {
			logger.Error("failed", err)
			return models.RepositorySummary{}, err
		}
	}

	repositories := make([]models.RepositoryActivity, 0, len(order))
	for _, name := range order {
		repositories = append(repositories, *activities[name])
	}

	sort.SliceStable(repositories, func(i, j int) bool {
		return repositories[i].CreatedPRsCount > repositories[j].CreatedPRsCount
	})

	logger.Info("done", lager.Data{"repositories": len(repositories)})

	return models.RepositorySummary{
		User:         user,
		PeriodStart:  period.Start,
		PeriodEnd:    period.End,
		Repositories: repositories,
	}, nil
}

// addOverallStats keeps the zero defaults when GitHub cannot report on the
// repository. Only cancellation is returned.
func (s *RepositoryService) addOverallStats(ctx context.Context, logger lager.Logger, activity *models.RepositoryActivity, period config.Period) error {
	if err := s.throttle.Wait(ctx); err != nil {
		return err
	}

	stats, err := s.client.RepositoryPullRequestStats(ctx, logger, activity.RepositoryName, period.Start, period.End)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Error("failed-to-fetch-stats", err, lager.Data{"repository": activity.RepositoryName})
		return nil
	}

	activity.OverallStats = models.RepositoryOverallStats{
		TotalPRsInPeriod:       stats.Total,
		TotalMergedPRsInPeriod: stats.Merged,
		TotalOpenPRsInPeriod:   stats.Open,
		TotalClosedPRsInPeriod: stats.Closed,
		FirstPRInPeriod:        isoTime(stats.FirstCreatedAt),
		LastPRInPeriod:         isoTime(stats.LastCreatedAt),
	}

	if stats.Total > 0 {
		activity.OverallStats.UserContributionRate = round2(float64(activity.CreatedPRsCount) / float64(stats.Total) * 100)
	}

	return nil
}
