package analyzer

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/githubclient"
	"github.com/devscope/devscope/models"
	"github.com/devscope/devscope/throttle"
)

const reviewStateApproved = "APPROVED"

type PullRequestService struct {
	client        githubclient.Client
	throttle      throttle.Throttle
	withApprovals bool
}

func NewPullRequestService(client githubclient.Client, throttle throttle.Throttle, withApprovals bool) *PullRequestService {
	return &PullRequestService{
		client:        client,
		throttle:      throttle,
		withApprovals: withApprovals,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func minutesBetween(from, to time.Time) *float64 {
	m := round2(to.Sub(from).Minutes())
	return &m
}

func normalizeState(logger lager.Logger, pr githubclient.PullRequest) string {
	switch strings.ToUpper(pr.State) {
	case models.StateMerged:
		return models.StateMerged
	case models.StateClosed:
		return models.StateClosed
	case models.StateOpen:
		return models.StateOpen
	}

	logger.Info("unknown-state", lager.Data{"pr": pr.Number, "state": pr.State})
	return models.StateOpen
}

func (s *PullRequestService) FetchUserPullRequests(ctx context.Context, logger lager.Logger, user string, period config.Period, repositories []string) ([]models.PullRequest, error) {
	logger = logger.Session("fetch-user-pull-requests", lager.Data{
		"user":   user,
		"period": period.String(),
	})
	logger.Info("starting")

	query := githubclient.BuildPRSearchQuery(user, period.Start, period.End, repositories)

	prs, err := s.search(ctx, logger, query, func(hit githubclient.PullRequest) bool {
		return period.Contains(hit.CreatedAt)
	})
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	if s.withApprovals {
		for i := range prs {
			if _, err := s.addApproval(ctx, logger, &prs[i]); err != nil {
				logger.Error("failed", err)
				return nil, err
			}
		}
	}

	logger.Info("done", lager.Data{"pull-requests": len(prs)})
	return prs, nil
}

// FetchMergedPullRequests lists the pull requests merged into repository
// during period together with every approval they received.
func (s *PullRequestService) FetchMergedPullRequests(ctx context.Context, logger lager.Logger, repository string, period config.Period) ([]models.MergedPullRequest, error) {
	logger = logger.Session("fetch-merged-pull-requests", lager.Data{
		"repository": repository,
		"period":     period.String(),
	})
	logger.Info("starting")

	query := githubclient.BuildMergedSearchQuery(repository, period.Start, period.End)

	prs, err := s.search(ctx, logger, query, func(hit githubclient.PullRequest) bool {
		return hit.MergedAt != nil
	})
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	merged := make([]models.MergedPullRequest, 0, len(prs))
	for i := range prs {
		approvals, err := s.addApproval(ctx, logger, &prs[i])
		if err != nil {
			logger.Error("failed", err)
			return nil, err
		}

		merged = append(merged, models.MergedPullRequest{
			PullRequest: prs[i],
			Approvals:   approvals,
		})
	}

	logger.Info("done", lager.Data{"pull-requests": len(merged)})
	return merged, nil
}

func (s *PullRequestService) search(ctx context.Context, logger lager.Logger, query string, keep func(githubclient.PullRequest) bool) ([]models.PullRequest, error) {
	logger.Debug("query", lager.Data{"query": query})

	prs := []models.PullRequest{}
	after := ""
	for {
		if err := s.throttle.Wait(ctx); err != nil {
			return nil, err
		}

		page, err := s.client.SearchPullRequests(ctx, logger, query, after)
		if err != nil {
			return nil, err
		}

		kept := 0
		for _, hit := range page.PullRequests {
			if !keep(hit) {
				continue
			}

			if hit.Author == nil || hit.Repository == nil {
				logger.Info("skipping-incomplete-pull-request", lager.Data{"pr": hit.Number})
				continue
			}

			prs = append(prs, s.transform(logger, hit))
			kept++
		}

		logger.Info("fetched-page", lager.Data{"kept": kept, "total": len(prs)})

		if !page.PageInfo.HasNextPage {
			return prs, nil
		}
		after = page.PageInfo.EndCursor
	}
}

func (s *PullRequestService) transform(logger lager.Logger, hit githubclient.PullRequest) models.PullRequest {
	pr := models.PullRequest{
		Number:     hit.Number,
		Title:      hit.Title,
		Body:       hit.Body,
		URL:        hit.URL,
		Repository: *hit.Repository,
		Author:     *hit.Author,
		State:      normalizeState(logger, hit),

		CreatedAt: hit.CreatedAt,
		UpdatedAt: hit.UpdatedAt,
		MergedAt:  hit.MergedAt,
		ClosedAt:  hit.ClosedAt,

		Additions:    hit.Additions,
		Deletions:    hit.Deletions,
		ChangedFiles: hit.ChangedFiles,

		Labels:    hit.Labels,
		Milestone: hit.Milestone,
		Assignees: hit.Assignees,

		CommentsCount:      hit.CommentsCount,
		ReviewsCount:       hit.ReviewsCount,
		ReviewThreadsCount: hit.ReviewThreadsCount,

		ReadyForReviewAt: hit.CreatedAt,
	}

	if pr.Labels == nil {
		pr.Labels = []models.Label{}
	}
	if pr.Assignees == nil {
		pr.Assignees = []models.User{}
	}

	if hit.MergedAt != nil {
		pr.TimeToMergeMinutes = minutesBetween(hit.CreatedAt, *hit.MergedAt)
	}

	return pr
}

// addApproval fills the approval fields from the pull request's timeline and
// returns every approval, oldest first. Lookup failures leave the defaults in
// place; only cancellation is fatal.
func (s *PullRequestService) addApproval(ctx context.Context, logger lager.Logger, pr *models.PullRequest) ([]models.Approval, error) {
	approvals := []models.Approval{}

	if err := s.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	timeline, err := s.client.PullRequestTimeline(ctx, logger, pr.Repository.Owner.Login, pr.Repository.Name, pr.Number)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		logger.Error("failed-to-fetch-timeline", err, lager.Data{"pr": pr.Key()})
		return approvals, nil
	}

	if timeline.ReadyForReviewAt != nil {
		pr.ReadyForReviewAt = *timeline.ReadyForReviewAt
	}

	for _, review := range timeline.Reviews {
		if review.State != reviewStateApproved {
			continue
		}
		approvals = append(approvals, models.Approval{
			Reviewer:   review.Author,
			ApprovedAt: review.CreatedAt,
		})
	}

	if len(approvals) == 0 {
		return approvals, nil
	}

	sort.SliceStable(approvals, func(i, j int) bool {
		return approvals[i].ApprovedAt.Before(approvals[j].ApprovedAt)
	})

	first := approvals[0]
	approvedAt := first.ApprovedAt
	approver := first.Reviewer
	pr.FirstApprovalAt = &approvedAt
	pr.FirstApprover = &approver
	pr.TimeToFirstApprovalMinutes = minutesBetween(pr.ReadyForReviewAt, approvedAt)

	return approvals, nil
}
