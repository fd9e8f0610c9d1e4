package analyzer

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/githubclient"
	"github.com/devscope/devscope/models"
	"github.com/devscope/devscope/throttle"
)

type ReviewService struct {
	client   githubclient.Client
	throttle throttle.Throttle
}

func NewReviewService(client githubclient.Client, throttle throttle.Throttle) *ReviewService {
	return &ReviewService{
		client:   client,
		throttle: throttle,
	}
}

// FetchReviews returns the reviews the user submitted during the period.
func (s *ReviewService) FetchReviews(ctx context.Context, logger lager.Logger, user string, period config.Period) ([]githubclient.Review, error) {
	logger = logger.Session("fetch-reviews", lager.Data{
		"user":   user,
		"period": period.String(),
	})
	logger.Info("starting")

	var reviews []githubclient.Review
	after := ""
	for {
		if err := s.throttle.Wait(ctx); err != nil {
			logger.Error("failed", err)
			return nil, err
		}

		page, err := s.client.UserReviews(ctx, logger, user, after)
		if err != nil {
			logger.Error("failed", err)
			return nil, err
		}

		if !page.UserFound {
			logger.Info("no-review-data")
			break
		}

		kept := 0
		for _, review := range page.Reviews {
			if review.SubmittedAt == nil || !period.Contains(*review.SubmittedAt) {
				continue
			}
			reviews = append(reviews, review)
			kept++
		}

		logger.Debug("fetched-page", lager.Data{"kept": kept, "total": len(reviews)})

		if !page.PageInfo.HasNextPage {
			break
		}
		after = page.PageInfo.EndCursor
	}

	logger.Info("done", lager.Data{"reviews": len(reviews)})
	return reviews, nil
}

func SummarizeReviews(user string, period config.Period, reviews []githubclient.Review) models.ReviewSummary {
	prs := map[string]struct{}{}
	comments := 0
	for _, review := range reviews {
		prs[models.PullRequestKey(review.Repository, review.PullRequestNumber)] = struct{}{}
		comments += review.CommentsCount
	}

	return models.ReviewSummary{
		User:                       user,
		PeriodStart:                period.Start,
		PeriodEnd:                  period.End,
		ReviewedPRCount:            len(prs),
		SubmittedReviewActionCount: len(reviews),
		TotalReviewCommentsGiven:   comments,
	}
}

func (s *ReviewService) GenerateReviewSummary(ctx context.Context, logger lager.Logger, user string, period config.Period) (models.ReviewSummary, error) {
	reviews, err := s.FetchReviews(ctx, logger, user, period)
	if err != nil {
		return models.ReviewSummary{}, err
	}

	summary := SummarizeReviews(user, period, reviews)

	logger.Info("review-summary", lager.Data{
		"user":           user,
		"reviewed-prs":   summary.ReviewedPRCount,
		"review-actions": summary.SubmittedReviewActionCount,
		"comments":       summary.TotalReviewCommentsGiven,
	})

	return summary, nil
}
