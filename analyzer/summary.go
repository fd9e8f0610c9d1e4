package analyzer

import (
	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/models"
)

type SummaryService struct{}

func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

// GenerateOverallSummary only counts pull requests created in the period.
func (s *SummaryService) GenerateOverallSummary(logger lager.Logger, user string, period config.Period, prs []models.PullRequest) models.OverallSummary {
	logger = logger.Session("generate-overall-summary", lager.Data{"user": user, "pull-requests": len(prs)})

	summary := models.OverallSummary{
		User:        user,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
	}

	for _, pr := range prs {
		if !period.Contains(pr.CreatedAt) {
			continue
		}

		summary.TotalCreatedPRs++
		if pr.IsMerged() {
			summary.TotalMergedPRs++
		}
		summary.TotalAdditionsInCreatedPRs += pr.Additions
		summary.TotalDeletionsInCreatedPRs += pr.Deletions
		summary.TotalPRBodyCommentsReceived += pr.CommentsCount
		summary.TotalReviewCommentsReceivedOnCreated += pr.ReviewThreadsCount
	}

	logger.Info("done", lager.Data{
		"created": summary.TotalCreatedPRs,
		"merged":  summary.TotalMergedPRs,
	})

	return summary
}
