package models

type ReviewSummary struct {
	User                       string `json:"user"`
	PeriodStart                string `json:"period_start"`
	PeriodEnd                  string `json:"period_end"`
	ReviewedPRCount            int    `json:"reviewed_pr_count"`
	SubmittedReviewActionCount int    `json:"submitted_review_action_count"`
	TotalReviewCommentsGiven   int    `json:"total_review_comments_given"`
}

type OverallSummary struct {
	User                                 string `json:"user"`
	PeriodStart                          string `json:"period_start"`
	PeriodEnd                            string `json:"period_end"`
	TotalCreatedPRs                      int    `json:"total_created_prs"`
	TotalMergedPRs                       int    `json:"total_merged_prs"`
	TotalAdditionsInCreatedPRs           int    `json:"total_additions_in_created_prs"`
	TotalDeletionsInCreatedPRs           int    `json:"total_deletions_in_created_prs"`
	TotalPRBodyCommentsReceived          int    `json:"total_pr_body_comments_received"`
	TotalReviewCommentsReceivedOnCreated int    `json:"total_review_comments_received_on_created_prs"`
}

type RepositorySummary struct {
	User         string               `json:"user"`
	PeriodStart  string               `json:"period_start"`
	PeriodEnd    string               `json:"period_end"`
	Repositories []RepositoryActivity `json:"repositories"`
}

type RepositoryActivity struct {
	RepositoryName              string                 `json:"repository_name"`
	CreatedPRsCount             int                    `json:"created_prs_count"`
	MergedPRsCount              int                    `json:"merged_prs_count"`
	TotalAdditions              int                    `json:"total_additions"`
	TotalDeletions              int                    `json:"total_deletions"`
	TotalCommentsReceived       int                    `json:"total_comments_received"`
	TotalReviewCommentsReceived int                    `json:"total_review_comments_received"`
	ReviewedPRsCount            int                    `json:"reviewed_prs_count"`
	ReviewActionsCount          int                    `json:"review_actions_count"`
	ReviewCommentsGiven         int                    `json:"review_comments_given"`
	FirstPRCreatedAt            *string                `json:"first_pr_created_at"`
	LastPRCreatedAt             *string                `json:"last_pr_created_at"`
	OverallStats                RepositoryOverallStats `json:"repository_overall_stats"`
}

type RepositoryOverallStats struct {
	TotalPRsInPeriod       int     `json:"total_prs_in_period"`
	TotalMergedPRsInPeriod int     `json:"total_merged_prs_in_period"`
	TotalOpenPRsInPeriod   int     `json:"total_open_prs_in_period"`
	TotalClosedPRsInPeriod int     `json:"total_closed_prs_in_period"`
	UserContributionRate   float64 `json:"user_contribution_rate"`
	FirstPRInPeriod        *string `json:"first_pr_in_period"`
	LastPRInPeriod         *string `json:"last_pr_in_period"`
}
