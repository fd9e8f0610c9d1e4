package models

// TeamConfig is the document read from --team-config.
type TeamConfig struct {
	TeamName        string   `json:"team_name,omitempty" yaml:"team_name"`
	TeamMembers     []string `json:"team_members" yaml:"team_members"`
	PeriodStartDate string   `json:"period_start_date" yaml:"period_start_date"`
	PeriodEndDate   string   `json:"period_end_date" yaml:"period_end_date"`
	Repositories    []string `json:"repositories,omitempty" yaml:"repositories"`
	OutputDir       string   `json:"output_dir" yaml:"output_dir"`
	Parallelism     int      `json:"parallelism,omitempty" yaml:"parallelism"`
}

func (c TeamConfig) NameOrDefault() string {
	if c.TeamName == "" {
		return "team"
	}
	return c.TeamName
}

type TeamStats struct {
	TotalTeamPRs       int `json:"total_team_prs"`
	TotalTeamMergedPRs int `json:"total_team_merged_prs"`
	TotalTeamAdditions int `json:"total_team_additions"`
	TotalTeamDeletions int `json:"total_team_deletions"`
	TotalTeamReviews   int `json:"total_team_reviews"`
}

type TeamMemberStats struct {
	Member           string  `json:"member"`
	CreatedPRs       int     `json:"created_prs"`
	MergedPRs        int     `json:"merged_prs"`
	Additions        int     `json:"additions"`
	Deletions        int     `json:"deletions"`
	ReviewedPRs      int     `json:"reviewed_prs"`
	ReviewActions    int     `json:"review_actions"`
	ContributionRate float64 `json:"contribution_rate"`
	MostActiveRepo   string  `json:"most_active_repo"`
}

type MemberContribution struct {
	Member                 string  `json:"member"`
	PRsCount               int     `json:"prs_count"`
	ContributionPercentage float64 `json:"contribution_percentage"`
}

type TeamRepositoryActivity struct {
	RepositoryName      string               `json:"repository_name"`
	TeamPRsCount        int                  `json:"team_prs_count"`
	TeamMergedPRsCount  int                  `json:"team_merged_prs_count"`
	MembersContribution []MemberContribution `json:"members_contribution"`
}

type TeamSummary struct {
	TeamName     string                   `json:"team_name,omitempty"`
	PeriodStart  string                   `json:"period_start"`
	PeriodEnd    string                   `json:"period_end"`
	TeamMembers  []string                 `json:"team_members"`
	TeamStats    TeamStats                `json:"team_stats"`
	MembersStats []TeamMemberStats        `json:"members_stats"`
	Repositories []TeamRepositoryActivity `json:"repositories"`
}

type TeamMemberDetails struct {
	Member        string        `json:"member"`
	PeriodStart   string        `json:"period_start"`
	PeriodEnd     string        `json:"period_end"`
	PullRequests  []PullRequest `json:"pull_requests"`
	ReviewSummary ReviewSummary `json:"review_summary"`
}
