package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"code.cloudfoundry.org/lager"
	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/export"
	"github.com/devscope/devscope/models"
)

const DefaultOutputDir = "./output"

type MemberData struct {
	Member        string
	PullRequests  []models.PullRequest
	ReviewSummary models.ReviewSummary
}

type TeamResult struct {
	Summary     models.TeamSummary
	SummaryFile string
	MemberFiles []string
}

type TeamAnalysisService struct {
	pullRequests *PullRequestService
	reviews      *ReviewService
}

func NewTeamAnalysisService(pullRequests *PullRequestService, reviews *ReviewService) *TeamAnalysisService {
	return &TeamAnalysisService{
		pullRequests: pullRequests,
		reviews:      reviews,
	}
}

// AnalyzeTeam collects every member's data, at most Parallelism members at a
// time. A member whose collection fails is reported with empty data.
func (s *TeamAnalysisService) AnalyzeTeam(ctx context.Context, logger lager.Logger, cfg models.TeamConfig) (TeamResult, error) {
	cfg.TeamMembers = uniqueMembers(cfg.TeamMembers)

	logger = logger.Session("analyze-team", lager.Data{
		"team":    cfg.NameOrDefault(),
		"members": len(cfg.TeamMembers),
	})
	logger.Info("starting")

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	period := config.Period{Start: cfg.PeriodStartDate, End: cfg.PeriodEndDate}

	data := make([]MemberData, len(cfg.TeamMembers))
	files := make([]string, len(cfg.TeamMembers))
	errs := make([]error, len(cfg.TeamMembers))

	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, member := range cfg.TeamMembers {
		i, member := i, member
		g.Go(func() error {
			data[i], files[i], errs[i] = s.collectMember(ctx, logger, cfg, period, member)
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		logger.Error("failed", err)
		return TeamResult{}, err
	}

	var failures *multierror.Error
	var memberFiles []string
	for i, member := range cfg.TeamMembers {
		if errs[i] != nil {
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", member, errs[i]))
			data[i] = MemberData{
				Member:        member,
				PullRequests:  []models.PullRequest{},
				ReviewSummary: SummarizeReviews(member, period, nil),
			}
			continue
		}
		memberFiles = append(memberFiles, files[i])
	}

	if failures != nil {
		logger.Error("member-failures", failures.ErrorOrNil(), lager.Data{"failed": len(failures.Errors)})
	}

	summary := BuildTeamSummary(cfg, data)

	summaryFile, err := export.WriteJSON(cfg.OutputDir, export.TeamSummaryFilename(cfg.NameOrDefault(), cfg.PeriodStartDate, cfg.PeriodEndDate), summary)
	if err != nil {
		logger.Error("failed", err)
		return TeamResult{}, err
	}

	logger.Info("done", lager.Data{
		"summary-file": summaryFile,
		"member-files": len(memberFiles),
		"team-prs":     summary.TeamStats.TotalTeamPRs,
	})

	return TeamResult{
		Summary:     summary,
		SummaryFile: summaryFile,
		MemberFiles: memberFiles,
	}, nil
}

// uniqueMembers keeps the first spelling of every login. GitHub logins are
// case-insensitive.
func uniqueMembers(members []string) []string {
	seen := map[string]bool{}
	unique := make([]string, 0, len(members))
	for _, m := range members {
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, m)
	}
	return unique
}

func (s *TeamAnalysisService) collectMember(ctx context.Context, logger lager.Logger, cfg models.TeamConfig, period config.Period, member string) (MemberData, string, error) {
	logger = logger.Session("collect-member", lager.Data{"member": member})
	logger.Info("starting")

	prs, err := s.pullRequests.FetchUserPullRequests(ctx, logger, member, period, cfg.Repositories)
	if err != nil {
		logger.Error("failed", err)
		return MemberData{}, "", err
	}

	summary, err := s.reviews.GenerateReviewSummary(ctx, logger, member, period)
	if err != nil {
		logger.Error("failed", err)
		return MemberData{}, "", err
	}

	details := models.TeamMemberDetails{
		Member:        member,
		PeriodStart:   cfg.PeriodStartDate,
		PeriodEnd:     cfg.PeriodEndDate,
		PullRequests:  prs,
		ReviewSummary: summary,
	}

	path, err := export.WriteJSON(cfg.OutputDir, export.TeamMemberDetailsFilename(member, cfg.PeriodStartDate, cfg.PeriodEndDate), details)
	if err != nil {
		logger.Error("failed", err)
		return MemberData{}, "", err
	}

	logger.Info("done", lager.Data{"pull-requests": len(prs), "reviewed-prs": summary.ReviewedPRCount})

	return MemberData{Member: member, PullRequests: prs, ReviewSummary: summary}, path, nil
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}

// BuildTeamSummary aggregates member data. Members are listed by created pull
// requests and repositories by team pull requests, both descending; ties keep
// the input order.
func BuildTeamSummary(cfg models.TeamConfig, members []MemberData) models.TeamSummary {
	var stats models.TeamStats
	memberStats := make([]models.TeamMemberStats, 0, len(members))

	var repoOrder []string
	repoMembers := map[string][]string{}
	repoCounts := map[string]map[string]int{}
	repoMerged := map[string]int{}

	for _, m := range members {
		ms := models.TeamMemberStats{
			Member:         m.Member,
			CreatedPRs:     len(m.PullRequests),
			ReviewedPRs:    m.ReviewSummary.ReviewedPRCount,
			ReviewActions:  m.ReviewSummary.SubmittedReviewActionCount,
			MostActiveRepo: "N/A",
		}

		var ownOrder []string
		ownCounts := map[string]int{}

		for _, pr := range m.PullRequests {
			repo := pr.Repository.NameWithOwner

			if pr.IsMerged() {
				ms.MergedPRs++
				repoMerged[repo]++
			}
			ms.Additions += pr.Additions
			ms.Deletions += pr.Deletions

			if _, ok := ownCounts[repo]; !ok {
				ownOrder = append(ownOrder, repo)
			}
			ownCounts[repo]++

			if _, ok := repoCounts[repo]; !ok {
				repoCounts[repo] = map[string]int{}
				repoOrder = append(repoOrder, repo)
			}
			if _, ok := repoCounts[repo][m.Member]; !ok {
				repoMembers[repo] = append(repoMembers[repo], m.Member)
			}
			repoCounts[repo][m.Member]++
		}

		best := 0
		for _, repo := range ownOrder {
			if ownCounts[repo] > best {
				best = ownCounts[repo]
				ms.MostActiveRepo = repo
			}
		}

		stats.TotalTeamPRs += ms.CreatedPRs
		stats.TotalTeamMergedPRs += ms.MergedPRs
		stats.TotalTeamAdditions += ms.Additions
		stats.TotalTeamDeletions += ms.Deletions
		stats.TotalTeamReviews += ms.ReviewedPRs

		memberStats = append(memberStats, ms)
	}

	for i := range memberStats {
		memberStats[i].ContributionRate = percentage(memberStats[i].CreatedPRs, stats.TotalTeamPRs)
	}

	sort.SliceStable(memberStats, func(i, j int) bool {
		return memberStats[i].CreatedPRs > memberStats[j].CreatedPRs
	})

	repositories := make([]models.TeamRepositoryActivity, 0, len(repoOrder))
	for _, repo := range repoOrder {
		total := 0
		for _, count := range repoCounts[repo] {
			total += count
		}

		contributions := make([]models.MemberContribution, 0, len(repoMembers[repo]))
		for _, member := range repoMembers[repo] {
			count := repoCounts[repo][member]
			contributions = append(contributions, models.MemberContribution{
				Member:                 member,
				PRsCount:               count,
				ContributionPercentage: percentage(count, total),
			})
		}

		sort.SliceStable(contributions, func(i, j int) bool {
			return contributions[i].PRsCount > contributions[j].PRsCount
		})

		repositories = append(repositories, models.TeamRepositoryActivity{
			RepositoryName:      repo,
			TeamPRsCount:        total,
			TeamMergedPRsCount:  repoMerged[repo],
			MembersContribution: contributions,
		})
	}

	sort.SliceStable(repositories, func(i, j int) bool {
		return repositories[i].TeamPRsCount > repositories[j].TeamPRsCount
	})

	teamMembers := cfg.TeamMembers
	if teamMembers == nil {
		teamMembers = []string{}
	}

	return models.TeamSummary{
		TeamName:     cfg.TeamName,
		PeriodStart:  cfg.PeriodStartDate,
		PeriodEnd:    cfg.PeriodEndDate,
		TeamMembers:  teamMembers,
		TeamStats:    stats,
		MembersStats: memberStats,
		Repositories: repositories,
	}
}
