package analyzer_test

import (
	"context"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devscope/devscope/analyzer"
	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/export"
	"github.com/devscope/devscope/githubclient"
	"github.com/devscope/devscope/githubclient/githubclientfakes"
	"github.com/devscope/devscope/models"
	"github.com/devscope/devscope/throttle/throttlefakes"
)

var _ = Describe("Controller", func() {
	var (
		client     *githubclientfakes.FakeClient
		logger     *lagertest.TestLogger
		dir        string
		controller *analyzer.Controller
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "controller")
		Expect(err).NotTo(HaveOccurred())

		client = &githubclientfakes.FakeClient{}
		logger = lagertest.NewTestLogger("analyzer")

		client.SearchPullRequestsReturns(githubclient.PullRequestPage{
			PullRequests: []githubclient.PullRequest{
				hit(1, "api", "alice", "MERGED", at(2, 0)),
				hit(2, "api", "alice", "OPEN", at(3, 0)),
			},
		}, nil)
		client.UserReviewsReturns(githubclient.ReviewPage{
			UserFound: true,
			Reviews:   []githubclient.Review{review("acme/api", 9, timeRef(at(4, 0)), 3)},
		}, nil)
		client.RepositoryPullRequestStatsReturns(githubclient.RepositoryStats{Total: 4}, nil)

		controller = analyzer.NewController(client, &throttlefakes.FakeThrottle{}, analyzer.Options{
			User:      "alice",
			Period:    config.Period{Start: "2024-01-01", End: "2024-01-31"},
			OutputDir: dir,
		})
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("writes every analysis file", func() {
		files, err := controller.ExecuteFullAnalysis(context.Background(), logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(files).To(Equal(analyzer.Files{
			PullRequests:      filepath.Join(dir, "created_prs_details_alice_2024-01-01-2024-01-31.json"),
			ReviewSummary:     filepath.Join(dir, "my_review_summary_alice_2024-01-01-2024-01-31.json"),
			OverallSummary:    filepath.Join(dir, "overall_summary_alice_2024-01-01-2024-01-31.json"),
			RepositorySummary: filepath.Join(dir, "repository_summary_alice_2024-01-01-2024-01-31.json"),
		}))

		var overall models.OverallSummary
		Expect(export.ReadJSON(files.OverallSummary, &overall)).To(Succeed())
		Expect(overall.TotalCreatedPRs).To(Equal(2))
		Expect(overall.TotalMergedPRs).To(Equal(1))

		var repos models.RepositorySummary
		Expect(export.ReadJSON(files.RepositorySummary, &repos)).To(Succeed())
		Expect(repos.Repositories).To(HaveLen(1))
		Expect(repos.Repositories[0].OverallStats.UserContributionRate).To(Equal(50.0))
		Expect(repos.Repositories[0].ReviewActionsCount).To(Equal(1))
	})

	It("fetches reviews once during a full analysis", func() {
		_, err := controller.ExecuteFullAnalysis(context.Background(), logger)
		Expect(err).NotTo(HaveOccurred())
		Expect(client.UserReviewsCallCount()).To(Equal(1))
	})

	It("summarizes an existing pull request file", func() {
		prFile, err := export.WriteJSON(dir, "prs.json", []models.PullRequest{
			pr(1, "acme/api", models.StateMerged, at(2, 0)),
		})
		Expect(err).NotTo(HaveOccurred())

		path, err := controller.GenerateOverallSummary(logger, prFile)
		Expect(err).NotTo(HaveOccurred())

		var overall models.OverallSummary
		Expect(export.ReadJSON(path, &overall)).To(Succeed())
		Expect(overall.TotalMergedPRs).To(Equal(1))
		Expect(client.SearchPullRequestsCallCount()).To(BeZero())
	})

	It("fails when the pull request file is missing", func() {
		_, err := controller.GenerateOverallSummary(logger, filepath.Join(dir, "nope.json"))
		Expect(err).To(MatchError(ContainSubstring("failed to read json file")))
	})
})
