package analyzer_test

import (
	"context"
	"errors"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/devscope/devscope/analyzer"
	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/githubclient"
	"github.com/devscope/devscope/githubclient/githubclientfakes"
	"github.com/devscope/devscope/models"
	"github.com/devscope/devscope/throttle/throttlefakes"
)

var _ = Describe("PullRequestService", func() {
	var (
		client        *githubclientfakes.FakeClient
		throttle      *throttlefakes.FakeThrottle
		logger        *lagertest.TestLogger
		period        config.Period
		withApprovals bool
		service       *analyzer.PullRequestService
	)

	BeforeEach(func() {
		client = &githubclientfakes.FakeClient{}
		throttle = &throttlefakes.FakeThrottle{}
		logger = lagertest.NewTestLogger("analyzer")
		period = config.Period{Start: "2024-01-01", End: "2024-01-31"}
		withApprovals = false
	})

	JustBeforeEach(func() {
		service = analyzer.NewPullRequestService(client, throttle, withApprovals)
	})

	Context("when the search spans several pages", func() {
		BeforeEach(func() {
			merged := at(12, 10)
			first := hit(1, "api", "alice", "MERGED", at(10, 10))
			first.MergedAt = &merged

			client.SearchPullRequestsReturnsOnCall(0, githubclient.PullRequestPage{
				PullRequests: []githubclient.PullRequest{first},
				PageInfo:     githubclient.PageInfo{HasNextPage: true, EndCursor: "cursor-1"},
			}, nil)
			client.SearchPullRequestsReturnsOnCall(1, githubclient.PullRequestPage{
				PullRequests: []githubclient.PullRequest{hit(2, "web", "alice", "open", at(20, 8))},
			}, nil)
		})

		It("follows the cursor and waits on the throttle before each page", func() {
			prs, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, []string{"acme/api"})
			Expect(err).NotTo(HaveOccurred())
			Expect(prs).To(HaveLen(2))

			Expect(client.SearchPullRequestsCallCount()).To(Equal(2))
			Expect(throttle.WaitCallCount()).To(Equal(2))

			_, _, query, after := client.SearchPullRequestsArgsForCall(0)
			Expect(query).To(Equal("author:alice is:pr created:2024-01-01..2024-01-31 (repo:acme/api)"))
			Expect(after).To(BeEmpty())

			_, _, _, after = client.SearchPullRequestsArgsForCall(1)
			Expect(after).To(Equal("cursor-1"))
		})

		It("computes the time to merge in minutes", func() {
			prs, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(prs[0].TimeToMergeMinutes).NotTo(BeNil())
			Expect(*prs[0].TimeToMergeMinutes).To(Equal(2880.0))
			Expect(prs[1].TimeToMergeMinutes).To(BeNil())
		})

		It("normalizes the state", func() {
			prs, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(prs[0].State).To(Equal(models.StateMerged))
			Expect(prs[1].State).To(Equal(models.StateOpen))
		})

		It("defaults ready for review to the creation time", func() {
			prs, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(prs[0].ReadyForReviewAt).To(Equal(at(10, 10)))
			Expect(client.PullRequestTimelineCallCount()).To(BeZero())
		})
	})

	Context("when hits fall outside the period or are incomplete", func() {
		BeforeEach(func() {
			orphan := hit(3, "api", "ghost", "OPEN", at(15, 0))
			orphan.Author = nil

			late := hit(4, "api", "alice", "OPEN", at(31, 23))

			client.SearchPullRequestsReturns(githubclient.PullRequestPage{
				PullRequests: []githubclient.PullRequest{
					hit(1, "api", "alice", "OPEN", at(31, 23).AddDate(0, 0, 1)),
					orphan,
					late,
					hit(5, "api", "alice", "DRAFTED", at(2, 0)),
				},
			}, nil)
		})

		It("keeps only complete pull requests created in the period", func() {
			prs, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(prs).To(HaveLen(2))
			Expect(prs[0].Number).To(Equal(4))
			Expect(prs[1].Number).To(Equal(5))
			Expect(logger).To(gbytes.Say("skipping-incomplete-pull-request"))
		})

		It("treats unknown states as open and warns", func() {
			prs, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(prs[1].State).To(Equal(models.StateOpen))
			Expect(logger).To(gbytes.Say("unknown-state"))
		})
	})

	Context("when approvals are requested", func() {
		BeforeEach(func() {
			withApprovals = true

			client.SearchPullRequestsReturns(githubclient.PullRequestPage{
				PullRequests: []githubclient.PullRequest{
					hit(1, "api", "alice", "OPEN", at(10, 10)),
					hit(2, "api", "alice", "OPEN", at(11, 10)),
				},
			}, nil)

			ready := at(10, 12)
			client.PullRequestTimelineReturnsOnCall(0, githubclient.Timeline{
				ReadyForReviewAt: &ready,
				Reviews: []githubclient.TimelineReview{
					{State: "COMMENTED", Author: "carol", CreatedAt: at(10, 13)},
					{State: "APPROVED", Author: "dave", CreatedAt: at(10, 16)},
					{State: "APPROVED", Author: "bob", CreatedAt: at(10, 14)},
				},
			}, nil)
			client.PullRequestTimelineReturnsOnCall(1, githubclient.Timeline{}, githubclient.ErrNotFound)
		})

		It("records the earliest approval measured from ready for review", func() {
			prs, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, nil)
			Expect(err).NotTo(HaveOccurred())

			_, _, owner, name, number := client.PullRequestTimelineArgsForCall(0)
			Expect(owner).To(Equal("acme"))
			Expect(name).To(Equal("api"))
			Expect(number).To(Equal(1))

			Expect(prs[0].ReadyForReviewAt).To(Equal(at(10, 12)))
			Expect(*prs[0].FirstApprover).To(Equal("bob"))
			Expect(*prs[0].FirstApprovalAt).To(Equal(at(10, 14)))
			Expect(*prs[0].TimeToFirstApprovalMinutes).To(Equal(120.0))
		})

		It("keeps the defaults when the timeline cannot be fetched", func() {
			prs, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(prs[1].FirstApprover).To(BeNil())
			Expect(prs[1].ReadyForReviewAt).To(Equal(at(11, 10)))
			Expect(logger).To(gbytes.Say("failed-to-fetch-timeline"))
		})
	})

	Describe("FetchMergedPullRequests", func() {
		BeforeEach(func() {
			merged := at(12, 10)
			first := hit(1, "api", "alice", "MERGED", at(10, 10))
			first.MergedAt = &merged

			client.SearchPullRequestsReturns(githubclient.PullRequestPage{
				PullRequests: []githubclient.PullRequest{
					first,
					hit(2, "api", "bob", "CLOSED", at(11, 10)),
				},
			}, nil)

			client.PullRequestTimelineReturns(githubclient.Timeline{
				Reviews: []githubclient.TimelineReview{
					{State: "APPROVED", Author: "dave", CreatedAt: at(11, 16)},
					{State: "CHANGES_REQUESTED", Author: "carol", CreatedAt: at(11, 9)},
					{State: "APPROVED", Author: "bob", CreatedAt: at(11, 14)},
				},
			}, nil)
		})

		It("searches the repository for merged pull requests", func() {
			_, err := service.FetchMergedPullRequests(context.Background(), logger, "acme/api", period)
			Expect(err).NotTo(HaveOccurred())

			_, _, query, _ := client.SearchPullRequestsArgsForCall(0)
			Expect(query).To(Equal("repo:acme/api is:pr is:merged merged:2024-01-01..2024-01-31"))
		})

		It("keeps merged pull requests with every approval, oldest first", func() {
			prs, err := service.FetchMergedPullRequests(context.Background(), logger, "acme/api", period)
			Expect(err).NotTo(HaveOccurred())

			Expect(prs).To(HaveLen(1))
			Expect(prs[0].Number).To(Equal(1))
			Expect(prs[0].Approvals).To(Equal([]models.Approval{
				{Reviewer: "bob", ApprovedAt: at(11, 14)},
				{Reviewer: "dave", ApprovedAt: at(11, 16)},
			}))
			Expect(*prs[0].FirstApprover).To(Equal("bob"))
			Expect(client.PullRequestTimelineCallCount()).To(Equal(1))
		})

		It("keeps pull requests whose timeline cannot be fetched", func() {
			client.PullRequestTimelineReturns(githubclient.Timeline{}, githubclient.ErrNotFound)

			prs, err := service.FetchMergedPullRequests(context.Background(), logger, "acme/api", period)
			Expect(err).NotTo(HaveOccurred())
			Expect(prs).To(HaveLen(1))
			Expect(prs[0].Approvals).To(BeEmpty())
		})

		It("stops when the search fails", func() {
			client.SearchPullRequestsReturns(githubclient.PullRequestPage{}, errors.New("boom"))

			_, err := service.FetchMergedPullRequests(context.Background(), logger, "acme/api", period)
			Expect(err).To(MatchError("boom"))
			Expect(logger).To(gbytes.Say("analyzer.fetch-merged-pull-requests.failed"))
		})
	})

	Context("when the search fails", func() {
		BeforeEach(func() {
			client.SearchPullRequestsReturns(githubclient.PullRequestPage{}, errors.New("boom"))
		})

		It("returns the error", func() {
			_, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, nil)
			Expect(err).To(MatchError("boom"))
			Expect(logger).To(gbytes.Say("analyzer.fetch-user-pull-requests.failed"))
		})
	})

	Context("when the throttle is interrupted", func() {
		BeforeEach(func() {
			throttle.WaitReturns(context.Canceled)
		})

		It("stops before calling github", func() {
			_, err := service.FetchUserPullRequests(context.Background(), logger, "alice", period, nil)
			Expect(err).To(MatchError(context.Canceled))
			Expect(client.SearchPullRequestsCallCount()).To(BeZero())
		})
	})
})
