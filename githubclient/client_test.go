package githubclient_test

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/ghttp"

	"github.com/devscope/devscope/githubclient"
)

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func verifyGraphQL(fragment string, variables map[string]interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer GinkgoRecover()

		body, err := ioutil.ReadAll(r.Body)
		Expect(err).NotTo(HaveOccurred())

		var req graphqlRequest
		Expect(json.Unmarshal(body, &req)).To(Succeed())
		Expect(req.Query).To(ContainSubstring(fragment))
		for k, v := range variables {
			Expect(req.Variables).To(HaveKeyWithValue(k, v))
		}
	}
}

var _ = Describe("Client", func() {
	var (
		client githubclient.Client
		server *ghttp.Server
		logger *lagertest.TestLogger
		ctx    context.Context
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		httpClient := &http.Client{
			Transport: &http.Transport{},
		}

		logger = lagertest.NewTestLogger("client")
		ctx = context.Background()

		var err error
		client, err = githubclient.NewClient(server.URL()+"/graphql", server.URL(), httpClient)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if server != nil {
			server.Close()
		}
	})

	Describe("BuildPRSearchQuery", func() {
		It("searches pull requests by author and creation date", func() {
			Expect(githubclient.BuildPRSearchQuery("octocat", "2024-01-01", "2024-01-31", nil)).To(
				Equal("author:octocat is:pr created:2024-01-01..2024-01-31"))
		})

		It("restricts the search to the given repositories", func() {
			Expect(githubclient.BuildPRSearchQuery("octocat", "2024-01-01", "2024-01-31", []string{"org/a", "org/b"})).To(
				Equal("author:octocat is:pr created:2024-01-01..2024-01-31 (repo:org/a repo:org/b)"))
		})
	})

	Describe("BuildMergedSearchQuery", func() {
		It("searches pull requests merged into a repository", func() {
			Expect(githubclient.BuildMergedSearchQuery("org/a", "2023-10-18", "2024-01-31")).To(
				Equal("repo:org/a is:pr is:merged merged:2023-10-18..2024-01-31"))
		})
	})

	Describe("SearchPullRequests", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/graphql"),
					verifyGraphQL("search(query: $query, type: ISSUE, first: 100, after: $after)", map[string]interface{}{
						"query": "author:octocat is:pr",
						"after": "cursor-1",
					}),
					ghttp.RespondWith(http.StatusOK, `{
						"data": {
							"search": {
								"pageInfo": {"hasNextPage": true, "endCursor": "cursor-2"},
								"nodes": [
									{
										"number": 42,
										"title": "Add feature",
										"body": "details",
										"url": "https://github.com/org/repo/pull/42",
										"repository": {"nameWithOwner": "org/repo", "name": "repo", "owner": {"login": "org"}},
										"author": {"login": "octocat"},
										"state": "MERGED",
										"createdAt": "2024-01-02T03:04:05Z",
										"updatedAt": "2024-01-03T03:04:05Z",
										"mergedAt": "2024-01-03T03:04:05Z",
										"closedAt": "2024-01-03T03:04:05Z",
										"additions": 10,
										"deletions": 2,
										"changedFiles": 3,
										"labels": {"nodes": [{"name": "bug", "color": "ff0000"}]},
										"milestone": {"title": "v1", "dueOn": null},
										"assignees": {"nodes": [{"login": "hubot"}]},
										"comments": {"totalCount": 4},
										"reviews": {"totalCount": 2},
										"reviewThreads": {"totalCount": 1}
									},
									{
										"number": 43,
										"title": "Orphan",
										"body": "",
										"url": "https://github.com/org/repo/pull/43",
										"repository": {"nameWithOwner": "org/repo", "name": "repo", "owner": {"login": "org"}},
										"author": null,
										"state": "OPEN",
										"createdAt": "2024-01-05T00:00:00Z",
										"updatedAt": "2024-01-05T00:00:00Z",
										"mergedAt": null,
										"closedAt": null,
										"additions": 0,
										"deletions": 0,
										"changedFiles": 0,
										"labels": {"nodes": []},
										"milestone": null,
										"assignees": {"nodes": []},
										"comments": {"totalCount": 0},
										"reviews": {"totalCount": 0},
										"reviewThreads": {"totalCount": 0}
									}
								]
							}
						}
					}`),
				),
			)
		})

		It("returns the converted pull requests and the next cursor", func() {
			page, err := client.SearchPullRequests(ctx, logger, "author:octocat is:pr", "cursor-1")
			Expect(err).NotTo(HaveOccurred())

			Expect(page.PageInfo).To(Equal(githubclient.PageInfo{HasNextPage: true, EndCursor: "cursor-2"}))
			Expect(page.PullRequests).To(HaveLen(2))

			pr := page.PullRequests[0]
			Expect(pr.Number).To(Equal(42))
			Expect(pr.Repository.NameWithOwner).To(Equal("org/repo"))
			Expect(pr.Author.Login).To(Equal("octocat"))
			Expect(pr.State).To(Equal("MERGED"))
			Expect(pr.CreatedAt).To(BeTemporally("==", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
			Expect(*pr.MergedAt).To(BeTemporally("==", time.Date(2024, 1, 3, 3, 4, 5, 0, time.UTC)))
			Expect(pr.Labels[0].Name).To(Equal("bug"))
			Expect(pr.Milestone.Title).To(Equal("v1"))
			Expect(pr.Milestone.DueOn).To(BeNil())
			Expect(pr.Assignees[0].Login).To(Equal("hubot"))
			Expect(pr.CommentsCount).To(Equal(4))
			Expect(pr.ReviewsCount).To(Equal(2))
			Expect(pr.ReviewThreadsCount).To(Equal(1))

			orphan := page.PullRequests[1]
			Expect(orphan.Author).To(BeNil())
			Expect(orphan.MergedAt).To(BeNil())
			Expect(orphan.Milestone).To(BeNil())
		})
	})

	Describe("SearchPullRequests failures", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusInternalServerError, "boom"),
			)
		})

		It("returns an error and logs it", func() {
			_, err := client.SearchPullRequests(ctx, logger, "author:octocat is:pr", "")
			Expect(err).To(MatchError(ContainSubstring("failed to search pull requests")))
			Expect(logger).To(gbytes.Say("client.search-pull-requests.failed"))
		})
	})

	Describe("UserReviews", func() {
		Context("when the user exists", func() {
			BeforeEach(func() {
				server.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", "/graphql"),
						verifyGraphQL("pullRequestReviews(first: 100, after: $after)", map[string]interface{}{
							"login": "octocat",
						}),
						ghttp.RespondWith(http.StatusOK, `{
							"data": {
								"user": {
									"pullRequestReviews": {
										"pageInfo": {"hasNextPage": false, "endCursor": null},
										"nodes": [
											{
												"pullRequest": {"number": 7, "repository": {"nameWithOwner": "org/repo"}},
												"state": "APPROVED",
												"submittedAt": "2024-01-10T00:00:00Z",
												"comments": {"totalCount": 3}
											},
											{
												"pullRequest": {"number": 8, "repository": {"nameWithOwner": "org/repo"}},
												"state": "PENDING",
												"submittedAt": null,
												"comments": {"totalCount": 0}
											}
										]
									}
								}
							}
						}`),
					),
				)
			})

			It("returns the reviews", func() {
				page, err := client.UserReviews(ctx, logger, "octocat", "")
				Expect(err).NotTo(HaveOccurred())
				Expect(page.UserFound).To(BeTrue())
				Expect(page.PageInfo.HasNextPage).To(BeFalse())
				Expect(page.PageInfo.EndCursor).To(BeEmpty())
				Expect(page.Reviews).To(HaveLen(2))
				Expect(page.Reviews[0].PullRequestNumber).To(Equal(7))
				Expect(page.Reviews[0].Repository).To(Equal("org/repo"))
				Expect(page.Reviews[0].CommentsCount).To(Equal(3))
				Expect(page.Reviews[1].SubmittedAt).To(BeNil())
			})
		})

		Context("when the user cannot be resolved", func() {
			BeforeEach(func() {
				server.AppendHandlers(
					ghttp.RespondWith(http.StatusOK, `{
						"data": {"user": null},
						"errors": [{"message": "Could not resolve to a User with the login of 'ghost'."}]
					}`),
				)
			})

			It("reports that the user was not found", func() {
				page, err := client.UserReviews(ctx, logger, "ghost", "")
				Expect(err).NotTo(HaveOccurred())
				Expect(page.UserFound).To(BeFalse())
				Expect(logger).To(gbytes.Say("client.user-reviews.user-not-found"))
			})
		})
	})

	Describe("PullRequestTimeline", func() {
		Context("when the pull request exists", func() {
			BeforeEach(func() {
				server.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("POST", "/graphql"),
						verifyGraphQL("timelineItems(itemTypes: [READY_FOR_REVIEW_EVENT], first: 1)", map[string]interface{}{
							"owner":  "org",
							"name":   "repo",
							"number": float64(42),
						}),
						ghttp.RespondWith(http.StatusOK, `{
							"data": {
								"repository": {
									"pullRequest": {
										"reviews": {"nodes": [
											{"state": "COMMENTED", "createdAt": "2024-01-02T00:00:00Z", "author": {"login": "alice"}},
											{"state": "APPROVED", "createdAt": "2024-01-03T00:00:00Z", "author": {"login": "bob"}}
										]},
										"timelineItems": {"nodes": [{"createdAt": "2024-01-01T12:00:00Z"}]}
									}
								}
							}
						}`),
					),
				)
			})

			It("returns the reviews and the ready for review time", func() {
				timeline, err := client.PullRequestTimeline(ctx, logger, "org", "repo", 42)
				Expect(err).NotTo(HaveOccurred())
				Expect(timeline.Reviews).To(HaveLen(2))
				Expect(timeline.Reviews[1].State).To(Equal("APPROVED"))
				Expect(timeline.Reviews[1].Author).To(Equal("bob"))
				Expect(*timeline.ReadyForReviewAt).To(BeTemporally("==", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
			})
		})

		Context("when the pull request is missing", func() {
			BeforeEach(func() {
				server.AppendHandlers(
					ghttp.RespondWith(http.StatusOK, `{"data": {"repository": {"pullRequest": null}}}`),
				)
			})

			It("returns ErrNotFound", func() {
				_, err := client.PullRequestTimeline(ctx, logger, "org", "repo", 42)
				Expect(err).To(Equal(githubclient.ErrNotFound))
			})
		})
	})

	Describe("RepositoryPullRequestStats", func() {
		BeforeEach(func() {
			server.RouteToHandler("GET", "/search/issues", func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()

				q := r.URL.Query().Get("q")
				Expect(r.URL.Query().Get("sort")).To(Equal("created"))
				Expect(r.URL.Query().Get("per_page")).To(Equal("1"))

				base := "repo:org/repo is:pr created:2024-01-01..2024-01-31"
				var body string
				switch q {
				case base:
					if r.URL.Query().Get("order") == "asc" {
						body = `{"total_count": 10, "items": [{"number": 1, "created_at": "2024-01-02T00:00:00Z"}]}`
					} else {
						body = `{"total_count": 10, "items": [{"number": 9, "created_at": "2024-01-30T00:00:00Z"}]}`
					}
				case base + " is:merged":
					body = `{"total_count": 6, "items": []}`
				case base + " is:open":
					body = `{"total_count": 3, "items": []}`
				case base + " is:closed is:unmerged":
					body = `{"total_count": 1, "items": []}`
				default:
					Fail("unexpected query: " + q)
				}

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			})
		})

		It("counts the pull requests created in the period", func() {
			stats, err := client.RepositoryPullRequestStats(ctx, logger, "org/repo", "2024-01-01", "2024-01-31")
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Total).To(Equal(10))
			Expect(stats.Merged).To(Equal(6))
			Expect(stats.Open).To(Equal(3))
			Expect(stats.Closed).To(Equal(1))
			Expect(*stats.FirstCreatedAt).To(BeTemporally("==", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
			Expect(*stats.LastCreatedAt).To(BeTemporally("==", time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)))
		})
	})

	Describe("LatestRelease", func() {
		Context("when a release exists", func() {
			BeforeEach(func() {
				server.AppendHandlers(
					ghttp.CombineHandlers(
						ghttp.VerifyRequest("GET", "/repos/devscope/devscope/releases/latest"),
						ghttp.RespondWith(http.StatusOK, `{
							"tag_name": "v1.2.0",
							"target_commitish": "abc123",
							"assets": [{"name": "devscope_linux", "browser_download_url": "https://example.com/devscope_linux"}]
						}`, http.Header{"Content-Type": []string{"application/json"}}),
					),
				)
			})

			It("returns the tag and the assets", func() {
				release, err := client.LatestRelease(ctx, logger, "devscope", "devscope")
				Expect(err).NotTo(HaveOccurred())
				Expect(release.TagName).To(Equal("v1.2.0"))
				Expect(release.TargetCommitish).To(Equal("abc123"))
				Expect(release.Assets).To(ConsistOf(githubclient.Asset{
					Name:        "devscope_linux",
					DownloadURL: "https://example.com/devscope_linux",
				}))
			})
		})

		Context("when there is no release", func() {
			BeforeEach(func() {
				server.AppendHandlers(
					ghttp.RespondWith(http.StatusNotFound, `{"message": "Not Found"}`, http.Header{"Content-Type": []string{"application/json"}}),
				)
			})

			It("returns ErrNotFound", func() {
				_, err := client.LatestRelease(ctx, logger, "devscope", "devscope")
				Expect(err).To(Equal(githubclient.ErrNotFound))
				Expect(logger).To(gbytes.Say("client.latest-release.failed"))
			})
		})
	})
})
