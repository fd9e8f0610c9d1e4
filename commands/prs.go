package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/analyzer"
	"github.com/devscope/devscope/config"
	"github.com/devscope/devscope/export"
	"github.com/devscope/devscope/githubclient"
	"github.com/devscope/devscope/models"
	"github.com/devscope/devscope/notionsync"
	"github.com/devscope/devscope/sheets"
	"github.com/devscope/devscope/throttle"
)

type PRsCommand struct {
	Analyze      PRsAnalyzeCommand      `command:"analyze" description:"Run every analysis step for one user"`
	PullRequests PRsPullRequestsCommand `command:"pull-requests" description:"Collect the pull requests a user created"`
	Reviews      PRsReviewsCommand      `command:"reviews" description:"Summarize the reviews a user submitted"`
	Summary      PRsSummaryCommand      `command:"summary" description:"Summarize a pull request details file"`
	Repositories PRsRepositoriesCommand `command:"repositories" description:"Summarize a pull request details file per repository"`
	Team         PRsTeamCommand         `command:"team" description:"Analyze every member of a team"`
	CSV          PRsCSVCommand          `command:"csv" description:"Export analysis results as CSV"`
	Sheets       PRsSheetsCommand       `command:"sheets" description:"Append pull requests to a Google spreadsheet"`
	Prompt       PRsPromptCommand       `command:"prompt" description:"Generate an analysis prompt from the result files"`
	Notion       PRsNotionCommand       `command:"notion" description:"Write merged pull requests and their approvals to a Notion database"`
	Config       PRsConfigCommand       `command:"config" description:"Show the resolved analyzer configuration"`
}

// requests per second against the github api
const githubRate = 1

type AnalyzerOptions struct {
	config.AnalyzerConfig

	ConfigFile string `long:"config-file" description:"yaml file with analyzer options; its values take precedence over flags" env:"ANALYZER_CONFIG_FILE" value-name:"PATH"`
	Debug      bool   `long:"debug" description:"enables debug logging"`
}

func (o *AnalyzerOptions) load(online bool) error {
	if err := o.LoadFile(o.ConfigFile); err != nil {
		return err
	}

	if online {
		return validationError(o.Validate())
	}
	return validationError(o.ValidateLocal())
}

func (o *AnalyzerOptions) filename(prefix string) string {
	p := o.Period()
	return filepath.Join(o.OutputDir, export.Filename(prefix, o.UserLogin, p.Start, p.End, "json"))
}

func (o *AnalyzerOptions) controller(ctx context.Context) (*analyzer.Controller, error) {
	client, err := newGitHubClient(ctx, o.GitHubToken, o.GitHub.GraphQLURL, o.GitHub.APIURL)
	if err != nil {
		return nil, err
	}

	return analyzer.NewController(client, throttle.PerSecond(clock.NewClock(), githubRate), analyzer.Options{
		User:          o.UserLogin,
		Period:        o.Period(),
		Repositories:  o.Repositories,
		OutputDir:     o.OutputDir,
		WithApprovals: o.WithApprovals,
	}), nil
}

func newGitHubClient(ctx context.Context, token, graphqlURL, apiURL string) (githubclient.Client, error) {
	return githubclient.NewClient(graphqlURL, apiURL, githubclient.NewOAuthHTTPClient(ctx, token))
}

func written(label, path string) {
	sayf("%s %s: %s\n", green("[DONE]"), label, path)
}

type PRsAnalyzeCommand struct {
	AnalyzerOptions
}

func (command *PRsAnalyzeCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if err := command.load(true); err != nil {
		return err
	}

	logger := newLogger("prs", command.Debug)
	ctx := context.Background()

	controller, err := command.controller(ctx)
	if err != nil {
		return err
	}

	files, err := controller.ExecuteFullAnalysis(ctx, logger)
	if err != nil {
		return err
	}

	written("pull requests", files.PullRequests)
	written("review summary", files.ReviewSummary)
	written("overall summary", files.OverallSummary)
	written("repository summary", files.RepositorySummary)

	if command.IsSheetsConfigured() {
		return appendToSheet(ctx, logger, &command.AnalyzerConfig, files.PullRequests, false)
	}

	return nil
}

type PRsPullRequestsCommand struct {
	AnalyzerOptions
}

func (command *PRsPullRequestsCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if err := command.load(true); err != nil {
		return err
	}

	ctx := context.Background()
	controller, err := command.controller(ctx)
	if err != nil {
		return err
	}

	path, err := controller.CollectPullRequestDetails(ctx, newLogger("prs", command.Debug))
	if err != nil {
		return err
	}

	written("pull requests", path)
	return nil
}

type PRsReviewsCommand struct {
	AnalyzerOptions
}

func (command *PRsReviewsCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if err := command.load(true); err != nil {
		return err
	}

	ctx := context.Background()
	controller, err := command.controller(ctx)
	if err != nil {
		return err
	}

	path, err := controller.GenerateReviewSummary(ctx, newLogger("prs", command.Debug))
	if err != nil {
		return err
	}

	written("review summary", path)
	return nil
}

type DetailsFileArgs struct {
	File string `positional-arg-name:"PR_DETAILS_FILE" description:"created_prs_details json file; defaults to the one for the configured user and period"`
}

type PRsSummaryCommand struct {
	AnalyzerOptions

	Args DetailsFileArgs `positional-args:"yes"`
}

func (command *PRsSummaryCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if err := command.load(false); err != nil {
		return err
	}

	prFile := command.Args.File
	if prFile == "" {
		prFile = command.filename("created_prs_details")
	}

	controller := analyzer.NewController(nil, nil, analyzer.Options{
		User:      command.UserLogin,
		Period:    command.Period(),
		OutputDir: command.OutputDir,
	})

	path, err := controller.GenerateOverallSummary(newLogger("prs", command.Debug), prFile)
	if err != nil {
		return err
	}

	written("overall summary", path)
	return nil
}

type PRsRepositoriesCommand struct {
	AnalyzerOptions

	Args DetailsFileArgs `positional-args:"yes"`
}

func (command *PRsRepositoriesCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if err := command.load(true); err != nil {
		return err
	}

	prFile := command.Args.File
	if prFile == "" {
		prFile = command.filename("created_prs_details")
	}

	ctx := context.Background()
	controller, err := command.controller(ctx)
	if err != nil {
		return err
	}

	path, err := controller.GenerateRepositorySummary(ctx, newLogger("prs", command.Debug), prFile)
	if err != nil {
		return err
	}

	written("repository summary", path)
	return nil
}

type PRsTeamCommand struct {
	GitHubToken string `long:"github-token" description:"github api access token" env:"GITHUB_TOKEN" value-name:"TOKEN"`
	TeamConfig  string `long:"team-config" description:"yaml file describing the team" env:"TEAM_CONFIG" required:"true" value-name:"PATH"`
	GraphQLURL  string `long:"github-graphql-url" description:"github graphql endpoint" default:"https://api.github.com/graphql" value-name:"URL"`
	APIURL      string `long:"github-api-url" description:"github rest endpoint" default:"https://api.github.com/" value-name:"URL"`
	Debug       bool   `long:"debug" description:"enables debug logging"`
}

func (command *PRsTeamCommand) Execute(args []string) error {
	warnIfOldExecutable()

	bs, err := os.ReadFile(command.TeamConfig)
	if err != nil {
		return fmt.Errorf("reading team config: %w", err)
	}

	team, err := config.LoadTeamConfig(bs)
	if err != nil {
		return fmt.Errorf("parsing team config: %w", err)
	}

	errs := config.ValidateTeamConfig(team)
	if command.GitHubToken == "" {
		errs = append(errs, errors.New("no github token specified (GITHUB_TOKEN)"))
	}
	if err := validationError(errs); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newGitHubClient(ctx, command.GitHubToken, command.GraphQLURL, command.APIURL)
	if err != nil {
		return err
	}

	limiter := throttle.PerSecond(clock.NewClock(), githubRate)
	service := analyzer.NewTeamAnalysisService(
		analyzer.NewPullRequestService(client, limiter, false),
		analyzer.NewReviewService(client, limiter),
	)

	result, err := service.AnalyzeTeam(ctx, newLogger("prs", command.Debug), *team)
	if err != nil {
		return err
	}

	for _, path := range result.MemberFiles {
		written("member details", path)
	}
	written("team summary", result.SummaryFile)

	stats := result.Summary.TeamStats
	sayf("%s %d pull requests, %d merged, %d reviews across %d members\n",
		cyan("[TEAM]"), stats.TotalTeamPRs, stats.TotalTeamMergedPRs, stats.TotalTeamReviews, len(team.TeamMembers))

	return nil
}

// requests per second against the notion api
const notionRate = 3

type PRsNotionCommand struct {
	GitHubToken  string `long:"github-token" description:"github api access token" env:"GITHUB_TOKEN" value-name:"TOKEN"`
	Repository   string `short:"r" long:"repository" description:"owner/name of the repository to sync" env:"GITHUB_REPOSITORY" value-name:"REPO"`
	Since        string `long:"since" description:"first merge day to sync (YYYY-MM-DD)" default:"2023-10-18" value-name:"DATE"`
	Until        string `long:"until" description:"last merge day to sync (YYYY-MM-DD); defaults to today" value-name:"DATE"`
	NotionToken  string `long:"notion-token" description:"notion integration token" env:"NOTION_API_KEY" value-name:"TOKEN"`
	DatabaseID   string `long:"database-id" description:"notion database receiving one page per pull request" env:"NOTION_DATABASE_ID" value-name:"ID"`
	BatchSize    int    `long:"batch-size" description:"pages created at the same time" default:"5" value-name:"N"`
	Retries      int    `long:"retries" description:"retries per page" default:"3" value-name:"N"`
	GraphQLURL   string `long:"github-graphql-url" description:"github graphql endpoint" default:"https://api.github.com/graphql" value-name:"URL" hidden:"true"`
	NotionAPIURL string `long:"notion-api-url" description:"notion api endpoint" default:"https://api.notion.com" value-name:"URL" hidden:"true"`
	Debug        bool   `long:"debug" description:"enables debug logging"`
}

func (command *PRsNotionCommand) validate(period config.Period) error {
	errs := period.Validate()

	if command.GitHubToken == "" {
		errs = append(errs, errors.New("no github token specified (GITHUB_TOKEN)"))
	}
	if owner, name, ok := strings.Cut(command.Repository, "/"); !ok || owner == "" || name == "" {
		errs = append(errs, errors.New("repository must look like owner/name (GITHUB_REPOSITORY)"))
	}
	if command.NotionToken == "" {
		errs = append(errs, errors.New("no notion token specified (NOTION_API_KEY)"))
	}
	if command.DatabaseID == "" {
		errs = append(errs, errors.New("no notion database specified (NOTION_DATABASE_ID)"))
	}
	if command.BatchSize <= 0 {
		errs = append(errs, errors.New("batch size must be positive"))
	}

	return validationError(errs)
}

func (command *PRsNotionCommand) Execute(args []string) error {
	warnIfOldExecutable()

	clk := clock.NewClock()

	period := config.Period{Start: command.Since, End: command.Until}
	if period.End == "" {
		period.End = clk.Now().UTC().Format(config.DateLayout)
	}

	if err := command.validate(period); err != nil {
		return err
	}

	logger := newLogger("prs", command.Debug)
	ctx := context.Background()

	client, err := newGitHubClient(ctx, command.GitHubToken, command.GraphQLURL, "")
	if err != nil {
		return err
	}

	service := analyzer.NewPullRequestService(client, throttle.PerSecond(clk, githubRate), true)
	prs, err := service.FetchMergedPullRequests(ctx, logger, command.Repository, period)
	if err != nil {
		return err
	}

	sayf("%s %d merged pull requests in %s (%s)\n", cyan("[FOUND]"), len(prs), command.Repository, period)

	notion, err := notionsync.NewClient(command.NotionToken, command.NotionAPIURL)
	if err != nil {
		return err
	}

	syncer := notionsync.NewSyncer(notion.Page, throttle.PerSecond(clk, notionRate), clk, notionsync.Options{
		DatabaseID: command.DatabaseID,
		BatchSize:  command.BatchSize,
		Retries:    command.Retries,
	})

	result, err := syncer.Sync(ctx, logger, prs)
	sayf("%s %d pages created in notion\n", green("[DONE]"), len(result.PageIDs))
	if err != nil {
		sayf("%s %d pull requests not written: %s\n", red("[FAILED]"), len(result.Failed), strings.Join(result.Failed, ", "))
		return err
	}

	return nil
}

type PRsCSVCommand struct {
	AnalyzerOptions

	ReviewSummary string `long:"review-summary" description:"my_review_summary json file to include" value-name:"PATH"`
	Combined      bool   `long:"combined" description:"write pull requests and review summary into one file"`
	AllUsers      bool   `long:"all-users" description:"name the file for a multi-user export"`
	OmitHeaders   bool   `long:"omit-headers" description:"do not write the header row"`
	Filename      string `long:"filename" description:"csv file name inside the output directory" value-name:"NAME"`
	Location      string `long:"timezone" description:"timezone dates are written in" default:"Local" value-name:"TZ"`

	Args DetailsFileArgs `positional-args:"yes"`
}

func (command *PRsCSVCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if err := command.load(false); err != nil {
		return err
	}

	loc, err := time.LoadLocation(command.Location)
	if err != nil {
		return err
	}

	logger := newLogger("prs", command.Debug)
	exporter := export.NewCSVExporter(clock.NewClock(), loc)
	opts := export.CSVOptions{
		OutputDir:   command.OutputDir,
		Filename:    command.Filename,
		OmitHeaders: command.OmitHeaders,
	}

	prFile := command.Args.File
	if prFile == "" {
		prFile = command.filename("created_prs_details")
	}

	var prs []models.PullRequest
	if err := export.ReadJSON(prFile, &prs); err != nil {
		return err
	}

	var summary *models.ReviewSummary
	if command.ReviewSummary != "" {
		summary = &models.ReviewSummary{}
		if err := export.ReadJSON(command.ReviewSummary, summary); err != nil {
			return err
		}
	}

	var path string
	switch {
	case command.Combined:
		path, err = exporter.Combined(logger, prs, summary, opts)
	case command.AllUsers:
		path, err = exporter.AllUsersPullRequests(logger, prs, opts)
	default:
		path, err = exporter.PullRequests(logger, prs, opts)
	}
	if err != nil {
		return err
	}
	written("csv", path)

	if summary != nil && !command.Combined {
		opts.Filename = ""
		path, err = exporter.ReviewSummaries(logger, []models.ReviewSummary{*summary}, opts)
		if err != nil {
			return err
		}
		written("review summary csv", path)
	}

	return nil
}

type PRsSheetsCommand struct {
	AnalyzerOptions

	All  bool            `long:"all" description:"append every pull request, even ones already in the sheet"`
	Args DetailsFileArgs `positional-args:"yes"`
}

func (command *PRsSheetsCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if err := command.load(false); err != nil {
		return err
	}

	if !command.IsSheetsConfigured() {
		return errors.New("google sheets is not configured: set --spreadsheet-id and --google-credentials")
	}

	prFile := command.Args.File
	if prFile == "" {
		prFile = command.filename("created_prs_details")
	}

	return appendToSheet(context.Background(), newLogger("prs", command.Debug), &command.AnalyzerConfig, prFile, command.All)
}

func appendToSheet(ctx context.Context, logger lager.Logger, cfg *config.AnalyzerConfig, prFile string, all bool) error {
	var prs []models.PullRequest
	if err := export.ReadJSON(prFile, &prs); err != nil {
		return err
	}

	values, err := sheets.NewValuesAPIFromCredentials(ctx, cfg.Sheets.CredentialsFile)
	if err != nil {
		return err
	}

	appender := sheets.NewAppender(values, cfg.Sheets.SpreadsheetID, nil)

	var appended int
	if all {
		appended, err = appender.AppendPullRequests(ctx, logger, prs, cfg.Sheets.SheetName)
	} else {
		appended, err = appender.AppendNewPullRequests(ctx, logger, prs, cfg.Sheets.SheetName)
	}
	if err != nil {
		return err
	}

	sayf("%s %d of %d pull requests appended to %s\n", green("[DONE]"), appended, len(prs), cfg.Sheets.SheetName)
	return nil
}

type PRsPromptCommand struct {
	AnalyzerOptions

	TeamConfig         string `long:"team-config" description:"generate the team prompt for this team definition" env:"TEAM_CONFIG" value-name:"PATH"`
	IndividualTemplate string `long:"template" description:"individual prompt template" default:"analyzer_prompt.txt" value-name:"PATH"`
	TeamTemplate       string `long:"team-template" description:"team prompt template" default:"team_analyzer_prompt.txt" value-name:"PATH"`
}

func (command *PRsPromptCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := newLogger("prs", command.Debug)
	prompt := export.Prompt{
		IndividualTemplate: command.IndividualTemplate,
		TeamTemplate:       command.TeamTemplate,
	}

	var path string
	if command.TeamConfig != "" {
		bs, err := os.ReadFile(command.TeamConfig)
		if err != nil {
			return fmt.Errorf("reading team config: %w", err)
		}

		team, err := config.LoadTeamConfig(bs)
		if err != nil {
			return fmt.Errorf("parsing team config: %w", err)
		}

		dir := team.OutputDir
		if dir == "" {
			dir = analyzer.DefaultOutputDir
		}

		path, err = prompt.Team(logger, team.NameOrDefault(), team.PeriodStartDate, team.PeriodEndDate, dir)
		if err != nil {
			return err
		}
	} else {
		if err := command.load(false); err != nil {
			return err
		}

		p := command.Period()

		var err error
		path, err = prompt.Individual(logger, command.UserLogin, p.Start, p.End, command.OutputDir)
		if err != nil {
			return err
		}
	}

	written("prompt", path)
	return nil
}

type PRsConfigCommand struct {
	AnalyzerOptions
}

func (command *PRsConfigCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if err := command.LoadFile(command.ConfigFile); err != nil {
		return err
	}

	token := red("not set")
	if command.GitHubToken != "" {
		token = green("set")
	}

	say(cyan("GitHub PR analyzer configuration"))
	say()
	sayf("  GITHUB_TOKEN:      %s\n", token)
	sayf("  USER_LOGIN:        %s\n", orNone(command.UserLogin))
	sayf("  PERIOD_START_DATE: %s\n", orNone(command.PeriodStartDate))
	sayf("  PERIOD_END_DATE:   %s\n", orNone(command.PeriodEndDate))
	sayf("  REPOSITORIES:      %s\n", orNone(strings.Join(command.Repositories, ", ")))
	sayf("  OUTPUT_DIR:        %s\n", command.OutputDir)
	sayf("  Google Sheets:     %v\n", command.IsSheetsConfigured())
	say()

	errs := command.Validate()
	if len(errs) == 0 {
		say(green("Configuration is valid."))
		return nil
	}

	for _, err := range errs {
		say(red("[ERROR]"), err.Error())
	}

	return nil
}
