package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	yaml "gopkg.in/yaml.v2"

	"github.com/devscope/devscope/models"
)

func LoadAnalyzerConfig(bs []byte) (*AnalyzerConfig, error) {
	c := &AnalyzerConfig{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

type AnalyzerConfig struct {
	GitHubToken     string   `long:"github-token" description:"github api access token" env:"GITHUB_TOKEN" value-name:"TOKEN" yaml:"github_token"`
	UserLogin       string   `short:"u" long:"user" description:"github login to analyze" env:"USER_LOGIN" value-name:"LOGIN" yaml:"user_login"`
	PeriodStartDate string   `long:"start-date" description:"first day of the period (YYYY-MM-DD)" env:"PERIOD_START_DATE" value-name:"DATE" yaml:"period_start_date"`
	PeriodEndDate   string   `long:"end-date" description:"last day of the period (YYYY-MM-DD)" env:"PERIOD_END_DATE" value-name:"DATE" yaml:"period_end_date"`
	Repositories    []string `short:"r" long:"repository" description:"owner/name of a repository to restrict the search to" env:"REPOSITORIES" env-delim:"," value-name:"REPO" yaml:"repositories"`
	OutputDir       string   `short:"o" long:"output-dir" description:"directory to write results to" env:"OUTPUT_DIR" default:"./output" value-name:"PATH" yaml:"output_dir"`
	WithApprovals   bool     `long:"with-approvals" description:"look up first approval and ready-for-review times for every pull request" yaml:"with_approvals"`

	GitHub struct {
		GraphQLURL string `long:"github-graphql-url" description:"github graphql endpoint" default:"https://api.github.com/graphql" value-name:"URL" yaml:"graphql_url"`
		APIURL     string `long:"github-api-url" description:"github rest endpoint" default:"https://api.github.com/" value-name:"URL" yaml:"api_url"`
	} `group:"GitHub Options" yaml:"github"`

	Sheets struct {
		SpreadsheetID   string `long:"spreadsheet-id" description:"google spreadsheet to append to" env:"GOOGLE_SPREADSHEET_ID" value-name:"ID" yaml:"spreadsheet_id"`
		CredentialsFile string `long:"google-credentials" description:"path to a service account key" env:"GOOGLE_APPLICATION_CREDENTIALS" value-name:"PATH" yaml:"credentials_file"`
		SheetName       string `long:"sheet-name" description:"sheet (tab) to write to" default:"Sheet1" value-name:"NAME" yaml:"sheet_name"`
	} `group:"Google Sheets Options" yaml:"sheets"`
}

func (c *AnalyzerConfig) Period() Period {
	return Period{Start: c.PeriodStartDate, End: c.PeriodEndDate}
}

func (c *AnalyzerConfig) Validate() []error {
	var errs []error

	if c.GitHubToken == "" {
		errs = append(errs, errors.New("no github token specified (GITHUB_TOKEN)"))
	}

	errs = append(errs, c.ValidateLocal()...)

	if !allBlankOrAllSet(c.Sheets.SpreadsheetID, c.Sheets.CredentialsFile) {
		errs = append(errs, errors.New("all google sheets options required if any are set"))
	}

	return errs
}

// ValidateLocal checks only what steps that read existing result files need.
func (c *AnalyzerConfig) ValidateLocal() []error {
	var errs []error

	if c.UserLogin == "" {
		errs = append(errs, errors.New("no user login specified (USER_LOGIN)"))
	}

	return append(errs, c.Period().Validate()...)
}

func (c *AnalyzerConfig) IsSheetsConfigured() bool {
	return allSet(c.Sheets.SpreadsheetID, c.Sheets.CredentialsFile)
}

func (c *AnalyzerConfig) Merge(other *AnalyzerConfig) error {
	src := reflect.ValueOf(other).Elem()
	dst := reflect.ValueOf(c).Elem()

	return merge(dst, src)
}

// LoadFile merges the yaml document at path over c when path is set.
func (c *AnalyzerConfig) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	fromFile, err := LoadAnalyzerConfig(bs)
	if err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return c.Merge(fromFile)
}

func LoadTeamConfig(bs []byte) (*models.TeamConfig, error) {
	c := &models.TeamConfig{}
	err := yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func ValidateTeamConfig(c *models.TeamConfig) []error {
	var errs []error

	if len(c.TeamMembers) == 0 {
		errs = append(errs, errors.New("no team members specified"))
	}

	errs = append(errs, Period{Start: c.PeriodStartDate, End: c.PeriodEndDate}.Validate()...)

	if c.Parallelism < 0 {
		errs = append(errs, errors.New("parallelism must not be negative"))
	}

	return errs
}
