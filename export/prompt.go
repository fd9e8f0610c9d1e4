package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/lager"
)

//go:embed templates
var templates embed.FS

const (
	individualTitle  = "# GitHub PR Analyzer Result Analysis Prompt"
	teamTitle        = "# GitHub PR Analyzer Team Analysis Prompt"
	dataFilesHeading = "## Data Files"
	dataHeading      = "## Analysis Data"
	analysisHeading  = "## Analysis Points"
	teamAnalysis     = "## Team Analysis Points"

	DefaultIndividualTemplate = "analyzer_prompt.txt"
	DefaultTeamTemplate       = "team_analyzer_prompt.txt"
)

// Prompt fills analysis prompt templates with the JSON files written by the
// analyzer. A template path that does not exist falls back to the built-in
// template of the same name.
type Prompt struct {
	IndividualTemplate string
	TeamTemplate       string
}

func (p Prompt) loadTemplate(path, fallback string) (string, error) {
	if path == "" {
		path = fallback
	}

	bs, err := os.ReadFile(path)
	if err == nil {
		return string(bs), nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	bs, err = templates.ReadFile("templates/" + fallback)
	if err != nil {
		return "", err
	}

	return string(bs), nil
}

type section struct {
	heading string
	body    []byte
}

// readDataFile returns the file's JSON re-indented by two spaces. Missing or
// malformed files are logged and skipped.
func readDataFile(logger lager.Logger, path string) ([]byte, bool) {
	bs, err := os.ReadFile(path)
	if err != nil {
		logger.Info("skipping-data-file", lager.Data{"path": path, "error": err.Error()})
		return nil, false
	}

	var out bytes.Buffer
	if err := json.Indent(&out, bytes.TrimSpace(bs), "", "  "); err != nil {
		logger.Info("skipping-data-file", lager.Data{"path": path, "error": err.Error()})
		return nil, false
	}

	return out.Bytes(), true
}

func renderSections(sections []section) string {
	var b strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&b, "%s\n\n```json\n%s\n```\n\n", s.heading, s.body)
	}
	return b.String()
}

func fill(template, title, period, analysisMarker, data string) string {
	prompt := strings.Replace(template, title, title+" - "+period, 1)

	start := strings.Index(prompt, dataFilesHeading)
	end := strings.Index(prompt, analysisMarker)
	if start == -1 || end == -1 || end < start {
		return prompt
	}

	return prompt[:start] + dataHeading + "\n\n" + data + "\n\n" + prompt[end:]
}

func (p Prompt) Individual(logger lager.Logger, user, start, end, dir string) (string, error) {
	logger = logger.Session("generate-individual-prompt", lager.Data{"user": user})
	logger.Info("starting")

	files := []struct {
		prefix  string
		heading string
		array   bool
	}{
		{"created_prs_details", "### 1. Pull Request Details", true},
		{"my_review_summary", "### 2. Review Summary", false},
		{"overall_summary", "### 3. Overall Summary", false},
		{"repository_summary", "### 4. Repository Summary", false},
	}

	var sections []section
	for _, f := range files {
		body, ok := readDataFile(logger, filepath.Join(dir, Filename(f.prefix, user, start, end, "json")))
		if !ok {
			continue
		}
		if f.array && !bytes.HasPrefix(body, []byte("[")) {
			logger.Info("skipping-data-file", lager.Data{"prefix": f.prefix, "error": "expected a json array"})
			continue
		}
		sections = append(sections, section{heading: f.heading, body: body})
	}

	template, err := p.loadTemplate(p.IndividualTemplate, DefaultIndividualTemplate)
	if err != nil {
		logger.Error("failed", err)
		return "", err
	}

	period := fmt.Sprintf("%s (%s ~ %s)", user, start, end)
	prompt := fill(template, individualTitle, period, analysisHeading, renderSections(sections))

	path, err := WriteText(dir, fmt.Sprintf("analysis_prompt_%s_%s-%s.txt", user, start, end), prompt)
	if err != nil {
		logger.Error("failed", err)
		return "", err
	}

	logger.Info("done", lager.Data{"path": path, "sections": len(sections)})
	return path, nil
}

func (p Prompt) Team(logger lager.Logger, team, start, end, dir string) (string, error) {
	logger = logger.Session("generate-team-prompt", lager.Data{"team": team})
	logger.Info("starting")

	var sections []section

	summary, ok := readDataFile(logger, filepath.Join(dir, TeamSummaryFilename(team, start, end)))
	if ok {
		sections = append(sections, section{heading: "### 1. Team Summary", body: summary})

		var members struct {
			TeamMembers []string `json:"team_members"`
		}
		if err := json.Unmarshal(summary, &members); err != nil {
			logger.Info("skipping-member-details", lager.Data{"error": err.Error()})
		}

		first := true
		for _, member := range members.TeamMembers {
			body, ok := readDataFile(logger, filepath.Join(dir, TeamMemberDetailsFilename(member, start, end)))
			if !ok {
				continue
			}

			heading := "#### " + member
			if first {
				heading = "### 2. Member Details\n\n" + heading
				first = false
			}
			sections = append(sections, section{heading: heading, body: body})
		}
	}

	template, err := p.loadTemplate(p.TeamTemplate, DefaultTeamTemplate)
	if err != nil {
		logger.Error("failed", err)
		return "", err
	}

	period := fmt.Sprintf("%s (%s ~ %s)", team, start, end)
	prompt := fill(template, teamTitle, period, teamAnalysis, renderSections(sections))

	path, err := WriteText(dir, fmt.Sprintf("team_analysis_prompt_%s_%s-%s.txt", team, start, end), prompt)
	if err != nil {
		logger.Error("failed", err)
		return "", err
	}

	logger.Info("done", lager.Data{"path": path, "sections": len(sections)})
	return path, nil
}

func TeamSummaryFilename(team, start, end string) string {
	return fmt.Sprintf("team_summary_%s_%s-%s.json", team, start, end)
}

func TeamMemberDetailsFilename(member, start, end string) string {
	return Filename("team_member_details", member, start, end, "json")
}
