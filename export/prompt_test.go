package export_test

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/devscope/devscope/export"
)

var _ = Describe("Prompt", func() {
	var (
		dir    string
		logger *lagertest.TestLogger
		prompt export.Prompt
	)

	write := func(name, content string) {
		Expect(os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)).To(Succeed())
	}

	read := func(path string) string {
		bs, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		return string(bs)
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "prompt")
		Expect(err).NotTo(HaveOccurred())

		logger = lagertest.NewTestLogger("prompt")
		prompt = export.Prompt{
			IndividualTemplate: filepath.Join(dir, "missing-template.txt"),
			TeamTemplate:       filepath.Join(dir, "missing-team-template.txt"),
		}
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	Describe("Individual", func() {
		BeforeEach(func() {
			write("created_prs_details_alice_2024-01-01-2024-01-31.json", `[{"pr_number":1}]`)
			write("overall_summary_alice_2024-01-01-2024-01-31.json", `{"user":"alice","total_created_prs":1}`)
		})

		It("embeds the available data files between the headings", func() {
			path, err := prompt.Individual(logger, "alice", "2024-01-01", "2024-01-31", dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Base(path)).To(Equal("analysis_prompt_alice_2024-01-01-2024-01-31.txt"))

			out := read(path)
			Expect(out).To(HavePrefix("# GitHub PR Analyzer Result Analysis Prompt - alice (2024-01-01 ~ 2024-01-31)\n"))
			Expect(out).To(ContainSubstring("## Analysis Data\n\n### 1. Pull Request Details\n\n```json\n[\n  {\n    \"pr_number\": 1\n  }\n]\n```"))
			Expect(out).To(ContainSubstring("### 3. Overall Summary"))
			Expect(out).NotTo(ContainSubstring("### 2. Review Summary"))
			Expect(out).NotTo(ContainSubstring("## Data Files"))
			Expect(out).To(ContainSubstring("## Analysis Points"))
		})

		It("logs the files it skipped", func() {
			_, err := prompt.Individual(logger, "alice", "2024-01-01", "2024-01-31", dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(logger).To(gbytes.Say("skipping-data-file"))
		})

		It("uses a template from disk when it exists", func() {
			template := filepath.Join(dir, "custom.txt")
			Expect(os.WriteFile(template, []byte("# GitHub PR Analyzer Result Analysis Prompt\n## Data Files\nnone\n## Analysis Points\nbe brief\n"), 0644)).To(Succeed())
			prompt.IndividualTemplate = template

			path, err := prompt.Individual(logger, "alice", "2024-01-01", "2024-01-31", dir)
			Expect(err).NotTo(HaveOccurred())

			out := read(path)
			Expect(out).To(HaveSuffix("## Analysis Points\nbe brief\n"))
			Expect(out).NotTo(ContainSubstring("none"))
		})
	})

	Describe("Team", func() {
		BeforeEach(func() {
			write("team_summary_core_2024-01-01-2024-01-31.json", `{"team_name":"core","team_members":["alice","bob"]}`)
			write("team_member_details_alice_2024-01-01-2024-01-31.json", `{"member":"alice"}`)
		})

		It("embeds the team summary and each member's details", func() {
			path, err := prompt.Team(logger, "core", "2024-01-01", "2024-01-31", dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Base(path)).To(Equal("team_analysis_prompt_core_2024-01-01-2024-01-31.txt"))

			out := read(path)
			Expect(out).To(HavePrefix("# GitHub PR Analyzer Team Analysis Prompt - core (2024-01-01 ~ 2024-01-31)\n"))
			Expect(out).To(ContainSubstring("### 1. Team Summary"))
			Expect(out).To(ContainSubstring("### 2. Member Details\n\n#### alice\n\n```json\n{\n  \"member\": \"alice\"\n}\n```"))
			Expect(out).NotTo(ContainSubstring("#### bob"))
			Expect(out).To(ContainSubstring("## Team Analysis Points"))
		})
	})
})
