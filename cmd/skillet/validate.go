package main

import (
	"os"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <skill-directory>",
	Short: "Validate a skill directory",
	Long: `Validate a skill directory's SKILL.md structure and frontmatter.

Prints a single diagnostic line and exits 0 when the skill is valid, 1
otherwise. Validation is read-only.

Examples:
  skillet validate skills/my-new-skill
  skillet validate .`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		valid, message := skills.Validate(args[0])
		if !valid {
			presenter.Error(errors.New(message), "")
			os.Exit(1)
		}
		presenter.Success(message)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
