package main

import (
	"fmt"
	"os"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <skill-name>",
	Short: "Create a new skill directory from templates",
	Long: `Create a new skill directory with a templated SKILL.md and example
scripts/, references/, and assets/ directories.

Skill name requirements:
  - Lowercase letters, digits, and hyphens only
  - Max 64 characters
  - Must match directory name

Examples:
  skillet init my-new-skill --path skills
  skillet init custom-skill --path /custom/location`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		name := args[0]
		path, _ := cmd.Flags().GetString("path")

		presenter.Info(fmt.Sprintf("Initializing skill: %s", name))
		presenter.Info(fmt.Sprintf("Location: %s", path))

		skillDir, err := skills.InitSkill(ctx, name, path)
		if err != nil {
			presenter.Error(err, "Failed to initialize skill")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Skill '%s' initialized at %s", name, skillDir))
		presenter.Section("Next steps")
		presenter.Info("1. Edit SKILL.md to complete the TODO items")
		presenter.Info("2. Customize or delete example files in scripts/, references/, assets/")
		presenter.Info(fmt.Sprintf("3. Run 'skillet validate %s' to check the skill structure", skillDir))
	},
}

func init() {
	initCmd.Flags().StringP("path", "p", "", "Destination directory to create the skill under")
	initCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(initCmd)
}
