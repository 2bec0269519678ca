package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all installed skills",
	Long: `List all installed skills with their names, descriptions, and directory paths.

Skills are discovered from ./skills and ~/.skillet/skills by default; set
skills.dirs in the config file to override.`,
	Run: func(_ *cobra.Command, _ []string) {
		listSkillsCmd()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func newDiscovery() (*skills.Discovery, error) {
	if dirs := viper.GetStringSlice("skills.dirs"); len(dirs) > 0 {
		return skills.NewDiscovery(skills.WithSkillDirs(dirs...))
	}
	return skills.NewDiscovery()
}

func listSkillsCmd() {
	discovery, err := newDiscovery()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	allSkills, err := discovery.DiscoverSkills()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if len(allSkills) == 0 {
		presenter.Info("No skills installed")
		return
	}

	names := make([]string, 0, len(allSkills))
	for name := range allSkills {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	for _, name := range names {
		skill := allSkills[name]
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, skill.Directory, description)
	}
	tw.Flush()
}
