package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/assistant"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the paths skillctl uses",
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadEnv()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Config:\t%s\n", p.ConfigFile)
	fmt.Fprintf(w, "Data:\t%s\n", p.DataDir)
	fmt.Fprintf(w, "Usage:\t%s\n", p.UsageFile)
	for _, a := range assistant.All() {
		fmt.Fprintf(w, "Skills (%s):\t%s\n", a, cfg.SkillsRootFor(p, a))
	}
	return w.Flush()
}
