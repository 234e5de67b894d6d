package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/assistant"
	"github.com/skillctl/skillctl/internal/install"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills",
	Long: `List installed skills across assistants.

Without an assistant flag every assistant's skills root is listed. Use
--json for machine-readable output.`,
	RunE: runList,
}

func init() {
	addAssistantFlags(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

type listEntry struct {
	Name      string `json:"name"`
	Assistant string `json:"assistant"`
	Path      string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadEnv()
	if err != nil {
		return err
	}

	assistants := assistant.All()
	if flagCodex || flagClaudeCode || flagOpenCode {
		a, err := selectedAssistant(cfg)
		if err != nil {
			return err
		}
		assistants = []assistant.Assistant{a}
	}

	var entries []listEntry
	for _, a := range assistants {
		root := cfg.SkillsRootFor(p, a)
		names, err := install.List(root)
		if err != nil {
			return err
		}
		for _, name := range names {
			entries = append(entries, listEntry{
				Name:      name,
				Assistant: a.String(),
				Path:      filepath.Join(root, name),
			})
		}
	}

	if listJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills installed.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKILL\tASSISTANT\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Assistant, e.Path)
	}
	return w.Flush()
}
