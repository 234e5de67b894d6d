package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/assistant"
	"github.com/skillctl/skillctl/internal/install"
	"github.com/skillctl/skillctl/internal/skill"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search installed skills by name or description",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	addAssistantFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	term := strings.ToLower(args[0])

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	matches := 0
	for _, a := range assistants {
		root := cfg.SkillsRootFor(p, a)
		names, err := install.List(root)
		if err != nil {
			return err
		}
		for _, name := range names {
			fm, err := skill.ReadFrontmatter(filepath.Join(root, name))
			if err != nil {
				// An installed skill with a broken manifest still
				// matches on its directory name.
				fm = &skill.Frontmatter{Name: name}
			}
			if !strings.Contains(strings.ToLower(fm.Name), term) &&
				!strings.Contains(strings.ToLower(fm.Description), term) {
				continue
			}
			if matches == 0 {
				fmt.Fprintln(w, "SKILL\tASSISTANT\tDESCRIPTION")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, a, fm.Description)
			matches++
		}
	}

	if matches == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No skills matching %q.\n", args[0])
		return nil
	}
	return w.Flush()
}
