package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/install"
	"github.com/skillctl/skillctl/internal/skill"
	"github.com/skillctl/skillctl/internal/usage"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show details of an installed skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	addAssistantFlags(showCmd)
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadEnv()
	if err != nil {
		return err
	}
	target, err := selectedAssistant(cfg)
	if err != nil {
		return err
	}

	name := args[0]
	dir := filepath.Join(cfg.SkillsRootFor(p, target), name)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("skill %q is not installed for %s", name, target)
		}
		return err
	}

	fm, err := skill.ReadFrontmatter(dir)
	if err != nil {
		return err
	}
	size, err := install.DirSize(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:        %s\n", fm.Name)
	fmt.Fprintf(out, "Description: %s\n", fm.Description)
	if fm.License != nil {
		fmt.Fprintf(out, "License:     %s\n", *fm.License)
	}
	if fm.Compatibility != nil {
		fmt.Fprintf(out, "Compat:      %s\n", *fm.Compatibility)
	}
	if fm.AllowedTools != nil {
		fmt.Fprintf(out, "Tools:       %s\n", *fm.AllowedTools)
	}
	if len(fm.Metadata) > 0 {
		keys := make([]string, 0, len(fm.Metadata))
		for k := range fm.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(out, "Metadata:")
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %s\n", k, fm.Metadata[k])
		}
	}
	fmt.Fprintf(out, "Path:        %s\n", dir)
	fmt.Fprintf(out, "Size:        %s\n", humanize.Bytes(uint64(size)))

	store, err := usage.Open(p.UsageFile)
	if err != nil {
		return err
	}
	defer store.Close()
	count, err := store.CountFor(cmd.Context(), target, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Used:        %d times\n", count)
	return nil
}
