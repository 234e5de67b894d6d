package cmd

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/assistant"
	"github.com/skillctl/skillctl/internal/install"
	"github.com/skillctl/skillctl/internal/usage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-assistant skill counts, sizes, and usage",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadEnv()
	if err != nil {
		return err
	}

	store, err := usage.Open(p.UsageFile)
	if err != nil {
		return err
	}
	defer store.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ASSISTANT\tSKILLS\tSIZE\tUSES")
	for _, a := range assistant.All() {
		root := cfg.SkillsRootFor(p, a)
		names, err := install.List(root)
		if err != nil {
			return err
		}

		var size int64
		for _, name := range names {
			n, err := install.DirSize(filepath.Join(root, name))
			if err != nil {
				return err
			}
			size += n
		}

		records, err := store.ListFor(cmd.Context(), a)
		if err != nil {
			return err
		}
		var uses int64
		for _, r := range records {
			uses += r.Count
		}

		fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", a, len(names), humanize.Bytes(uint64(size)), uses)
	}
	return w.Flush()
}
