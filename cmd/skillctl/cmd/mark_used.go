package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/usage"
)

var markUsedCmd = &cobra.Command{
	Use:   "mark-used <name>",
	Short: "Record one use of an installed skill",
	Long: `Bump the usage counter for an installed skill. Assistants call this
after invoking a skill so that stats and show reflect real usage.`,
	Args: cobra.ExactArgs(1),
	RunE: runMarkUsed,
}

func init() {
	addAssistantFlags(markUsedCmd)
	rootCmd.AddCommand(markUsedCmd)
}

func runMarkUsed(cmd *cobra.Command, args []string) error {
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

	store, err := usage.Open(p.UsageFile)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Increment(cmd.Context(), target, name)
}
