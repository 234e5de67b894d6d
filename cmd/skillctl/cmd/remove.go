package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/install"
	"github.com/skillctl/skillctl/internal/usage"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Uninstall a skill",
	Long: `Remove an installed skill from an assistant's skills directory and
drop its usage counters. Asks for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	addAssistantFlags(removeCmd)
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
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
			return fmt.Errorf("skill not installed at %s", dir)
		}
		return err
	}

	if !removeYes {
		ok, err := confirm(cmd, fmt.Sprintf("Remove %q for %s?", name, target))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := install.Remove(dir); err != nil {
		return err
	}

	store, err := usage.Open(p.UsageFile)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Forget(cmd.Context(), name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
	return nil
}
