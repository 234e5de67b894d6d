package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/assistant"
)

var defaultCmd = &cobra.Command{
	Use:   "default [assistant]",
	Short: "Show or set the default assistant",
	Long: `Without an argument, print the configured default assistant. With an
argument (codex, claudecode, or opencode), persist it as the default so
other commands no longer need an assistant flag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDefault,
}

func init() {
	rootCmd.AddCommand(defaultCmd)
}

func runDefault(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadEnv()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if a, ok := cfg.Assistant(); ok {
			fmt.Fprintln(cmd.OutOrStdout(), a)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No default assistant set.")
		}
		return nil
	}

	a, err := assistant.Parse(args[0])
	if err != nil {
		return err
	}
	cfg.DefaultAssistant = a.String()
	if err := cfg.Save(p); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Default assistant set to %s\n", a)
	return nil
}
