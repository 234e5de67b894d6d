package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/assistant"
	"github.com/skillctl/skillctl/internal/config"
	"github.com/skillctl/skillctl/internal/logging"
	"github.com/skillctl/skillctl/internal/paths"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose bool

	// Assistant selection flags, shared by the commands that operate on
	// one assistant's skills root.
	flagCodex      bool
	flagClaudeCode bool
	flagOpenCode   bool
)

var rootCmd = &cobra.Command{
	Use:   "skillctl",
	Short: "Manage skills for AI coding assistants",
	Long: `skillctl installs, audits, and tracks skill bundles for AI coding
assistants (Codex, Claude Code, OpenCode).

Skills are acquired from local directories, git repositories, or archive
URLs, validated against the SKILL.md manifest format, and security
scanned before anything lands in an assistant's skills directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("skillctl {{.Version}}\n")
}

// newLogger returns the logger for one command invocation.
func newLogger() *slog.Logger {
	if verbose {
		return logging.NewWithLevel(slog.LevelDebug)
	}
	return logging.NewDefault()
}

// loadEnv resolves application paths and configuration.
func loadEnv() (*paths.AppPaths, *config.Config, error) {
	p, err := paths.New()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(p)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return p, cfg, nil
}

// addAssistantFlags registers the assistant selection flags on a command.
func addAssistantFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagCodex, "codex", false, "operate on Codex skills")
	cmd.Flags().BoolVar(&flagClaudeCode, "claudecode", false, "operate on Claude Code skills")
	cmd.Flags().BoolVar(&flagOpenCode, "opencode", false, "operate on OpenCode skills")
}

// selectedAssistant resolves the assistant from flags, falling back to
// the configured default.
func selectedAssistant(cfg *config.Config) (assistant.Assistant, error) {
	var picked []assistant.Assistant
	if flagCodex {
		picked = append(picked, assistant.Codex)
	}
	if flagClaudeCode {
		picked = append(picked, assistant.ClaudeCode)
	}
	if flagOpenCode {
		picked = append(picked, assistant.OpenCode)
	}

	switch len(picked) {
	case 0:
		if a, ok := cfg.Assistant(); ok {
			return a, nil
		}
		return "", fmt.Errorf("no assistant selected: pass --codex, --claudecode, or --opencode, or set a default with 'skillctl default <assistant>'")
	case 1:
		return picked[0], nil
	default:
		return "", fmt.Errorf("only one assistant flag may be set")
	}
}
