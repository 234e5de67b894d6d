package cmd

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/install"
	"github.com/skillctl/skillctl/internal/logging"
	"github.com/skillctl/skillctl/internal/paths"
	"github.com/skillctl/skillctl/internal/scan"
	"github.com/skillctl/skillctl/internal/skill"
	"github.com/skillctl/skillctl/internal/source"
)

var (
	addYes       bool
	addSkillPath string
)

var addCmd = &cobra.Command{
	Use:   "add <source>",
	Short: "Validate, scan, and install a skill",
	Long: `Add a skill to an assistant's skills directory.

The source may be a local directory, a git repository, or a direct URL
to a .zip, .tar, or .tar.gz archive. The skill is validated against the
SKILL.md manifest format and security scanned before installation;
validation or scan errors abort the install, warnings require
confirmation unless --yes is given.

Examples:
  # Install a local skill for Claude Code
  skillctl add ./pdf-processing --claudecode

  # Install from a git repository
  skillctl add https://github.com/acme/pdf-processing.git --codex

  # Install from an archive URL without prompting
  skillctl add https://example.com/skill.tar.gz --opencode --yes

  # Pick one skill out of a repository holding several
  skillctl add https://github.com/acme/skills.git --codex --skill pdf-processing`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addAssistantFlags(addCmd)
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "skip the confirmation prompt")
	addCmd.Flags().StringVar(&addSkillPath, "skill", "", "relative path of the skill within the source (for multi-skill repositories)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadEnv()
	if err != nil {
		return err
	}
	target, err := selectedAssistant(cfg)
	if err != nil {
		return err
	}

	logger := logging.WithSource(logging.WithInvocation(newLogger()), args[0])

	tree, err := source.Resolve(args[0], logger)
	if err != nil {
		return err
	}
	defer tree.Cleanup()

	skillDir := tree.Path
	if addSkillPath != "" {
		skillDir, err = source.ResolveSkillPath(tree.Path, addSkillPath)
		if err != nil {
			return err
		}
	}

	valRep, err := skill.ValidateDir(skillDir)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), valRep)
	if valRep.HasErrors() {
		return fmt.Errorf("skill failed validation")
	}

	fm, err := skill.ReadFrontmatter(skillDir)
	if err != nil {
		return err
	}

	scanner := scan.New(logging.WithSkill(logger, fm.Name))
	scanRep, scanErr := scanner.Scan(skillDir)
	if scanRep == nil {
		return scanErr
	}
	printReport(cmd.OutOrStdout(), scanRep)
	if scanRep.HasErrors() {
		return fmt.Errorf("skill failed security scan")
	}
	if scanErr != nil {
		// A scanner that fails to launch is broken rather than
		// reporting findings; the surviving results are shown but the
		// install does not proceed.
		return scanErr
	}

	if !addYes {
		ok, err := confirm(cmd, fmt.Sprintf("Install %q for %s?", fm.Name, target))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	root := cfg.SkillsRootFor(p, target)
	if err := paths.EnsureDir(root); err != nil {
		return err
	}
	dst := filepath.Join(root, fm.Name)
	if err := install.Install(skillDir, dst); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %s to %s\n", fm.Name, dst)
	return nil
}

// confirm asks a yes/no question on the command's input stream.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
