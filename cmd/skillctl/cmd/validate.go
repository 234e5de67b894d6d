package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/skill"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a skill directory's SKILL.md manifest",
	Long: `Check a local skill directory against the manifest format: the
SKILL.md frontmatter must parse, the name must be lowercase hyphenated
and match the directory name, and field length limits must hold.

Validation errors make the command exit non-zero, warnings do not.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	rep, err := skill.ValidateDir(args[0])
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), rep)
	if rep.HasErrors() {
		return fmt.Errorf("skill failed validation")
	}
	if rep.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "Skill is valid.")
	}
	return nil
}
