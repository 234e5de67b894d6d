package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillctl/skillctl/internal/logging"
	"github.com/skillctl/skillctl/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Security scan a skill directory",
	Long: `Run the security heuristics and any available external scanners
(trivy, clamscan) against a local skill directory without installing it.

Findings with error severity, or an external scanner that fails to
launch, make the command exit non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := logging.WithInvocation(newLogger())

	scanner := scan.New(logger)
	rep, scanErr := scanner.Scan(args[0])
	if rep == nil {
		return scanErr
	}

	printReport(cmd.OutOrStdout(), rep)
	if rep.HasErrors() {
		return fmt.Errorf("scan found blocking issues")
	}
	if scanErr != nil {
		return scanErr
	}
	if rep.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No findings.")
	}
	return nil
}
