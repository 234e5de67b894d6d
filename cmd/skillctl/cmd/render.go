package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/skillctl/skillctl/internal/report"
)

// severityLabel renders a severity tag colorized for terminal output.
func severityLabel(s report.Severity) string {
	switch s {
	case report.SeverityError:
		return color.RedString("[error]")
	case report.SeverityWarning:
		return color.YellowString("[warning]")
	default:
		return color.CyanString("[info]")
	}
}

// printReport writes a report's issues and external scanner results.
func printReport(w io.Writer, rep *report.Report) {
	for _, issue := range rep.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "%s %s (%s)\n", severityLabel(issue.Severity), issue.Message, issue.Path)
		} else {
			fmt.Fprintf(w, "%s %s\n", severityLabel(issue.Severity), issue.Message)
		}
	}
	for _, ext := range rep.External {
		fmt.Fprintf(w, "%s %s: %s\n", severityLabel(ext.Severity), ext.Tool, strings.TrimSpace(ext.Output))
	}
}
