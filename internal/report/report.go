// Package report provides the shared issue and severity model used by
// skill validation and security scanning.
package report

import "fmt"

// Severity classifies how serious an issue is. Errors block installation,
// warnings and info are surfaced to the operator but never block.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a single validation or scan finding.
type Issue struct {
	Severity Severity
	Message  string
	Path     string // optional file or directory the issue refers to
}

// String formats the issue for operator-facing output.
func (i Issue) String() string {
	if i.Path != "" {
		return fmt.Sprintf("[%s] %s (%s)", i.Severity, i.Message, i.Path)
	}
	return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
}

// ExternalScanResult is the outcome of one external scanner invocation.
type ExternalScanResult struct {
	Tool     string
	Severity Severity
	Output   string
}

// Report is an ordered sequence of issues, optionally extended with
// external scanner results.
type Report struct {
	Issues   []Issue
	External []ExternalScanResult
}

// Add appends an issue to the report.
func (r *Report) Add(severity Severity, message, path string) {
	r.Issues = append(r.Issues, Issue{Severity: severity, Message: message, Path: path})
}

// Error appends an error-severity issue.
func (r *Report) Error(message, path string) {
	r.Add(SeverityError, message, path)
}

// Warn appends a warning-severity issue.
func (r *Report) Warn(message, path string) {
	r.Add(SeverityWarning, message, path)
}

// HasErrors reports whether any issue or external scan result carries
// error severity.
func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	for _, ext := range r.External {
		if ext.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Empty reports whether the report has no issues and no external results.
func (r *Report) Empty() bool {
	return len(r.Issues) == 0 && len(r.External) == 0
}
