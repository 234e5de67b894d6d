package scan

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/skillctl/skillctl/internal/report"
	"github.com/skillctl/skillctl/internal/skillerr"
)

// ExternalTool is one external scanner the pipeline can delegate to.
// Tools are probed once at scanner construction; an absent binary is
// simply not part of the capability list.
type ExternalTool struct {
	// Name identifies the tool in reports.
	Name string

	// Path is the resolved binary path.
	Path string

	// Args are the fixed arguments passed before the scan root.
	Args []string
}

// knownTools are the external scanners probed for on the host.
var knownTools = []ExternalTool{
	{Name: "trivy", Args: []string{"fs", "--quiet"}},
	{Name: "clamscan", Args: []string{"-r"}},
}

// DetectTools probes the host for known external scanners and returns
// the available ones as the capability list.
func DetectTools() []ExternalTool {
	var tools []ExternalTool
	for _, tool := range knownTools {
		path, err := exec.LookPath(tool.Name)
		if err != nil {
			continue
		}
		tool.Path = path
		tools = append(tools, tool)
	}
	return tools
}

// Run invokes the tool against a tree root. The tool's exit status maps
// to severity: clean exit is informational, non-zero exit means the tool
// reported findings. An I/O failure launching the tool is returned as
// ExternalScanLaunchFailed.
func (t ExternalTool) Run(root string) (report.ExternalScanResult, error) {
	args := append(append([]string{}, t.Args...), root)
	output, err := exec.Command(t.Path, args...).CombinedOutput()

	severity := report.SeverityInfo
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return report.ExternalScanResult{}, skillerr.ExternalScanLaunchFailed(t.Name, err)
		}
		severity = report.SeverityWarning
	}

	combined := strings.TrimSpace(string(output))
	if combined == "" {
		combined = t.Name + " produced no output"
	}

	return report.ExternalScanResult{
		Tool:     t.Name,
		Severity: severity,
		Output:   combined,
	}, nil
}
