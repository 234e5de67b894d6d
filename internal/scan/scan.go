// Package scan walks a candidate skill tree applying heuristic security
// detectors and delegating to external scanners when present. The tree
// is never mutated.
package scan

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/skillctl/skillctl/internal/report"
)

// MaxFileBytes is the per-file size above which content checks are
// skipped; such files are flagged but not read.
const MaxFileBytes int64 = 10 << 20

// Scanner classifies every file in a tree and runs whichever external
// scanning tools were detected on the host at construction time.
type Scanner struct {
	logger *slog.Logger
	tools  []ExternalTool
}

// New creates a Scanner with the external tools available on this host.
func New(logger *slog.Logger) *Scanner {
	return &Scanner{
		logger: logger,
		tools:  DetectTools(),
	}
}

// NewWithTools creates a Scanner with an explicit capability list.
func NewWithTools(logger *slog.Logger, tools []ExternalTool) *Scanner {
	return &Scanner{logger: logger, tools: tools}
}

// Scan walks the tree rooted at root and returns the merged report.
// Built-in heuristics always complete; if an external scanner fails to
// launch, the report is still returned alongside the launch error so
// the remaining findings stay visible.
func (s *Scanner) Scan(root string) (*report.Report, error) {
	rep := &report.Report{}

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("path does not exist: %s", root)
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type()&fs.ModeSymlink != 0 {
			rep.Warn("symlink detected", path)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		s.scanFile(path, d, rep)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	var launchErr error
	for _, tool := range s.tools {
		result, err := tool.Run(root)
		if err != nil {
			// The tool is broken rather than reporting findings.
			// Record the failure but let the other scanners and the
			// heuristic findings stand.
			s.logger.Error("external scanner failed to launch", "tool", tool.Name, "error", err)
			if launchErr == nil {
				launchErr = err
			}
			continue
		}
		rep.External = append(rep.External, result)
	}

	return rep, launchErr
}

// scanFile applies the structural and content checks to a single file.
func (s *Scanner) scanFile(path string, d fs.DirEntry, rep *report.Report) {
	info, err := d.Info()
	if err != nil {
		rep.Warn(fmt.Sprintf("unreadable file metadata: %v", err), path)
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if executableExtensions[ext] {
		rep.Warn("executable or binary file detected", path)
	}

	if info.Size() > MaxFileBytes {
		rep.Warn(fmt.Sprintf("large file (%d bytes)", info.Size()), path)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		rep.Warn(fmt.Sprintf("unreadable file: %v", err), path)
		return
	}

	if bytes.ContainsRune(data, 0) {
		rep.Warn("binary content detected", path)
		return
	}
	if !utf8.Valid(data) {
		rep.Warn("non-utf8 file content detected", path)
		return
	}

	content := string(data)
	for _, pattern := range secretPatterns {
		if pattern.MatchString(content) {
			rep.Error("potential secret detected", path)
			break
		}
	}

	if scriptExtensions[ext] {
		for _, pattern := range dangerousCommands {
			if pattern.MatchString(content) {
				rep.Warn("risky command detected in script", path)
				break
			}
		}
	}
}
