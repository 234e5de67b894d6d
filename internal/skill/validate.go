package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/skillctl/skillctl/internal/report"
)

// namePattern matches lowercase alphanumeric tokens joined by single
// hyphens: no leading, trailing, or doubled hyphens.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Field length caps.
const (
	maxNameLen          = 64
	maxDescriptionLen   = 1024
	maxLicenseLen       = 256
	maxCompatibilityLen = 500
	maxAllowedToolsLen  = 2048
)

// ValidateDir validates the skill manifest in a directory and returns
// the accumulated report. Warnings never block installation; the caller
// decides what to do when the report has errors.
func ValidateDir(dir string) (*report.Report, error) {
	rep := &report.Report{}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %s", dir)
	}
	if !info.IsDir() {
		rep.Error("skill path must be a directory", dir)
		return rep, nil
	}

	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err != nil {
		rep.Error("SKILL.md is missing", manifestPath)
		return rep, nil
	}

	fm, err := ReadFrontmatter(dir)
	if err != nil {
		// Unparsable input gets a single error; no field checks run.
		rep.Error(err.Error(), manifestPath)
		return rep, nil
	}

	validateName(fm.Name, dir, rep)
	validateDescription(fm.Description, manifestPath, rep)
	validateOptional("license", fm.License, maxLicenseLen, manifestPath, rep)
	validateOptional("compatibility", fm.Compatibility, maxCompatibilityLen, manifestPath, rep)
	validateOptional("allowed-tools", fm.AllowedTools, maxAllowedToolsLen, manifestPath, rep)
	validateMetadata(fm.Metadata, manifestPath, rep)

	return rep, nil
}

func validateName(name, dir string, rep *report.Report) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		rep.Error("name is required", dir)
		return
	}

	if len(trimmed) > maxNameLen {
		rep.Error(fmt.Sprintf("name must be <= %d characters", maxNameLen), dir)
	}
	if !namePattern.MatchString(trimmed) {
		rep.Error("name must be lowercase alphanumeric with hyphens", dir)
	}
	if dirName := filepath.Base(dir); dirName != trimmed {
		rep.Error("name must match the skill directory name", dir)
	}
}

func validateDescription(description, manifestPath string, rep *report.Report) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		rep.Error("description is required", manifestPath)
		return
	}
	if len(trimmed) > maxDescriptionLen {
		rep.Error(fmt.Sprintf("description must be <= %d characters", maxDescriptionLen), manifestPath)
	}
}

func validateOptional(field string, value *string, maxLen int, manifestPath string, rep *report.Report) {
	if value == nil {
		return
	}
	if strings.TrimSpace(*value) == "" {
		rep.Warn(fmt.Sprintf("%s should not be empty", field), manifestPath)
		return
	}
	if len(*value) > maxLen {
		rep.Error(fmt.Sprintf("%s must be <= %d characters", field, maxLen), manifestPath)
	}
}

func validateMetadata(metadata map[string]string, manifestPath string, rep *report.Report) {
	// Keys are visited in sorted order so the first offender is stable.
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.TrimSpace(key) == "" || strings.TrimSpace(metadata[key]) == "" {
			rep.Warn("metadata entries should not be empty", manifestPath)
			return
		}
	}
}
