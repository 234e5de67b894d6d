// Package paths resolves the on-disk locations skillctl uses for its
// configuration, data, and installed skills.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// HomeDirName is the skillctl home directory under $HOME.
	HomeDirName = ".skillctl"

	// DataDirName is the subdirectory holding installed skill data.
	DataDirName = "data"

	// ConfigFileName is the configuration file name.
	ConfigFileName = "config.toml"

	// UsageFileName is the usage-counter database file name.
	UsageFileName = "usage.db"
)

// AppPaths holds the resolved application paths.
type AppPaths struct {
	ConfigDir     string
	ConfigFile    string
	DataDir       string
	UsageFile     string
	SkillsBaseDir string
}

// New resolves paths rooted at the user's home directory.
func New() (*AppPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home dir: %w", err)
	}
	return NewAt(filepath.Join(home, HomeDirName)), nil
}

// NewAt resolves paths rooted at an explicit base directory.
// Used by tests to avoid touching the real home directory.
func NewAt(base string) *AppPaths {
	dataDir := filepath.Join(base, DataDirName)
	return &AppPaths{
		ConfigDir:     base,
		ConfigFile:    filepath.Join(base, ConfigFileName),
		DataDir:       dataDir,
		UsageFile:     filepath.Join(base, UsageFileName),
		SkillsBaseDir: dataDir,
	}
}

// EnsureDir creates a directory and its parents if missing.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}
