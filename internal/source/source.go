// Package source acquires candidate skill trees from untrusted sources:
// local directories, git remotes, and downloadable archives.
package source

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/skillctl/skillctl/internal/archive"
	"github.com/skillctl/skillctl/internal/skillerr"
)

// Tree is an acquired candidate skill tree. Trees created by cloning or
// downloading own a temporary working directory and must be released
// with Cleanup; trees borrowed from a caller-supplied local path own
// nothing and Cleanup is a no-op.
type Tree struct {
	// Path is the directory holding the candidate skill content. For
	// archive sources this is the located skill root inside the
	// extraction directory.
	Path string

	workdir string // owned temporary directory, empty if borrowed
}

// Owned reports whether the tree owns a temporary directory.
func (t *Tree) Owned() bool {
	return t.workdir != ""
}

// Cleanup removes the owned working directory, if any. Safe to call on
// borrowed trees and safe to call more than once.
func (t *Tree) Cleanup() {
	if t.workdir == "" {
		return
	}
	_ = os.RemoveAll(t.workdir)
	t.workdir = ""
}

// Resolve classifies a source string and produces a Tree.
//
//   - An existing filesystem path is borrowed as-is (it must be a
//     directory).
//   - An http(s) URL ending in a supported archive extension is
//     downloaded and extracted.
//   - A git transport reference (http(s), git@, ssh://, git://, or a
//     trailing .git) is shallow-cloned.
//   - Anything else fails with SourceNotFound.
func Resolve(source string, logger *slog.Logger) (*Tree, error) {
	if info, err := os.Stat(source); err == nil {
		if !info.IsDir() {
			return nil, skillerr.AcquisitionFailed(source, fmt.Errorf("source path is not a directory"))
		}
		logger.Debug("using local source directory", "path", source)
		return &Tree{Path: source}, nil
	}

	if isHTTPURL(source) {
		if kind, ok := archive.DetectKind(source); ok {
			return downloadArchive(source, kind, logger)
		}
		return cloneGit(source, logger)
	}

	if isGitRef(source) {
		return cloneGit(source, logger)
	}

	return nil, skillerr.SourceNotFound(source)
}

func isHTTPURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func isGitRef(source string) bool {
	return strings.HasPrefix(source, "git@") ||
		strings.HasPrefix(source, "ssh://") ||
		strings.HasPrefix(source, "git://") ||
		strings.HasSuffix(source, ".git")
}

// cloneGit shallow-clones a git source into a fresh temporary directory.
func cloneGit(source string, logger *slog.Logger) (*Tree, error) {
	workdir, err := os.MkdirTemp("", "skillctl-clone-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	logger.Debug("cloning git source", "source", source)
	cmd := exec.Command("git", "clone", "--depth", "1", source, workdir)
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(workdir)
		return nil, skillerr.AcquisitionFailed(source,
			fmt.Errorf("git clone failed: %w\n%s", err, output))
	}

	return &Tree{Path: workdir, workdir: workdir}, nil
}

// downloadArchive fetches and extracts an archive source, then locates
// the skill root within the extracted tree.
func downloadArchive(source string, kind archive.Kind, logger *slog.Logger) (*Tree, error) {
	workdir, err := os.MkdirTemp("", "skillctl-archive-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	// Any failure below discards the whole working directory; partial
	// extraction output is never handed to the caller.
	fail := func(err error) (*Tree, error) {
		_ = os.RemoveAll(workdir)
		return nil, err
	}

	archivePath := filepath.Join(workdir, kind.FileName())
	logger.Debug("downloading archive", "source", source, "kind", string(kind))
	if err := archive.Download(source, kind, archivePath); err != nil {
		return fail(err)
	}

	extractDir := filepath.Join(workdir, "extracted")
	if err := os.MkdirAll(extractDir, 0755); err != nil {
		return fail(fmt.Errorf("creating extraction dir: %w", err))
	}
	if err := archive.Extract(archivePath, kind, extractDir); err != nil {
		return fail(err)
	}

	skillRoot, err := LocateSkillRoot(extractDir)
	if err != nil {
		return fail(err)
	}

	return &Tree{Path: skillRoot, workdir: workdir}, nil
}
