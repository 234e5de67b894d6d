// Package install copies validated skill trees into an assistant's
// skills root and answers questions about what is already installed.
package install

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/skillctl/skillctl/internal/source"
)

// Install copies the skill tree at src into dst. The destination must
// not already exist; callers remove it first when they intend to
// replace an installed skill.
func Install(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("skill already installed at %s", dst)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check destination %s: %w", dst, err)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if err := copyTree(src, dst); err != nil {
		// Leave no half-copied skill behind.
		os.RemoveAll(dst)
		return err
	}
	return nil
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == src {
			return nil
		}
		if source.Skipped(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0755)
		case d.Type().IsRegular():
			return copyFile(path, target)
		default:
			// Symlinks and other special entries are not copied.
			return nil
		}
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}

// Remove deletes an installed skill directory.
func Remove(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("skill not installed at %s", dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a skill directory", dir)
	}
	return os.RemoveAll(dir)
}

// List returns the names of skills installed under root, sorted. A
// directory counts as a skill when it contains a SKILL.md manifest.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		manifest := filepath.Join(root, e.Name(), "SKILL.md")
		if _, err := os.Stat(manifest); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// DirSize returns the total size in bytes of the regular files under
// dir, excluding the same working files the installation copy excludes.
func DirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && source.Skipped(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}
