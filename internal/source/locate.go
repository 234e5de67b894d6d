package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillctl/skillctl/internal/skill"
	"github.com/skillctl/skillctl/internal/skillerr"
)

// skipNames are excluded from skill discovery, installation copies, and
// size accounting.
var skipNames = map[string]bool{
	".git":      true,
	"target":    true,
	".DS_Store": true,
}

// Skipped reports whether a path component is excluded from skill
// discovery, installation copies, and size accounting.
func Skipped(name string) bool {
	return skipNames[name]
}

// LocateSkillRoot finds the single directory containing a SKILL.md
// within an extracted tree. The tree root wins if it holds one itself;
// otherwise the tree is searched recursively. Zero matches fail with
// NoSkillFound, more than one distinct parent with AmbiguousSkillArchive.
func LocateSkillRoot(root string) (string, error) {
	if _, err := os.Stat(filepath.Join(root, skill.ManifestName)); err == nil {
		return root, nil
	}

	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && Skipped(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != skill.ManifestName {
			return nil
		}

		parent := filepath.Dir(path)
		if found != "" && found != parent {
			return skillerr.AmbiguousSkillArchive()
		}
		found = parent
		return nil
	})
	if err != nil {
		return "", err
	}

	if found == "" {
		return "", skillerr.NoSkillFound()
	}
	return found, nil
}

// ResolveSkillPath resolves a caller-supplied relative path to one
// skill inside an acquired tree, for repositories that hold several.
// Besides the path itself, conventional skills/ and skill/ parent
// directories are tried. The chosen directory must contain a SKILL.md.
func ResolveSkillPath(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("skill path must be relative")
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, part := range parts {
		if part == ".." {
			return "", fmt.Errorf("skill path must not contain '..'")
		}
	}

	candidates := []string{filepath.Join(root, rel)}
	if parts[0] != "skills" {
		candidates = append(candidates, filepath.Join(root, "skills", rel))
	}
	if parts[0] != "skill" {
		candidates = append(candidates, filepath.Join(root, "skill", rel))
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || !info.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(candidate, skill.ManifestName)); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("skill %q not found: expected SKILL.md in <repo>/%s, <repo>/skills/%s, or <repo>/skill/%s",
		rel, rel, rel, rel)
}
