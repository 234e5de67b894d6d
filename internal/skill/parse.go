package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skillctl/skillctl/internal/skillerr"
)

// ManifestName is the expected skill manifest filename.
const ManifestName = "SKILL.md"

// delimiter fences the frontmatter block at the top of SKILL.md.
const delimiter = "---"

// ReadFrontmatter loads and parses the frontmatter of the SKILL.md in a
// skill directory.
func ReadFrontmatter(dir string) (*Frontmatter, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseFrontmatter(string(data))
}

// ParseFrontmatter parses the leading delimited block of a SKILL.md
// document. The document must begin with a delimiter line, followed by
// YAML content, followed by a closing delimiter line; anything else is
// an InvalidFrontmatter error.
func ParseFrontmatter(contents string) (*Frontmatter, error) {
	lines := strings.Split(contents, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return nil, skillerr.InvalidFrontmatter("SKILL.md must start with YAML frontmatter (---)")
	}

	var body []string
	closed := false
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == delimiter {
			closed = true
			break
		}
		body = append(body, line)
	}

	if !closed {
		return nil, skillerr.InvalidFrontmatter("frontmatter is missing its closing delimiter (---)")
	}
	if len(body) == 0 {
		return nil, skillerr.InvalidFrontmatter("frontmatter is empty")
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(strings.Join(body, "\n")), &fm); err != nil {
		return nil, skillerr.InvalidFrontmatter(err.Error())
	}

	return &fm, nil
}
