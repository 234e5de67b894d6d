// Package assistant defines the AI assistants skills can be installed for.
package assistant

import (
	"fmt"
	"strings"
)

// Assistant identifies a supported AI coding assistant.
type Assistant string

const (
	Codex      Assistant = "codex"
	ClaudeCode Assistant = "claudecode"
	OpenCode   Assistant = "opencode"
)

// All lists every supported assistant in display order.
func All() []Assistant {
	return []Assistant{Codex, ClaudeCode, OpenCode}
}

// String returns the canonical assistant name.
func (a Assistant) String() string {
	return string(a)
}

// Valid reports whether a is a known assistant.
func (a Assistant) Valid() bool {
	switch a {
	case Codex, ClaudeCode, OpenCode:
		return true
	}
	return false
}

// Parse converts a user-supplied name to an Assistant. Common separator
// variants are accepted.
func Parse(value string) (Assistant, error) {
	switch strings.ToLower(value) {
	case "codex":
		return Codex, nil
	case "claudecode", "claude-code", "claude_code":
		return ClaudeCode, nil
	case "opencode", "open-code", "open_code":
		return OpenCode, nil
	}
	return "", fmt.Errorf("unknown assistant %q: use codex, claudecode, or opencode", value)
}
