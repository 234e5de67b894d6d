package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// setupHome points HOME at a fresh temp directory so commands resolve
// their paths under it instead of the real home.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// resetAssistantFlags restores the shared assistant flags after a test.
func resetAssistantFlags(t *testing.T) {
	t.Helper()
	oldCodex, oldClaude, oldOpen := flagCodex, flagClaudeCode, flagOpenCode
	t.Cleanup(func() {
		flagCodex, flagClaudeCode, flagOpenCode = oldCodex, oldClaude, oldOpen
	})
	flagCodex, flagClaudeCode, flagOpenCode = false, false, false
}

// writeSkillDir creates a valid skill directory under parent.
func writeSkillDir(t *testing.T, parent, name string) string {
	t.Helper()
	dir := filepath.Join(parent, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	manifest := "---\nname: " + name + "\ndescription: a test skill\n---\n# " + name + "\n"
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// breakScannerPath restricts PATH to a directory holding a trivy
// binary whose interpreter does not exist, so the scanner is detected
// but cannot be launched.
func breakScannerPath(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	script := "#!" + filepath.Join(dir, "no-such-interpreter") + "\n"
	if err := os.WriteFile(filepath.Join(dir, "trivy"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
}

// capture wires a command's output streams to a buffer.
func capture(cmd *cobra.Command) *bytes.Buffer {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return &buf
}
