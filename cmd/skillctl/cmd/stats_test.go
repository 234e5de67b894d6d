package cmd

import (
	"strings"
	"testing"
)

func TestStatsCountsSkillsAndUses(t *testing.T) {
	home := setupHome(t)
	resetAssistantFlags(t)

	installSkill(t, home, "codex", "one")
	installSkill(t, home, "codex", "two")
	installSkill(t, home, "claudecode", "three")

	flagCodex = true
	capture(markUsedCmd)
	if err := runMarkUsed(markUsedCmd, []string{"one"}); err != nil {
		t.Fatal(err)
	}
	if err := runMarkUsed(markUsedCmd, []string{"one"}); err != nil {
		t.Fatal(err)
	}

	buf := capture(statsCmd)
	if err := runStats(statsCmd, nil); err != nil {
		t.Fatalf("runStats() error = %v", err)
	}

	out := buf.String()
	var codexLine, openLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "codex") {
			codexLine = line
		}
		if strings.HasPrefix(line, "opencode") {
			openLine = line
		}
	}
	if codexLine == "" || openLine == "" {
		t.Fatalf("output = %q", out)
	}

	codexFields := strings.Fields(codexLine)
	if codexFields[1] != "2" {
		t.Errorf("codex skill count = %s, want 2", codexFields[1])
	}
	if codexFields[len(codexFields)-1] != "2" {
		t.Errorf("codex uses = %s, want 2", codexFields[len(codexFields)-1])
	}

	openFields := strings.Fields(openLine)
	if openFields[1] != "0" {
		t.Errorf("opencode skill count = %s, want 0", openFields[1])
	}
}

func TestPathsOutput(t *testing.T) {
	home := setupHome(t)
	resetAssistantFlags(t)

	buf := capture(pathsCmd)
	if err := runPaths(pathsCmd, nil); err != nil {
		t.Fatalf("runPaths() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"config.toml",
		"usage.db",
		"codex",
		"claudecode",
		"opencode",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, home) {
		t.Errorf("paths should live under %s:\n%s", home, out)
	}
}
