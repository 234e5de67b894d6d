package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillctl/skillctl/internal/skillerr"
)

func TestAddInstallsLocalSkill(t *testing.T) {
	home := setupHome(t)
	resetAssistantFlags(t)

	src := writeSkillDir(t, t.TempDir(), "pdf-processing")

	flagClaudeCode = true
	oldYes := addYes
	defer func() { addYes = oldYes }()
	addYes = true

	buf := capture(addCmd)
	if err := runAdd(addCmd, []string{src}); err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}

	installed := filepath.Join(home, ".skillctl", "data", "claudecode", "pdf-processing", "SKILL.md")
	if _, err := os.Stat(installed); err != nil {
		t.Errorf("skill not installed: %v", err)
	}
	if !strings.Contains(buf.String(), "Installed pdf-processing") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestAddRejectsInvalidSkill(t *testing.T) {
	home := setupHome(t)
	resetAssistantFlags(t)

	// Directory name does not match the manifest name.
	src := filepath.Join(t.TempDir(), "wrong-dir")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatal(err)
	}
	manifest := "---\nname: other-name\ndescription: x\n---\n"
	if err := os.WriteFile(filepath.Join(src, "SKILL.md"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	flagCodex = true
	oldYes := addYes
	defer func() { addYes = oldYes }()
	addYes = true

	buf := capture(addCmd)
	err := runAdd(addCmd, []string{src})
	if err == nil || !strings.Contains(err.Error(), "failed validation") {
		t.Fatalf("runAdd() error = %v, want validation failure", err)
	}
	if !strings.Contains(buf.String(), "must match the skill directory name") {
		t.Errorf("output = %q", buf.String())
	}

	if _, err := os.Stat(filepath.Join(home, ".skillctl", "data")); !os.IsNotExist(err) {
		t.Error("nothing should have been installed")
	}
}

func TestAddRejectsSkillWithSecret(t *testing.T) {
	setupHome(t)
	resetAssistantFlags(t)

	src := writeSkillDir(t, t.TempDir(), "leaky")
	if err := os.WriteFile(filepath.Join(src, "notes.txt"),
		[]byte("key is AKIA1234567890ABCD12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	flagCodex = true
	oldYes := addYes
	defer func() { addYes = oldYes }()
	addYes = true

	buf := capture(addCmd)
	err := runAdd(addCmd, []string{src})
	if err == nil || !strings.Contains(err.Error(), "security scan") {
		t.Fatalf("runAdd() error = %v, want scan failure", err)
	}
	if !strings.Contains(buf.String(), "secret") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestAddPromptDecline(t *testing.T) {
	home := setupHome(t)
	resetAssistantFlags(t)

	src := writeSkillDir(t, t.TempDir(), "ask-first")

	flagCodex = true
	oldYes := addYes
	defer func() { addYes = oldYes }()
	addYes = false

	buf := capture(addCmd)
	addCmd.SetIn(strings.NewReader("n\n"))
	if err := runAdd(addCmd, []string{src}); err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Aborted") {
		t.Errorf("output = %q", buf.String())
	}
	if _, err := os.Stat(filepath.Join(home, ".skillctl", "data", "codex", "ask-first")); !os.IsNotExist(err) {
		t.Error("declined install should not copy anything")
	}
}

func TestAddSkillFlagSelectsFromMultiSkillRepo(t *testing.T) {
	home := setupHome(t)
	resetAssistantFlags(t)

	repo := t.TempDir()
	writeSkillDir(t, filepath.Join(repo, "skills"), "wanted")
	writeSkillDir(t, filepath.Join(repo, "skills"), "ignored")

	flagCodex = true
	oldYes, oldSkill := addYes, addSkillPath
	defer func() { addYes, addSkillPath = oldYes, oldSkill }()
	addYes = true
	addSkillPath = "wanted"

	capture(addCmd)
	if err := runAdd(addCmd, []string{repo}); err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}

	root := filepath.Join(home, ".skillctl", "data", "codex")
	if _, err := os.Stat(filepath.Join(root, "wanted", "SKILL.md")); err != nil {
		t.Errorf("selected skill not installed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "ignored")); !os.IsNotExist(err) {
		t.Error("only the selected skill should be installed")
	}
}

func TestAddSkillFlagRejectsTraversal(t *testing.T) {
	setupHome(t)
	resetAssistantFlags(t)

	repo := t.TempDir()
	writeSkillDir(t, filepath.Join(repo, "skills"), "wanted")

	flagCodex = true
	oldYes, oldSkill := addYes, addSkillPath
	defer func() { addYes, addSkillPath = oldYes, oldSkill }()
	addYes = true
	addSkillPath = "../outside"

	capture(addCmd)
	err := runAdd(addCmd, []string{repo})
	if err == nil || !strings.Contains(err.Error(), "must not contain") {
		t.Fatalf("runAdd() error = %v, want traversal rejection", err)
	}
}

func TestAddAbortsWhenScannerCannotLaunch(t *testing.T) {
	home := setupHome(t)
	resetAssistantFlags(t)
	breakScannerPath(t)

	src := writeSkillDir(t, t.TempDir(), "launch-fail")

	flagCodex = true
	oldYes := addYes
	defer func() { addYes = oldYes }()
	addYes = true

	capture(addCmd)
	err := runAdd(addCmd, []string{src})
	if !skillerr.HasCode(err, skillerr.CodeExternalScanLaunchFailed) {
		t.Fatalf("runAdd() error = %v, want ExternalScanLaunchFailed", err)
	}

	installed := filepath.Join(home, ".skillctl", "data", "codex", "launch-fail")
	if _, err := os.Stat(installed); !os.IsNotExist(err) {
		t.Error("nothing should be installed when a scanner cannot launch")
	}
}

func TestAddRequiresAssistant(t *testing.T) {
	setupHome(t)
	resetAssistantFlags(t)

	src := writeSkillDir(t, t.TempDir(), "orphan")

	oldYes := addYes
	defer func() { addYes = oldYes }()
	addYes = true

	capture(addCmd)
	err := runAdd(addCmd, []string{src})
	if err == nil || !strings.Contains(err.Error(), "no assistant selected") {
		t.Fatalf("runAdd() error = %v, want assistant selection error", err)
	}
}

func TestAddRefusesSecondInstall(t *testing.T) {
	setupHome(t)
	resetAssistantFlags(t)

	src := writeSkillDir(t, t.TempDir(), "once-only")

	flagOpenCode = true
	oldYes := addYes
	defer func() { addYes = oldYes }()
	addYes = true

	capture(addCmd)
	if err := runAdd(addCmd, []string{src}); err != nil {
		t.Fatal(err)
	}
	err := runAdd(addCmd, []string{src})
	if err == nil || !strings.Contains(err.Error(), "already installed") {
		t.Fatalf("second runAdd() error = %v, want already installed", err)
	}
}
