package skill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skillctl/skillctl/internal/skillerr"
)

func TestParseFrontmatterValid(t *testing.T) {
	contents := `---
name: pdf-processing
description: Extract text and tables from PDF files.
license: MIT
compatibility: claudecode
allowed-tools: Read, Bash
metadata:
  author: example
  homepage: https://example.com
---

# PDF Processing

Instructions follow here.
`

	fm, err := ParseFrontmatter(contents)
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}

	if fm.Name != "pdf-processing" {
		t.Errorf("Name = %q", fm.Name)
	}
	if fm.Description != "Extract text and tables from PDF files." {
		t.Errorf("Description = %q", fm.Description)
	}
	if fm.License == nil || *fm.License != "MIT" {
		t.Errorf("License = %v", fm.License)
	}
	if fm.AllowedTools == nil || *fm.AllowedTools != "Read, Bash" {
		t.Errorf("AllowedTools = %v", fm.AllowedTools)
	}
	if fm.Metadata["author"] != "example" {
		t.Errorf("Metadata = %v", fm.Metadata)
	}
}

func TestParseFrontmatterOptionalFieldsAbsent(t *testing.T) {
	fm, err := ParseFrontmatter("---\nname: minimal\ndescription: just the basics\n---\n")
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}

	if fm.License != nil {
		t.Error("absent license should stay nil")
	}
	if fm.Compatibility != nil {
		t.Error("absent compatibility should stay nil")
	}
	if fm.Metadata != nil {
		t.Error("absent metadata should stay nil")
	}
}

func TestParseFrontmatterErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty file", ""},
		{"no opening delimiter", "# Just markdown\n"},
		{"content before delimiter", "intro\n---\nname: x\n---\n"},
		{"missing closing delimiter", "---\nname: x\ndescription: y\n"},
		{"empty frontmatter", "---\n---\nbody\n"},
		{"invalid yaml", "---\nname: [unclosed\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFrontmatter(tt.contents)
			if !skillerr.HasCode(err, skillerr.CodeInvalidFrontmatter) {
				t.Errorf("ParseFrontmatter() error = %v, want InvalidFrontmatter", err)
			}
		})
	}
}

func TestReadFrontmatter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-skill")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	contents := "---\nname: my-skill\ndescription: test skill\n---\n# Body\n"
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	fm, err := ReadFrontmatter(dir)
	if err != nil {
		t.Fatalf("ReadFrontmatter() error = %v", err)
	}
	if fm.Name != "my-skill" {
		t.Errorf("Name = %q", fm.Name)
	}
}

func TestReadFrontmatterMissingFile(t *testing.T) {
	if _, err := ReadFrontmatter(t.TempDir()); err == nil {
		t.Fatal("ReadFrontmatter() should fail without SKILL.md")
	}
}
