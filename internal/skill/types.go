package skill

// Frontmatter is the structured header block at the top of a skill's
// SKILL.md file.
//
//	---
//	name: pdf-processing
//	description: Extract text and tables from PDF files.
//	license: MIT
//	---
//
// Optional fields are pointers so a present-but-blank value can be
// distinguished from an absent one during validation.
type Frontmatter struct {
	// Name is the unique identifier for the skill. It must match the
	// basename of the directory the manifest was read from.
	Name string `yaml:"name"`

	// Description is a human-readable description of the skill.
	Description string `yaml:"description"`

	// License is the skill's license identifier (optional).
	License *string `yaml:"license"`

	// Compatibility describes assistant or environment requirements
	// (optional).
	Compatibility *string `yaml:"compatibility"`

	// AllowedTools lists the tools the skill expects to use (optional).
	AllowedTools *string `yaml:"allowed-tools"`

	// Metadata holds free-form string-to-string annotations (optional).
	Metadata map[string]string `yaml:"metadata"`
}
