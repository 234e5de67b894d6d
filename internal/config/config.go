// Package config loads and persists skillctl configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/skillctl/skillctl/internal/assistant"
	"github.com/skillctl/skillctl/internal/paths"
)

// SkillsRoots holds per-assistant skills root overrides.
type SkillsRoots struct {
	Codex      string `toml:"codex,omitempty" envconfig:"CODEX_ROOT"`
	ClaudeCode string `toml:"claudecode,omitempty" envconfig:"CLAUDECODE_ROOT"`
	OpenCode   string `toml:"opencode,omitempty" envconfig:"OPENCODE_ROOT"`
}

// Config is the main configuration struct for skillctl.
type Config struct {
	// DefaultAssistant is used when a command is run without an
	// explicit assistant flag.
	DefaultAssistant string `toml:"default_assistant,omitempty" envconfig:"DEFAULT_ASSISTANT"`

	// SkillsBaseDir overrides the base directory under which
	// per-assistant skills roots live.
	SkillsBaseDir string `toml:"skills_base_dir,omitempty" envconfig:"SKILLS_BASE_DIR"`

	// SkillsRoots overrides the skills root per assistant.
	SkillsRoots SkillsRoots `toml:"skills_roots"`
}

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SKILLCTL"

// Default returns an empty configuration; all fields fall back to the
// resolved application paths.
func Default() *Config {
	return &Config{}
}

// Load reads configuration from the config file, merging with defaults
// and applying SKILLCTL_* environment overrides.
func Load(p *paths.AppPaths) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(p.ConfigFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", p.ConfigFile, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save(p *paths.AppPaths) error {
	if err := paths.EnsureDir(p.ConfigDir); err != nil {
		return err
	}

	file, err := os.Create(p.ConfigFile)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if c.DefaultAssistant != "" {
		if _, err := assistant.Parse(c.DefaultAssistant); err != nil {
			return fmt.Errorf("default_assistant: %w", err)
		}
	}
	return nil
}

// Assistant returns the configured default assistant, if any.
func (c *Config) Assistant() (assistant.Assistant, bool) {
	if c.DefaultAssistant == "" {
		return "", false
	}
	a, err := assistant.Parse(c.DefaultAssistant)
	if err != nil {
		return "", false
	}
	return a, true
}

// SkillsRootFor returns the skills root directory for an assistant,
// honoring per-assistant overrides, then the base-dir override, then
// the default data directory.
func (c *Config) SkillsRootFor(p *paths.AppPaths, a assistant.Assistant) string {
	var override string
	switch a {
	case assistant.Codex:
		override = c.SkillsRoots.Codex
	case assistant.ClaudeCode:
		override = c.SkillsRoots.ClaudeCode
	case assistant.OpenCode:
		override = c.SkillsRoots.OpenCode
	}
	if override != "" {
		return override
	}

	base := c.SkillsBaseDir
	if base == "" {
		base = p.SkillsBaseDir
	}
	return filepath.Join(base, a.String())
}
