// Package config loads analyzer settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "codecracker.yaml"

var severities = map[string]bool{
	"error":   true,
	"warning": true,
	"info":    true,
	"hidden":  true,
}

// RuleConfig overrides the defaults of a single rule.
type RuleConfig struct {
	Enabled  *bool      `yaml:"enabled,omitempty"`
	Severity string     `yaml:"severity,omitempty"`
	Options  *yaml.Node `yaml:"options,omitempty"`
}

// UnmarshalYAML keeps the options subtree as parsed so each rule can decode it
// into its own options type later.
func (rc *RuleConfig) UnmarshalYAML(value *yaml.Node) error {
	var plain struct {
		Enabled  *bool  `yaml:"enabled"`
		Severity string `yaml:"severity"`
	}
	if err := value.Decode(&plain); err != nil {
		return err
	}
	*rc = RuleConfig{Enabled: plain.Enabled, Severity: plain.Severity}

	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "options" {
			opts := *value.Content[i+1]
			rc.Options = &opts
		}
	}
	return nil
}

func hasOptions(n *yaml.Node) bool {
	return n != nil && n.Kind != 0 && !(n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// Config holds the analyzer configuration.
type Config struct {
	LanguageVersion string                `yaml:"languageVersion,omitempty"`
	Include         []string              `yaml:"include,omitempty"`
	Exclude         []string              `yaml:"exclude,omitempty"`
	Rules           map[string]RuleConfig `yaml:"rules,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LanguageVersion: "latest",
		Exclude:         []string{"**/bin/**", "**/obj/**"},
	}
}

// Load loads a configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault loads a configuration, or returns Default if the file doesn't exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks glob patterns and rule severities.
func (c *Config) Validate() error {
	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid path pattern %q", pattern)
		}
	}
	for id, rc := range c.Rules {
		if rc.Severity != "" && !severities[rc.Severity] {
			return fmt.Errorf("rule %s: unknown severity %q", id, rc.Severity)
		}
	}
	return nil
}

// MatchPath reports whether path is selected by the include and exclude patterns.
// An empty include list selects every path.
func (c *Config) MatchPath(path string) bool {
	path = filepath.ToSlash(path)

	if len(c.Include) > 0 && !matchAny(c.Include, path) {
		return false
	}
	return !matchAny(c.Exclude, path)
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			continue
		}
		if match {
			return true
		}
	}
	return false
}

// RuleEnabled reports whether a rule runs, falling back to def when unset.
func (c *Config) RuleEnabled(id string, def bool) bool {
	rc, ok := c.Rules[id]
	if !ok || rc.Enabled == nil {
		return def
	}
	return *rc.Enabled
}

// RuleSeverity returns the configured severity override for a rule, or "".
func (c *Config) RuleSeverity(id string) string {
	return c.Rules[id].Severity
}

// DecodeRuleOptions decodes the options of a rule into out. Missing options
// leave out untouched.
func (c *Config) DecodeRuleOptions(id string, out any) error {
	rc, ok := c.Rules[id]
	if !ok || !hasOptions(rc.Options) {
		return nil
	}
	if err := rc.Options.Decode(out); err != nil {
		return fmt.Errorf("rule %s options: %w", id, err)
	}
	return nil
}

// SetRule adds or replaces the settings of a rule.
func (c *Config) SetRule(id string, rc RuleConfig) {
	if c.Rules == nil {
		c.Rules = make(map[string]RuleConfig)
	}
	c.Rules[id] = rc
}
