package config

import (
	"fmt"
	"os"

	"github.com/chomey/apyxl/pkg/parser"
)

// Validate checks if the configuration is valid. Directory existence is
// checked separately so help output works without a project tree.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	for i, t := range c.Types {
		if t.Pattern == "" {
			return fmt.Errorf("types[%d]: pattern is required", i)
		}
		if t.Display == "" {
			return fmt.Errorf("types[%d]: display is required", i)
		}
	}
	return nil
}

// ValidateDirectories checks if required directories exist.
func (c *Config) ValidateDirectories() error {
	if _, err := os.Stat(c.InputDir); os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s\nHint: create the directory or use --input-dir to specify a different path", c.InputDir)
	}
	return nil
}

// UserTypeRules converts the configured type rules for the parser,
// preserving declaration order.
func (c *Config) UserTypeRules() []parser.UserTypeRule {
	rules := make([]parser.UserTypeRule, 0, len(c.Types))
	for _, t := range c.Types {
		rules = append(rules, parser.UserTypeRule{Pattern: t.Pattern, Display: t.Display})
	}
	return rules
}
