// Package config provides configuration management for the apyxl CLI.
package config

// UserTypeConfig is one user-defined type rule: a literal pattern
// matched against type identifiers and the display name it maps to.
// Rule order is significant: the first matching rule wins.
type UserTypeConfig struct {
	Pattern string `koanf:"pattern"`
	Display string `koanf:"display"`
}

// Config holds all CLI configuration options.
type Config struct {
	// InputDir is the root of the API definition tree.
	InputDir string `koanf:"input_dir"`
	// Extensions are the file extensions collected under InputDir.
	Extensions []string `koanf:"extensions"`
	// OutputPath receives generated output; "-" means stdout.
	OutputPath string `koanf:"output"`
	// Generator selects the generator backend.
	Generator string `koanf:"generator"`
	// Parallelism bounds parse workers; 0 means NumCPU.
	Parallelism int `koanf:"parallelism"`
	// Types is the ordered user-defined type rule list.
	Types []UserTypeConfig `koanf:"types"`
	// DocsAddr is the listen address for the docs server.
	DocsAddr string `koanf:"docs_addr"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// Defaults.
const (
	DefaultInputDir  = "api"
	DefaultOutput    = "-"
	DefaultGenerator = "dbg"
	DefaultDocsAddr  = "localhost:8787"
)
