package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chomey/apyxl/pkg/input"
	"github.com/chomey/apyxl/pkg/parser"
)

// TestLoadConfig_Defaults tests that loading with no file, env, or flags
// yields the documented defaults.
func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()
	chdir(t, tmpDir) // no apyxl.yaml here

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultInputDir, cfg.InputDir)
	assert.Equal(t, []string{input.DefaultExtension}, cfg.Extensions)
	assert.Equal(t, DefaultOutput, cfg.OutputPath)
	assert.Equal(t, DefaultGenerator, cfg.Generator)
	assert.Equal(t, DefaultDocsAddr, cfg.DocsAddr)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Types)
	assert.Empty(t, GetConfigFileUsed())
}

// TestLoadConfig_File tests loading values (including ordered type rules)
// from a yaml config file.
func TestLoadConfig_File(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "apyxl.yaml")
	cfgContent := `input_dir: defs
generator: dbg
output: out.txt
types:
  - pattern: uuid
    display: Uuid
  - pattern: uuid
    display: ShadowedUuid
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0600))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "defs", cfg.InputDir)
	assert.Equal(t, "out.txt", cfg.OutputPath)
	assert.Equal(t, cfgPath, GetConfigFileUsed())

	// Rule order ships to the parser unchanged.
	rules := cfg.UserTypeRules()
	require.Len(t, rules, 2)
	assert.Equal(t, parser.UserTypeRule{Pattern: "uuid", Display: "Uuid"}, rules[0])
	assert.Equal(t, parser.UserTypeRule{Pattern: "uuid", Display: "ShadowedUuid"}, rules[1])
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and
// the config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "apyxl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: from_file\n"), 0600))

	require.NoError(t, os.Setenv("APYXL_INPUT_DIR", "from_env"))
	defer func() { _ = os.Unsetenv("APYXL_INPUT_DIR") }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("input-dir", "", "input directory")
	require.NoError(t, flags.Set("input-dir", "from_flag"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)
	assert.Equal(t, "from_flag", cfg.InputDir, "flag value should override config file and env var")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override the
// config file when no flag is set.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "apyxl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: from_file\n"), 0600))

	require.NoError(t, os.Setenv("APYXL_INPUT_DIR", "from_env"))
	defer func() { _ = os.Unsetenv("APYXL_INPUT_DIR") }()

	// Flag registered but not set: Changed is false so env wins.
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("input-dir", "", "input directory")

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.InputDir, "env var should override config file")
}

// TestLoadConfig_OutFlagMapsToOutput tests the --out flag to "output"
// key mapping.
func TestLoadConfig_OutFlagMapsToOutput(t *testing.T) {
	ResetConfig()
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out", "", "output path")
	require.NoError(t, flags.Set("out", "generated.txt"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "generated.txt", cfg.OutputPath)
}

// TestConfig_Validate tests the Config.Validate method.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		errSubstr string
	}{
		{
			name:    "valid config",
			cfg:     Config{InputDir: "api"},
			wantErr: false,
		},
		{
			name:      "empty input_dir",
			cfg:       Config{InputDir: ""},
			wantErr:   true,
			errSubstr: "input_dir is required",
		},
		{
			name: "type rule missing pattern",
			cfg: Config{
				InputDir: "api",
				Types:    []UserTypeConfig{{Pattern: "", Display: "Uuid"}},
			},
			wantErr:   true,
			errSubstr: "pattern is required",
		},
		{
			name: "type rule missing display",
			cfg: Config{
				InputDir: "api",
				Types:    []UserTypeConfig{{Pattern: "uuid", Display: ""}},
			},
			wantErr:   true,
			errSubstr: "display is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestConfig_ValidateDirectories tests the directory existence check.
func TestConfig_ValidateDirectories(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		cfg := Config{InputDir: t.TempDir()}
		assert.NoError(t, cfg.ValidateDirectories())
	})

	t.Run("missing directory", func(t *testing.T) {
		cfg := Config{InputDir: filepath.Join(t.TempDir(), "does_not_exist")}
		err := cfg.ValidateDirectories()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input directory does not exist")
	})
}

// chdir changes the working directory for the duration of the test,
// restoring the original directory on cleanup (testing.T.Chdir requires
// Go 1.24, which is newer than the toolchain in use).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}
