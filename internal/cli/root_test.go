package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chomey/apyxl/internal/cli/config"
)

// writeProject lays out a small definition tree and returns its root.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, data := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	}
	return root
}

// runRoot executes the root command with args and returns its stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	cfgFile = ""

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"lib.apix":         "mod user;",
		"user/mod.apix":    "struct Profile { id: u64 }",
		"user/status.apix": "enum Status { Online, Offline }\nfn ping() {}",
	})

	out, err := runRoot(t, "check", "-i", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 2 namespaces, 1 dtos, 1 rpcs, 1 enums")
}

func TestCheckCommandReportsGrammarError(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"broken.apix": "struct Oops { a: }",
	})

	_, err := runRoot(t, "check", "-i", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.apix")
	assert.Contains(t, err.Error(), "parse error")
}

func TestCheckCommandMissingInputDir(t *testing.T) {
	_, err := runRoot(t, "check", "-i", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input directory does not exist")
}

func TestGenerateCommandStdout(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"user/mod.apix": "struct Profile { id: u64 }",
	})

	out, err := runRoot(t, "generate", "-i", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "namespace user {")
	assert.Contains(t, out, "dto Profile {")
	assert.Contains(t, out, "id: u64")
}

func TestGenerateCommandToFile(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"user/mod.apix": "struct Profile { id: u64 }",
	})
	outPath := filepath.Join(t.TempDir(), "api.dbg.txt")

	_, err := runRoot(t, "generate", "-i", dir, "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dto Profile {")
}

func TestListCommand(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"user/mod.apix": "struct Profile { id: u64 }\nenum Status { Online }",
	})

	out, err := runRoot(t, "list", "-i", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "user")
	assert.Contains(t, out, "user.Profile")
	assert.Contains(t, out, "user.Status")
	assert.Contains(t, out, "dto")
	assert.Contains(t, out, "enum")
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestConfigFileFlag(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"defs/mod.apix": "struct S { id: special }",
	})
	cfgPath := filepath.Join(dir, "apyxl.yaml")
	cfgContent := "input_dir: " + filepath.ToSlash(filepath.Join(dir, "defs")) + `
types:
  - pattern: special
    display: SpecialId
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0600))

	out, err := runRoot(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "id: SpecialId")
}
