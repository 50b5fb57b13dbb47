package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chomey/apyxl/pkg/output"
)

func TestBufferAppends(t *testing.T) {
	var b output.Buffer
	require.NoError(t, b.Write("abc"))
	require.NoError(t, b.Newline())
	require.NoError(t, b.Write("def"))
	assert.Equal(t, "abc\ndef", b.String())
}

func TestWriter(t *testing.T) {
	var sb strings.Builder
	w := output.NewWriter(&sb)
	require.NoError(t, w.Write("x"))
	require.NoError(t, w.Newline())
	assert.Equal(t, "x\n", sb.String())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := output.NewFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Write("generated"))
	require.NoError(t, f.Newline())
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "generated\n", string(data))
}
