package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdOutHeaderOnFirstWrite(t *testing.T) {
	var sb strings.Builder
	o := NewStdOut("// generated")
	o.w = &sb

	require.NoError(t, o.Write("a"))
	require.NoError(t, o.Newline())
	require.NoError(t, o.Write("b"))
	assert.Equal(t, "// generated\na\nb", sb.String())
}

func TestStdOutNoHeader(t *testing.T) {
	var sb strings.Builder
	o := NewStdOut("")
	o.w = &sb

	require.NoError(t, o.Write("a"))
	assert.Equal(t, "a", sb.String())
}
