package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chomey/apyxl/pkg/generator"
	"github.com/chomey/apyxl/pkg/model"
	"github.com/chomey/apyxl/pkg/output"
	"github.com/chomey/apyxl/pkg/parser"
	"github.com/chomey/apyxl/pkg/view"
)

func TestDbgGenerate(t *testing.T) {
	children, err := parser.Parse(`
		mod user {
			struct Display { name: String, presence: Presence }
			fn set_presence(p: Presence) -> bool {}
			enum Presence { Offline, Online, Invalid = 999 }
		}
	`, parser.Config{})
	require.NoError(t, err)

	b := model.NewBuilder()
	b.Merge(children)
	api := b.Finalize()

	var out output.Buffer
	require.NoError(t, generator.Dbg{}.Generate(view.New(api), &out))

	want := `namespace <api> {
  namespace user {
    dto Display {
      name: string
      presence: Presence
    }
    rpc set_presence(p: Presence) -> bool
    enum Presence {
      Offline
      Online
      Invalid = 999
    }
  }
}
`
	assert.Equal(t, want, out.String())
}
