package printer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/jsonsh/internal/printer"
)

func TestPrinter(t *testing.T) {
	p := printer.New()
	p.P("test")
	p.P("key", " [", "number", "]")
	assert.Equal(t, "test\nkey [number]\n", p.String())
	assert.Equal(t, []byte("test\nkey [number]\n"), p.Bytes())

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, 18, n)
	assert.Equal(t, "test\nkey [number]\n", buf.String())
}

func TestIndent(t *testing.T) {
	str := printer.Indent(1)
	assert.Equal(t, "  ", str)
	str = printer.Indent(2)
	assert.Equal(t, "    ", str)
}

func TestRenderTree(t *testing.T) {
	tests := []struct {
		name string
		tree *printer.Tree
		want string
	}{
		{
			name: "leaf",
			tree: printer.NewTree("/"),
			want: "/\n",
		},
		{
			name: "nested",
			tree: printer.NewTree("/",
				printer.NewTree("a [object]",
					printer.NewTree("b [number]"),
					printer.NewTree("c [object]",
						printer.NewTree("d [string]"),
					),
				),
				printer.NewTree("e [array]"),
			),
			want: "/\n" +
				"├── a [object]\n" +
				"│   ├── b [number]\n" +
				"│   └── c [object]\n" +
				"│       └── d [string]\n" +
				"└── e [array]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, printer.RenderTree(tt.tree))
		})
	}
}

func TestTreeAdd(t *testing.T) {
	root := printer.NewTree("root")
	child := root.Add(printer.NewTree("child"))
	child.Add(printer.NewTree("grandchild"))
	assert.Equal(t, "root\n└── child\n    └── grandchild\n", printer.RenderTree(root))
}
