package jsonparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/xerrors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		jsonStr  string
		wantKind node.Kind
		want     string
		wantErr  bool
	}{
		{
			name:     "object-keeps-order",
			jsonStr:  `{"z": 1, "a": {"y": [1, 2.50, -3e2]}, "m": null}`,
			wantKind: node.ObjectNode,
			want:     `{"z":1,"a":{"y":[1,2.50,-3e2]},"m":null}`,
		},
		{
			name:     "array",
			jsonStr:  `[true, false, "s", {}]`,
			wantKind: node.ArrayNode,
			want:     `[true,false,"s",{}]`,
		},
		{
			name:     "string-escapes",
			jsonStr:  `"a\"b\\c\né"`,
			wantKind: node.StringNode,
			want:     `"a\"b\\c\né"`,
		},
		{
			name:     "number",
			jsonStr:  ` 1.0 `,
			wantKind: node.NumberNode,
			want:     `1.0`,
		},
		{
			name:     "duplicate-keys",
			jsonStr:  `{"a": 1, "b": 2, "a": 3}`,
			wantKind: node.ObjectNode,
			want:     `{"a":3,"b":2}`,
		},
		{
			name:    "invalid",
			jsonStr: `{"a": }`,
			wantErr: true,
		},
		{
			name:    "bare-word",
			jsonStr: `hello`,
			wantErr: true,
		},
		{
			name:    "trailing-garbage",
			jsonStr: `1 2`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.jsonStr)
			if tt.wantErr {
				assert.ErrorIs(t, err, xerrors.ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind())
			assert.Equal(t, tt.want, MarshalString(got))
		})
	}
}

func TestParseBytes(t *testing.T) {
	got, err := ParseBytes([]byte(`{"b": {"c": "d"}}`))
	require.NoError(t, err)
	b, err := got.Get("b")
	require.NoError(t, err)
	c, err := b.Get("c")
	require.NoError(t, err)
	text, err := c.Text()
	require.NoError(t, err)
	assert.Equal(t, "d", text)
}
