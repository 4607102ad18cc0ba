package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/jsonsh/xerrors"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "empty", line: "   ", want: nil},
		{name: "words", line: "  get  arr 2 ", want: []string{"get", "arr", "2"}},
		{name: "tabs", line: "cd\ta/b", want: []string{"cd", "a/b"}},
		{name: "json-string", line: `set name "John Smith"`, want: []string{"set", "name", `"John Smith"`}},
		{name: "escaped-quote", line: `set q "say \"hi\" now"`, want: []string{"set", "q", `"say \"hi\" now"`}},
		{name: "array", line: `set tags ["a", "b", [1, 2]]`, want: []string{"set", "tags", `["a", "b", [1, 2]]`}},
		{name: "object", line: `set o {"k": "v w", "n": {}}`, want: []string{"set", "o", `{"k": "v w", "n": {}}`}},
		{name: "single-quotes", line: `set note 'it is "quoted"'`, want: []string{"set", "note", `it is "quoted"`}},
		{name: "single-quoted-key", line: `get 'my key'`, want: []string{"get", "my key"}},
		{name: "empty-single-quotes", line: `cd ''`, want: []string{"cd", ""}},
		{name: "adjacent", line: `set k "a"'b'`, want: []string{"set", "k", `"a"b`}},
		{name: "bracket-in-string", line: `set s "]" x`, want: []string{"set", "s", `"]"`, "x"}},
		{name: "negative", line: "set -- n -5", want: []string{"set", "--", "n", "-5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_Unterminated(t *testing.T) {
	for _, line := range []string{`set s "abc`, `get 'k`} {
		_, err := Tokenize(line)
		assert.ErrorIs(t, err, xerrors.ErrParse, line)
	}
}
