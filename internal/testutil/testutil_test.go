package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tableauio/jsonsh/store/jsonparser"
)

func TestAssertNodeJSONEq(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
	}{
		{name: "same", expected: `{"a":1}`, actual: `{"a":1}`},
		{name: "key-order", expected: `{"b":[1,2],"a":{"c":null}}`, actual: `{"a": {"c": null}, "b": [1, 2]}`},
		{name: "number-text", expected: `{"n":1.0}`, actual: `{"n":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := jsonparser.Parse(tt.actual)
			require.NoError(t, err)
			AssertNodeJSONEq(t, tt.expected, actual)
			AssertNodeJSONEqf(t, tt.expected, actual, "case %s", tt.name)
		})
	}
}
