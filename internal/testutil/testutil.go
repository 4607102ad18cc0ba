package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/store/jsonparser"
)

// AssertNodeJSONEq asserts that actual is equivalent to the JSON text
// expected, ignoring object key order and whitespace.
func AssertNodeJSONEq(t *testing.T, expected string, actual *node.Node, msgAndArgs ...any) bool {
	t.Helper()
	return assert.JSONEq(t, expected, jsonparser.MarshalString(actual), msgAndArgs...)
}

// AssertNodeJSONEqf asserts that actual is equivalent to the JSON text
// expected, ignoring object key order and whitespace.
func AssertNodeJSONEqf(t *testing.T, expected string, actual *node.Node, msg string, args ...any) bool {
	t.Helper()
	return AssertNodeJSONEq(t, expected, actual, append([]any{msg}, args...)...)
}
