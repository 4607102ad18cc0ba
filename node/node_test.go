package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/jsonsh/xerrors"
)

func newTestObject(t *testing.T) *Node {
	obj := NewObject()
	require.NoError(t, obj.Set("name", NewString("héllo")))
	require.NoError(t, obj.Set("count", NewInt(3)))
	require.NoError(t, obj.Set("ratio", NewNumber("0.50")))
	require.NoError(t, obj.Set("ok", NewBool(true)))
	require.NoError(t, obj.Set("none", NewNull()))
	require.NoError(t, obj.Set("list", NewArray(NewInt(1), NewInt(2), NewInt(3))))
	require.NoError(t, obj.Set("sub", NewObject()))
	return obj
}

func TestKind(t *testing.T) {
	obj := newTestObject(t)
	tests := []struct {
		key  string
		want string
	}{
		{"name", "string"},
		{"count", "number"},
		{"ratio", "number"},
		{"ok", "boolean"},
		{"none", "null"},
		{"list", "array"},
		{"sub", "object"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			value, err := obj.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value.Kind().String())
		})
	}
	var nilNode *Node
	assert.Equal(t, NullNode, nilNode.Kind())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestLen(t *testing.T) {
	obj := newTestObject(t)
	tests := []struct {
		key     string
		want    int
		wantErr error
	}{
		{key: "name", want: 5},
		{key: "list", want: 3},
		{key: "sub", want: 0},
		{key: "count", wantErr: xerrors.ErrTypeMismatch},
		{key: "ok", wantErr: xerrors.ErrTypeMismatch},
		{key: "none", wantErr: xerrors.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			value, err := obj.Get(tt.key)
			require.NoError(t, err)
			got, err := value.Len()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	got, err := obj.Len()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestObject(t *testing.T) {
	obj := newTestObject(t)
	assert.Equal(t, []string{"name", "count", "ratio", "ok", "none", "list", "sub"}, obj.Keys())

	// overwrite keeps position
	require.NoError(t, obj.Set("count", NewInt(4)))
	assert.Equal(t, "count", obj.Keys()[1])
	count, err := obj.Get("count")
	require.NoError(t, err)
	text, err := count.Text()
	require.NoError(t, err)
	assert.Equal(t, "4", text)

	require.NoError(t, obj.Delete("name"))
	assert.False(t, obj.Has("name"))
	assert.ErrorIs(t, obj.Delete("name"), xerrors.ErrNotFound)
	_, err = obj.Get("name")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Equal(t, "key 'name' not found", err.Error())

	// object operations on a non-object
	list, err := obj.Get("list")
	require.NoError(t, err)
	_, err = list.Get("x")
	assert.ErrorIs(t, err, xerrors.ErrTypeMismatch)
	assert.ErrorIs(t, list.Set("x", NewNull()), xerrors.ErrTypeMismatch)
	assert.Nil(t, list.Keys())
	assert.False(t, list.Has("x"))
}

func TestScalars(t *testing.T) {
	b, err := NewBool(true).Bool()
	require.NoError(t, err)
	assert.True(t, b)
	_, err = NewString("x").Bool()
	assert.ErrorIs(t, err, xerrors.ErrTypeMismatch)

	f, err := NewNumber("2.5e1").Float()
	require.NoError(t, err)
	assert.Equal(t, 25.0, f)
	_, err = NewNumber("abc").Float()
	assert.ErrorIs(t, err, xerrors.ErrParse)

	text, err := NewFloat(0.25).Text()
	require.NoError(t, err)
	assert.Equal(t, "0.25", text)
	_, err = NewNull().Text()
	assert.ErrorIs(t, err, xerrors.ErrTypeMismatch)

	c, err := NewString("héllo").CharAt(1)
	require.NoError(t, err)
	text, err = c.Text()
	require.NoError(t, err)
	assert.Equal(t, "é", text)
	_, err = NewString("abc").CharAt(3)
	assert.ErrorIs(t, err, xerrors.ErrRange)
	_, err = NewInt(1).CharAt(0)
	assert.ErrorIs(t, err, xerrors.ErrTypeMismatch)
}

func TestClone(t *testing.T) {
	obj := newTestObject(t)
	clone := obj.Clone()
	assert.True(t, Equal(obj, clone))

	list, err := clone.Get("list")
	require.NoError(t, err)
	require.NoError(t, list.Append(NewInt(4)))
	assert.False(t, Equal(obj, clone))

	orig, err := obj.Get("list")
	require.NoError(t, err)
	n, err := orig.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestEqual(t *testing.T) {
	a := NewObject()
	require.NoError(t, a.Set("x", NewInt(1)))
	require.NoError(t, a.Set("y", NewString("s")))
	b := NewObject()
	require.NoError(t, b.Set("y", NewString("s")))
	require.NoError(t, b.Set("x", NewNumber("1.0")))

	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"null", NewNull(), NewNull(), true},
		{"nil-null", nil, NewNull(), true},
		{"bool", NewBool(true), NewBool(false), false},
		{"int-float", NewNumber("1"), NewNumber("1.0"), true},
		{"exp", NewNumber("1e2"), NewInt(100), true},
		{"big-int", NewNumber("9007199254740993"), NewNumber("9007199254740992"), false},
		{"string-number", NewString("1"), NewInt(1), false},
		{"array", NewArray(NewInt(1), NewNull()), NewArray(NewInt(1), NewNull()), true},
		{"array-len", NewArray(NewInt(1)), NewArray(), false},
		{"object-order", a, b, true},
		{"object-size", a, NewObject(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestString(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("a", NewArray(NewInt(1), NewString("x"))))
	require.NoError(t, obj.Set("b", NewBool(false)))
	want := "# object\n" +
		"  a: # array\n" +
		"    - 1 # number\n" +
		"    - \"x\" # string\n" +
		"  b: false # boolean\n"
	assert.Equal(t, want, obj.String())
}

func TestErrorKinds(t *testing.T) {
	_, err := NewArray().Index(0)
	assert.True(t, errors.Is(err, xerrors.ErrRange))
	assert.Equal(t, "index 0 out of range (length 0)", err.Error())
}
