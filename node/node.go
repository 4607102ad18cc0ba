// Package node implements the value model of a JSON document: a closed
// tagged Node with explicit kinds and typed accessors and mutators.
//
// No implicit coercion is done. An operation on a node of the wrong kind
// fails with xerrors.ErrTypeMismatch, an absent key with
// xerrors.ErrNotFound, and a bad index with xerrors.ErrRange.
package node

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/tableauio/jsonsh/internal/printer"
	"github.com/tableauio/jsonsh/xerrors"
)

type Kind int

const (
	NullNode Kind = iota
	BoolNode
	NumberNode
	StringNode
	ArrayNode
	ObjectNode
)

func (k Kind) String() string {
	switch k {
	case NullNode:
		return "null"
	case BoolNode:
		return "boolean"
	case NumberNode:
		return "number"
	case StringNode:
		return "string"
	case ArrayNode:
		return "array"
	case ObjectNode:
		return "object"
	default:
		return "unknown"
	}
}

// Node represents a value in the JSON document tree.
//
// The zero value is a null node.
type Node struct {
	kind Kind
	// text holds the value of a string node, or the source text of a
	// number node so that integers and floats round-trip unchanged.
	text  string
	b     bool
	elems []*Node
	// members keeps object keys in insertion order: key(string) -> *Node.
	members *linkedhashmap.Map
}

// NewObject creates an empty object node.
func NewObject() *Node {
	return &Node{kind: ObjectNode, members: linkedhashmap.New()}
}

// NewArray creates an array node holding elems.
func NewArray(elems ...*Node) *Node {
	n := &Node{kind: ArrayNode, elems: make([]*Node, 0, len(elems))}
	for _, elem := range elems {
		n.elems = append(n.elems, orNull(elem))
	}
	return n
}

// NewString creates a string node.
func NewString(s string) *Node {
	return &Node{kind: StringNode, text: s}
}

// NewNumber creates a number node from its JSON source text, e.g. "1",
// "-0.5" or "1e10". The text is not validated here.
func NewNumber(raw string) *Node {
	return &Node{kind: NumberNode, text: raw}
}

// NewInt creates a number node from an integer.
func NewInt(i int64) *Node {
	return NewNumber(strconv.FormatInt(i, 10))
}

// NewFloat creates a number node from a float.
func NewFloat(f float64) *Node {
	return NewNumber(strconv.FormatFloat(f, 'g', -1, 64))
}

// NewBool creates a boolean node.
func NewBool(b bool) *Node {
	return &Node{kind: BoolNode, b: b}
}

// NewNull creates a null node.
func NewNull() *Node {
	return &Node{kind: NullNode}
}

func orNull(n *Node) *Node {
	if n == nil {
		return NewNull()
	}
	return n
}

// Kind returns the kind of n. A nil node is a null node.
func (n *Node) Kind() Kind {
	if n == nil {
		return NullNode
	}
	return n.kind
}

// IsContainer reports whether n is an object or an array.
func (n *Node) IsContainer() bool {
	k := n.Kind()
	return k == ObjectNode || k == ArrayNode
}

// IsObject reports whether n is an object.
func (n *Node) IsObject() bool {
	return n.Kind() == ObjectNode
}

// IsArray reports whether n is an array.
func (n *Node) IsArray() bool {
	return n.Kind() == ArrayNode
}

func (n *Node) expect(kind Kind) error {
	if n.Kind() != kind {
		return xerrors.Newf(xerrors.ErrTypeMismatch, "expected %s, got %s", kind, n.Kind())
	}
	return nil
}

// Text returns the value of a string node, or the source text of a number
// node.
func (n *Node) Text() (string, error) {
	switch n.Kind() {
	case StringNode, NumberNode:
		return n.text, nil
	default:
		return "", xerrors.Newf(xerrors.ErrTypeMismatch, "expected string or number, got %s", n.Kind())
	}
}

// Bool returns the value of a boolean node.
func (n *Node) Bool() (bool, error) {
	if err := n.expect(BoolNode); err != nil {
		return false, err
	}
	return n.b, nil
}

// Float returns the value of a number node as float64.
func (n *Node) Float() (float64, error) {
	if err := n.expect(NumberNode); err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(n.text, 64)
	if err != nil {
		return 0, xerrors.Wrapf(xerrors.ErrParse, err, "number %s", n.text)
	}
	return f, nil
}

// Len returns the character count of a string, the element count of an
// array or the key count of an object. Other kinds have no length.
func (n *Node) Len() (int, error) {
	switch n.Kind() {
	case StringNode:
		return utf8.RuneCountInString(n.text), nil
	case ArrayNode:
		return len(n.elems), nil
	case ObjectNode:
		return n.members.Size(), nil
	default:
		return 0, xerrors.Newf(xerrors.ErrTypeMismatch, "%s has no length", n.Kind())
	}
}

// CharAt returns the i-th character of a string node as a new string node.
func (n *Node) CharAt(i int) (*Node, error) {
	if err := n.expect(StringNode); err != nil {
		return nil, err
	}
	runes := []rune(n.text)
	if i < 0 || i >= len(runes) {
		return nil, indexError(i, len(runes))
	}
	return NewString(string(runes[i])), nil
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	switch n.Kind() {
	case ObjectNode:
		clone := NewObject()
		n.Each(func(key string, value *Node) {
			clone.members.Put(key, value.Clone())
		})
		return clone
	case ArrayNode:
		clone := &Node{kind: ArrayNode, elems: make([]*Node, len(n.elems))}
		for i, elem := range n.elems {
			clone.elems[i] = elem.Clone()
		}
		return clone
	case NullNode:
		return NewNull()
	default:
		clone := *n
		return &clone
	}
}

func indexError(i, length int) error {
	return xerrors.Newf(xerrors.ErrRange, "index %d out of range (length %d)", i, length)
}

// String returns hierarchy representation of the Node, mainly
// for debugging.
func (n *Node) String() string {
	var buffer bytes.Buffer
	dumpNode(n, "", ObjectNode, &buffer, 0)
	return buffer.String()
}

func dumpNode(node *Node, name string, parentKind Kind, buffer *bytes.Buffer, depth int) {
	var prefix string
	switch parentKind {
	case ArrayNode:
		prefix = printer.Indent(depth) + "- "
	default:
		if name != "" {
			prefix = printer.Indent(depth) + name + ": "
		} else {
			prefix = printer.Indent(depth)
		}
	}
	switch node.Kind() {
	case ObjectNode:
		buffer.WriteString(fmt.Sprintf("%s# %s\n", prefix, node.Kind()))
		node.Each(func(key string, value *Node) {
			dumpNode(value, key, ObjectNode, buffer, depth+1)
		})
	case ArrayNode:
		buffer.WriteString(fmt.Sprintf("%s# %s\n", prefix, node.Kind()))
		for _, elem := range node.elems {
			dumpNode(elem, "", ArrayNode, buffer, depth+1)
		}
	case StringNode:
		buffer.WriteString(fmt.Sprintf("%s%q # %s\n", prefix, node.text, node.Kind()))
	case NumberNode:
		buffer.WriteString(fmt.Sprintf("%s%s # %s\n", prefix, node.text, node.Kind()))
	case BoolNode:
		buffer.WriteString(fmt.Sprintf("%s%t # %s\n", prefix, node.b, node.Kind()))
	default:
		buffer.WriteString(fmt.Sprintf("%snull # %s\n", prefix, node.Kind()))
	}
}
