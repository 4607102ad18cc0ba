package node

import (
	"github.com/tableauio/jsonsh/xerrors"
)

// MaxResizeLen is the largest length Resize accepts.
const MaxResizeLen = 1 << 24

// Index returns the i-th element of array n.
func (n *Node) Index(i int) (*Node, error) {
	if err := n.expect(ArrayNode); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(n.elems) {
		return nil, indexError(i, len(n.elems))
	}
	return n.elems[i], nil
}

// SetIndex replaces the i-th element of array n.
func (n *Node) SetIndex(i int, value *Node) error {
	if err := n.expect(ArrayNode); err != nil {
		return err
	}
	if i < 0 || i >= len(n.elems) {
		return indexError(i, len(n.elems))
	}
	n.elems[i] = orNull(value)
	return nil
}

// Insert inserts value before the i-th element of array n. Like a list
// insert, an out-of-range index is clamped to the nearest end instead of
// failing. It returns the index the value was inserted at.
func (n *Node) Insert(i int, value *Node) (int, error) {
	if err := n.expect(ArrayNode); err != nil {
		return 0, err
	}
	if i < 0 {
		i = 0
	}
	if i > len(n.elems) {
		i = len(n.elems)
	}
	n.elems = append(n.elems, nil)
	copy(n.elems[i+1:], n.elems[i:])
	n.elems[i] = orNull(value)
	return i, nil
}

// Append appends values to array n.
func (n *Node) Append(values ...*Node) error {
	if err := n.expect(ArrayNode); err != nil {
		return err
	}
	for _, value := range values {
		n.elems = append(n.elems, orNull(value))
	}
	return nil
}

// RemoveAt removes and returns the i-th element of array n. Subsequent
// elements shift down by one.
func (n *Node) RemoveAt(i int) (*Node, error) {
	if err := n.expect(ArrayNode); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(n.elems) {
		return nil, indexError(i, len(n.elems))
	}
	removed := n.elems[i]
	copy(n.elems[i:], n.elems[i+1:])
	n.elems[len(n.elems)-1] = nil
	n.elems = n.elems[:len(n.elems)-1]
	return removed, nil
}

// Pop removes and returns the last element of array n.
func (n *Node) Pop() (*Node, error) {
	if err := n.expect(ArrayNode); err != nil {
		return nil, err
	}
	if len(n.elems) == 0 {
		return nil, xerrors.Newf(xerrors.ErrRange, "pop from empty array")
	}
	return n.RemoveAt(len(n.elems) - 1)
}

// RemoveValue removes the first element of array n equal to value and
// returns its former index.
func (n *Node) RemoveValue(value *Node) (int, error) {
	if err := n.expect(ArrayNode); err != nil {
		return 0, err
	}
	for i, elem := range n.elems {
		if Equal(elem, value) {
			_, err := n.RemoveAt(i)
			return i, err
		}
	}
	return 0, xerrors.Newf(xerrors.ErrRange, "value not present")
}

// Resize truncates array n to length, or pads it with nulls up to length.
func (n *Node) Resize(length int) error {
	if err := n.expect(ArrayNode); err != nil {
		return err
	}
	if length < 0 {
		return xerrors.Newf(xerrors.ErrRange, "negative length %d", length)
	}
	if length > MaxResizeLen {
		return xerrors.Newf(xerrors.ErrRange, "length %d exceeds the limit %d", length, MaxResizeLen)
	}
	if length <= len(n.elems) {
		for i := length; i < len(n.elems); i++ {
			n.elems[i] = nil
		}
		n.elems = n.elems[:length]
		return nil
	}
	elems := make([]*Node, length)
	copy(elems, n.elems)
	for i := len(n.elems); i < length; i++ {
		elems[i] = NewNull()
	}
	n.elems = elems
	return nil
}

// Elems returns the elements of array n. The slice must not be modified.
func (n *Node) Elems() []*Node {
	if n.Kind() != ArrayNode {
		return nil
	}
	return n.elems
}
