package node

import (
	"github.com/tableauio/jsonsh/xerrors"
)

// Has reports whether object n has key.
func (n *Node) Has(key string) bool {
	if n.Kind() != ObjectNode {
		return false
	}
	_, ok := n.members.Get(key)
	return ok
}

// Get returns the value at key of object n.
func (n *Node) Get(key string) (*Node, error) {
	if err := n.expect(ObjectNode); err != nil {
		return nil, err
	}
	value, ok := n.members.Get(key)
	if !ok {
		return nil, xerrors.Newf(xerrors.ErrNotFound, "key '%s' not found", key)
	}
	return value.(*Node), nil
}

// Set assigns value to key of object n. An existing key keeps its
// position, a new key is appended.
func (n *Node) Set(key string, value *Node) error {
	if err := n.expect(ObjectNode); err != nil {
		return err
	}
	n.members.Put(key, orNull(value))
	return nil
}

// Delete removes key from object n.
func (n *Node) Delete(key string) error {
	if err := n.expect(ObjectNode); err != nil {
		return err
	}
	if _, ok := n.members.Get(key); !ok {
		return xerrors.Newf(xerrors.ErrNotFound, "key '%s' not found", key)
	}
	n.members.Remove(key)
	return nil
}

// Keys returns the keys of object n in insertion order. It returns nil for
// other kinds.
func (n *Node) Keys() []string {
	if n.Kind() != ObjectNode {
		return nil
	}
	keys := make([]string, 0, n.members.Size())
	for _, key := range n.members.Keys() {
		keys = append(keys, key.(string))
	}
	return keys
}

// Each calls fn for each member of object n in insertion order. It does
// nothing for other kinds.
func (n *Node) Each(fn func(key string, value *Node)) {
	if n.Kind() != ObjectNode {
		return
	}
	it := n.members.Iterator()
	for it.Next() {
		fn(it.Key().(string), it.Value().(*Node))
	}
}
