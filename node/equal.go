package node

import "strconv"

// Equal reports whether a and b are deeply equal. Numbers are compared by
// value, so 1, 1.0 and 1e0 are equal; object member order is ignored.
func Equal(a, b *Node) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case NullNode:
		return true
	case BoolNode:
		return a.b == b.b
	case StringNode:
		return a.text == b.text
	case NumberNode:
		return numberEqual(a.text, b.text)
	case ArrayNode:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case ObjectNode:
		if a.members.Size() != b.members.Size() {
			return false
		}
		equal := true
		a.Each(func(key string, value *Node) {
			if !equal {
				return
			}
			other, ok := b.members.Get(key)
			equal = ok && Equal(value, other.(*Node))
		})
		return equal
	default:
		return false
	}
}

func numberEqual(x, y string) bool {
	if x == y {
		return true
	}
	if i, err := strconv.ParseInt(x, 10, 64); err == nil {
		if j, err := strconv.ParseInt(y, 10, 64); err == nil {
			return i == j
		}
	}
	f, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return false
	}
	g, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return false
	}
	return f == g
}
