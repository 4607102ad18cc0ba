package jsonparser

import (
	"bytes"
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"github.com/tableauio/jsonsh/node"
	"github.com/valyala/fastjson"
)

// Marshal returns the compact JSON encoding of n.
func Marshal(n *node.Node) []byte {
	var arena fastjson.Arena
	return toValue(&arena, n).MarshalTo(nil)
}

// MarshalString returns the compact JSON encoding of n as a string.
func MarshalString(n *node.Node) string {
	return string(Marshal(n))
}

// MarshalIndent returns the JSON encoding of n with each element on a new
// line, indented by indent.
func MarshalIndent(n *node.Node, indent string) ([]byte, error) {
	out := new(bytes.Buffer)
	if err := json.Indent(out, Marshal(n), "", indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func toValue(arena *fastjson.Arena, n *node.Node) *fastjson.Value {
	switch n.Kind() {
	case node.ObjectNode:
		if hasStdQuoteKey(n) {
			return arena.NewNumberString(string(appendObject(nil, arena, n)))
		}
		obj := arena.NewObject()
		n.Each(func(key string, value *node.Node) {
			obj.Set(key, toValue(arena, value))
		})
		return obj
	case node.ArrayNode:
		arr := arena.NewArray()
		for i, elem := range n.Elems() {
			arr.SetArrayItem(i, toValue(arena, elem))
		}
		return arr
	case node.StringNode:
		s, _ := n.Text()
		if needsStdQuote(s) {
			return arena.NewNumberString(quote(s))
		}
		return arena.NewString(s)
	case node.NumberNode:
		raw, _ := n.Text()
		return arena.NewNumberString(raw)
	case node.BoolNode:
		if b, _ := n.Bool(); b {
			return arena.NewTrue()
		}
		return arena.NewFalse()
	default:
		return arena.NewNull()
	}
}

// hasStdQuoteKey reports whether a key of object n needs quoting by
// encoding/json, which fastjson's Object.Set cannot express.
func hasStdQuoteKey(n *node.Node) bool {
	found := false
	n.Each(func(key string, _ *node.Node) {
		found = found || needsStdQuote(key)
	})
	return found
}

// appendObject appends the JSON text of object n to dst.
func appendObject(dst []byte, arena *fastjson.Arena, n *node.Node) []byte {
	dst = append(dst, '{')
	first := true
	n.Each(func(key string, value *node.Node) {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = append(dst, quote(key)...)
		dst = append(dst, ':')
		dst = toValue(arena, value).MarshalTo(dst)
	})
	return append(dst, '}')
}

// needsStdQuote reports whether s holds characters that fastjson would
// quote with Go-only escapes (\x01, \a, \v, \U0001xxxx, invalid UTF-8).
func needsStdQuote(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for _, r := range s {
		switch {
		case r == 0x7f:
			return true
		case r < 0x20 && r != '\b' && r != '\f' && r != '\n' && r != '\r' && r != '\t':
			return true
		case r > 0xffff && !strconv.IsPrint(r):
			return true
		}
	}
	return false
}

func quote(s string) string {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
