// Package jsonparser converts JSON text to and from node trees.
//
// Object keys keep their source order and numbers keep their source text,
// so a document that is parsed and marshaled again without changes keeps
// its structure and number formatting.
package jsonparser

import (
	"github.com/tableauio/jsonsh/node"
)

type Parser interface {
	// Parse parses the given json string into a node.
	Parse(string) (*node.Node, error)
}

// Parse parses a JSON document with the default parser.
func Parse(jsonStr string) (*node.Node, error) {
	return Fastjson.Parse(jsonStr)
}

// ParseBytes parses a JSON document held in b with the default parser.
func ParseBytes(b []byte) (*node.Node, error) {
	return Fastjson.Parse(string(b))
}
