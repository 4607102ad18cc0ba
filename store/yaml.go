package store

import (
	"bytes"

	"github.com/tableauio/jsonsh/node"
	"gopkg.in/yaml.v3"
)

// MarshalToYAML marshals the given node in the YAML format. Object keys keep
// their order and numbers keep their source text.
func MarshalToYAML(root *node.Node) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(toYAMLNode(root)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toYAMLNode(n *node.Node) *yaml.Node {
	switch n.Kind() {
	case node.ObjectNode:
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		n.Each(func(key string, value *node.Node) {
			mapping.Content = append(mapping.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				toYAMLNode(value),
			)
		})
		return mapping
	case node.ArrayNode:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range n.Elems() {
			seq.Content = append(seq.Content, toYAMLNode(elem))
		}
		return seq
	case node.StringNode:
		s, _ := n.Text()
		// The encoder quotes strings which would otherwise resolve to
		// another type, such as "true" or "1".
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case node.NumberNode:
		raw, _ := n.Text()
		return &yaml.Node{Kind: yaml.ScalarNode, Value: raw}
	case node.BoolNode:
		b, _ := n.Bool()
		value := "false"
		if b {
			value = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
