package store

import (
	"bytes"

	"github.com/protocolbuffers/txtpbfmt/parser"
	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/store/jsonparser"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// MarshalToJSON marshals the given node in the JSON format. Object keys keep
// their order and numbers keep their source text.
func MarshalToJSON(root *node.Node, pretty bool, indent string) ([]byte, error) {
	if pretty {
		return jsonparser.MarshalIndent(root, indent)
	}
	return jsonparser.Marshal(root), nil
}

// ToValue converts the given node to a google.protobuf.Value.
//
// NOTE: google.protobuf.Struct is a map, so object keys lose their order,
// and numbers become doubles. A number out of the double range is an error.
func ToValue(n *node.Node) (*structpb.Value, error) {
	switch n.Kind() {
	case node.ObjectNode:
		fields := make(map[string]*structpb.Value, len(n.Keys()))
		var err error
		n.Each(func(key string, value *node.Node) {
			if err != nil {
				return
			}
			fields[key], err = ToValue(value)
		})
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	case node.ArrayNode:
		values := make([]*structpb.Value, 0, len(n.Elems()))
		for _, elem := range n.Elems() {
			value, err := ToValue(elem)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values}), nil
	case node.StringNode:
		s, _ := n.Text()
		return structpb.NewStringValue(s), nil
	case node.NumberNode:
		f, err := n.Float()
		if err != nil {
			return nil, err
		}
		return structpb.NewNumberValue(f), nil
	case node.BoolNode:
		b, _ := n.Bool()
		return structpb.NewBoolValue(b), nil
	default:
		return structpb.NewNullValue(), nil
	}
}

// MarshalToText marshals the given node as a google.protobuf.Value in the
// text (textproto) format. You can depend on the output being stable.
func MarshalToText(root *node.Node, pretty bool, indent string) ([]byte, error) {
	msg, err := ToValue(root)
	if err != nil {
		return nil, err
	}
	if pretty {
		opts := prototext.MarshalOptions{
			Multiline: true,
			Indent:    indent,
		}
		messageText, err := opts.Marshal(msg)
		if err != nil {
			return nil, err
		}
		// To obtain some degree of stability, the protobuf-go team recommend passing
		// the output of prototext through the [txtpbfmt](https://github.com/protocolbuffers/txtpbfmt)
		// program. The formatter can be directly invoked in Go using parser.Format.
		text, err := parser.Format(messageText)
		if err != nil {
			return nil, err
		}
		// remove last newline
		return bytes.TrimRight(text, "\n"), nil
	}

	messageText, err := prototext.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(messageText), nil
}

// MarshalToBin marshals the given node as a google.protobuf.Value in the
// wire (binary) format.
func MarshalToBin(root *node.Node) ([]byte, error) {
	// Deterministic sorts map entries, so equal documents give equal bytes.
	msg, err := ToValue(root)
	if err != nil {
		return nil, err
	}
	options := proto.MarshalOptions{Deterministic: true}
	return options.Marshal(msg)
}
