package jsonparser

import (
	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/xerrors"
	"github.com/valyala/fastjson"
)

var Fastjson Parser = &fastjsonParser{}

type fastjsonParser struct{}

func (p *fastjsonParser) Parse(jsonStr string) (*node.Node, error) {
	var parser fastjson.Parser
	root, err := parser.Parse(jsonStr)
	if err != nil {
		return nil, xerrors.Wrapf(xerrors.ErrParse, err, "invalid JSON")
	}
	return convert(root)
}

func convert(v *fastjson.Value) (*node.Node, error) {
	switch v.Type() {
	case fastjson.TypeObject:
		obj := node.NewObject()
		o, err := v.Object()
		if err != nil {
			return nil, xerrors.Wrapf(xerrors.ErrParse, err, "invalid object")
		}
		var convErr error
		o.Visit(func(key []byte, value *fastjson.Value) {
			if convErr != nil {
				return
			}
			child, err := convert(value)
			if err != nil {
				convErr = err
				return
			}
			// Later duplicates overwrite the value but keep the first position.
			convErr = obj.Set(string(key), child)
		})
		if convErr != nil {
			return nil, convErr
		}
		return obj, nil
	case fastjson.TypeArray:
		values, err := v.Array()
		if err != nil {
			return nil, xerrors.Wrapf(xerrors.ErrParse, err, "invalid array")
		}
		elems := make([]*node.Node, 0, len(values))
		for _, value := range values {
			elem, err := convert(value)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return node.NewArray(elems...), nil
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return nil, xerrors.Wrapf(xerrors.ErrParse, err, "invalid string")
		}
		return node.NewString(string(b)), nil
	case fastjson.TypeNumber:
		// MarshalTo emits the number exactly as it appeared in the source.
		return node.NewNumber(string(v.MarshalTo(nil))), nil
	case fastjson.TypeTrue:
		return node.NewBool(true), nil
	case fastjson.TypeFalse:
		return node.NewBool(false), nil
	case fastjson.TypeNull:
		return node.NewNull(), nil
	default:
		return nil, xerrors.Newf(xerrors.ErrParse, "unknown JSON type: %s", v.Type())
	}
}
