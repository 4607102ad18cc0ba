package shell

import (
	"fmt"

	"github.com/flynn/go-docopt"
	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/store/jsonparser"
	"github.com/tableauio/jsonsh/xerrors"
)

func init() {
	register("get", runGet, `
usage: get [--] <key> [<index>]

Print the value stored at <key> as JSON.

With <index>, print the element at <index> of the array or string stored
at <key>.
`)
	register("set", runSet, `
usage: set [-i <index>] [--] <key> <value>

Assign a JSON value to <key>, adding the key if it is absent.

Options:
	-i <index>  assign the element at <index> of the array stored at <key>

Words after "--" are never read as options, so a key or value beginning
with "-" must follow it:

	> set -- offset -5
	> set -i 0 -- -webkit-x "none"
`)
	register("ins", runIns, `
usage: ins [--] <key> <index> <value>

Insert a JSON value into the array stored at <key>.

The value is inserted before the element at <index>. An index past either
end of the array inserts at that end.
`)
	register("del", runDel, `
usage: del [-i <index> | -v <value>] [--] <key>

Delete <key> from the current object, or an element of the array stored
at <key>.

Options:
	-i <index>  delete the element at <index>
	-v <value>  delete the first element equal to the JSON <value>
`)
	register("len", runLen, `
usage: len [--] <key>

Print the length of the string, array or object stored at <key>.
`)
	register("resize", runResize, `
usage: resize [--] <key> <length>

Resize the array stored at <key>, truncating it or padding it with nulls.
`)
}

func runGet(s *Shell, args *docopt.Args) error {
	key := args.String["<key>"]
	value, err := s.lookup(key)
	if err != nil {
		return err
	}
	if arg := args.String["<index>"]; arg != "" {
		index, err := parseInt("index", arg)
		if err != nil {
			return err
		}
		switch value.Kind() {
		case node.ArrayNode:
			value, err = value.Index(index)
		case node.StringNode:
			value, err = value.CharAt(index)
		default:
			err = xerrors.Newf(xerrors.ErrTypeMismatch, "value at '%s' is not indexable", key)
		}
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(s.out, jsonparser.MarshalString(value))
	return nil
}

func runSet(s *Shell, args *docopt.Args) error {
	key := args.String["<key>"]
	value, err := parseValue(args.String["<value>"])
	if err != nil {
		return err
	}
	arg := args.String["-i"]
	if arg == "" {
		return s.nav.Node().Set(key, value)
	}
	index, err := parseInt("index", arg)
	if err != nil {
		return err
	}
	arr, err := s.lookupArray(key)
	if err != nil {
		return err
	}
	return arr.SetIndex(index, value)
}

func runIns(s *Shell, args *docopt.Args) error {
	key := args.String["<key>"]
	index, err := parseInt("index", args.String["<index>"])
	if err != nil {
		return err
	}
	value, err := parseValue(args.String["<value>"])
	if err != nil {
		return err
	}
	arr, err := s.lookupArray(key)
	if err != nil {
		return err
	}
	_, err = arr.Insert(index, value)
	return err
}

func runDel(s *Shell, args *docopt.Args) error {
	key := args.String["<key>"]
	switch {
	case args.String["-i"] != "":
		index, err := parseInt("index", args.String["-i"])
		if err != nil {
			return err
		}
		arr, err := s.lookupArray(key)
		if err != nil {
			return err
		}
		_, err = arr.RemoveAt(index)
		return err
	case args.String["-v"] != "":
		value, err := parseValue(args.String["-v"])
		if err != nil {
			return err
		}
		arr, err := s.lookupArray(key)
		if err != nil {
			return err
		}
		_, err = arr.RemoveValue(value)
		return err
	default:
		return s.nav.Node().Delete(key)
	}
}

func runLen(s *Shell, args *docopt.Args) error {
	value, err := s.lookup(args.String["<key>"])
	if err != nil {
		return err
	}
	length, err := value.Len()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, length)
	return nil
}

func runResize(s *Shell, args *docopt.Args) error {
	key := args.String["<key>"]
	length, err := parseInt("length", args.String["<length>"])
	if err != nil {
		return err
	}
	arr, err := s.lookupArray(key)
	if err != nil {
		return err
	}
	return arr.Resize(length)
}
