package shell

import (
	"strconv"

	"github.com/tableauio/jsonsh/node"
	"github.com/tableauio/jsonsh/store/jsonparser"
	"github.com/tableauio/jsonsh/xerrors"
)

// parseInt parses the integer argument s named name, such as "index".
func parseInt(name, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, xerrors.Newf(xerrors.ErrParse, "%s '%s' is not an integer", name, s)
	}
	return i, nil
}

func parseValue(s string) (*node.Node, error) {
	value, err := jsonparser.Parse(s)
	if err != nil {
		return nil, xerrors.Wrapf(xerrors.ErrParse, err, "invalid JSON value %s", s)
	}
	return value, nil
}

// lookup returns the value stored at key of the current object.
func (s *Shell) lookup(key string) (*node.Node, error) {
	return s.nav.Node().Get(key)
}

// lookupArray returns the array stored at key of the current object.
func (s *Shell) lookupArray(key string) (*node.Node, error) {
	value, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	if !value.IsArray() {
		return nil, xerrors.Newf(xerrors.ErrTypeMismatch, "value at '%s' is not an array", key)
	}
	return value, nil
}
