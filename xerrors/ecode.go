package xerrors

import "fmt"

type ecode struct {
	code string
	desc string
}

func newEcode(code, desc string) *ecode {
	return &ecode{
		code: code,
		desc: desc,
	}
}

func (e *ecode) Error() string {
	if e.code == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.desc)
}

func (e *ecode) Is(target error) bool {
	t, ok := target.(*ecode)
	return ok && e.code == t.code
}

// Error kinds reported by the shell. Use errors.Is to test an error against
// one of them.
var (
	ErrNotFound     = newEcode("NotFound", "key or index absent")
	ErrTypeMismatch = newEcode("TypeMismatch", "value has the wrong type")
	ErrRange        = newEcode("Range", "index or value out of range")
	ErrParse        = newEcode("Parse", "argument is not valid")
	ErrStack        = newEcode("Stack", "location stack exhausted")
	ErrIO           = newEcode("IO", "storage read or write failed")
)

var ecodes = []*ecode{
	ErrNotFound,
	ErrTypeMismatch,
	ErrRange,
	ErrParse,
	ErrStack,
	ErrIO,
}
