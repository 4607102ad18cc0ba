// Package xerrors defines the error kinds of jsonsh.
//
// Error handling model:
//  1. every error has exactly one kind (see ecode.go), or none for errors
//     coming from outside that were only annotated with an op
//  2. the op is the shell command that failed, set once at the command
//     boundary with WithOp
//  3. a cause (if any) is wrapped with a caller stack, printed by %+v
package xerrors

import (
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
)

// Error is an error with a kind, the failing op and a message.
type Error struct {
	kind  *ecode
	op    string
	msg   string
	cause error
}

func (e *Error) Error() string {
	content := e.msg
	if e.cause != nil {
		if content != "" {
			content += ": "
		}
		content += e.cause.Error()
	}
	if e.op != "" {
		content = e.op + ": " + content
	}
	return content
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	if e.kind == nil {
		return false
	}
	return e.kind.Is(target)
}

// Unwrap provides compatibility for Go 1.13 error chains.
func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Cause() error { return e.cause }

// Op returns the command which failed, or "" if not set.
func (e *Error) Op() string { return e.op }

// Message returns the message without op and cause.
func (e *Error) Message() string { return e.msg }

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			if e.cause != nil {
				_, _ = fmt.Fprintf(s, "\n%+v", e.cause)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func toEcode(kind error) *ecode {
	code, _ := kind.(*ecode)
	return code
}

// Newf returns an error of the given kind with a formatted message.
// kind must be one of the Err* kinds of this package.
func Newf(kind error, format string, args ...any) error {
	return &Error{
		kind: toEcode(kind),
		msg:  fmt.Sprintf(format, args...),
	}
}

// Wrapf returns an error of the given kind annotating err with a caller
// stack and a formatted message. If err is nil, Wrapf returns nil.
func Wrapf(kind error, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:  toEcode(kind),
		msg:   fmt.Sprintf(format, args...),
		cause: pkgerrors.WithStack(err),
	}
}

// WithOp sets the failing op of err. An op already set is kept, so inner
// errors keep the name of the command that raised them.
// If err is nil, WithOp returns nil.
func WithOp(err error, op string) error {
	if err == nil {
		return nil
	}
	var xerr *Error
	if errors.As(err, &xerr) {
		if xerr.op != "" {
			return err
		}
		clone := *xerr
		clone.op = op
		return &clone
	}
	return &Error{op: op, cause: err}
}

// Op returns the op of the outermost *Error in err's chain.
func Op(err error) string {
	var xerr *Error
	if errors.As(err, &xerr) {
		return xerr.op
	}
	return ""
}

// Code returns the kind code of err, such as "NotFound", or "" if err has
// no kind.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, code := range ecodes {
		if errors.Is(err, code) {
			return code.code
		}
	}
	return ""
}
