package xerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEcode(t *testing.T) {
	assert.Equal(t, "NotFound: key or index absent", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrRange, ErrRange))
	assert.False(t, errors.Is(ErrRange, ErrParse))
	assert.Equal(t, "", newEcode("", "nothing").Error())
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "not-found",
			err:  Newf(ErrNotFound, "key '%s' not found", "a"),
			want: "NotFound",
		},
		{
			name: "wrapped-io",
			err:  WithOp(Wrapf(ErrIO, errors.New("disk full"), "write file"), "save"),
			want: "IO",
		},
		{
			name: "foreign",
			err:  WithOp(errors.New("boom"), "get"),
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
