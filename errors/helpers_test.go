package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := New(CodeNotFound, "not found")
	wrapped := Wrap(sentinel, CodeIO, "stat failed")

	require.True(t, Is(wrapped, sentinel))
	require.False(t, Is(wrapped, New(CodeInvalidInput, "invalid")))
}

func TestAs(t *testing.T) {
	err := New(CodeNotFound, "not found")

	var resErr ResourceError
	require.True(t, As(err, &resErr))
	require.Equal(t, CodeNotFound, resErr.Code())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: CodeUnknown},
		{name: "standard error", err: stderrors.New("plain"), want: CodeUnknown},
		{name: "resource error", err: New(CodeLogic, "exists"), want: CodeLogic},
		{name: "outermost wins", err: Wrap(New(CodeNotFound, "x"), CodeIO, "y"), want: CodeIO},
		{name: "fmt wrapped", err: fmt.Errorf("ctx: %w", New(CodeIO, "x")), want: CodeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	err := Wrap(New(CodeLogic, "exists"), CodeIO, "symlink failed")

	require.True(t, HasCode(err, CodeIO))
	require.True(t, HasCode(err, CodeLogic))
	require.False(t, HasCode(err, CodeNotFound))
	require.False(t, HasCode(nil, CodeIO))
}

func TestIsIO_IsLogic(t *testing.T) {
	require.True(t, IsIO(New(CodeIO, "x")))
	require.False(t, IsIO(New(CodeLogic, "x")))
	require.True(t, IsLogic(fmt.Errorf("wrapped: %w", New(CodeLogic, "x"))))
	require.False(t, IsLogic(stderrors.New("plain")))
}
