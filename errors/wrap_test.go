package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("original error")
	err := Wrap(cause, CodeIO, "operation failed")

	require.NotNil(t, err)
	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, "operation failed", err.Message())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "[IO_ERROR] operation failed: original error", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeIO, "test"))
	require.Nil(t, Wrapf(nil, CodeIO, "test %d", 1))
	require.Nil(t, WrapWithContext(nil, CodeIO, "test", nil))
}

func TestWrap_PreservesSentinel(t *testing.T) {
	err := Wrap(fs.ErrNotExist, CodeIO, "stat failed")

	require.True(t, stderrors.Is(err, fs.ErrNotExist))
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrapf(cause, CodeIO, "failed to remove %s", "/tmp/x")

	require.Equal(t, "failed to remove /tmp/x", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrapWithContext(t *testing.T) {
	ctx := map[string]interface{}{"source": "/a", "target": "/b"}
	err := WrapWithContext(stderrors.New("rename"), CodeIO, "move failed", ctx)

	ctx["source"] = "mutated"

	got := err.Context()
	require.Equal(t, "/a", got["source"])
	require.Equal(t, "/b", got["target"])
}
