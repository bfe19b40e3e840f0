package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeLogic, "location already exists")

	require.NotNil(t, err)
	require.Equal(t, CodeLogic, err.Code())
	require.Equal(t, "location already exists", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[LOGIC_ERROR] location already exists", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "unsupported pattern flag %q", "x")

	require.Equal(t, CodeInvalidInput, err.Code())
	require.Equal(t, `unsupported pattern flag "x"`, err.Message())
}
