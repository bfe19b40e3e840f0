package exec

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicExecution(t *testing.T) {
	result, err := New().Run("echo", "hello world")
	require.NoError(t, err)

	assert.Equal(t, "hello world\n", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestRun_NoArgs(t *testing.T) {
	result, err := New().Run()
	require.Error(t, err)
	assert.Nil(t, result)

	var execErr *ExecError
	require.True(t, stderrors.As(err, &execErr))
	assert.Equal(t, -1, execErr.ExitCode)
}

func TestCommandFailure(t *testing.T) {
	result, err := New().Run("sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	require.NotNil(t, result)

	var execErr *ExecError
	require.True(t, stderrors.As(err, &execErr))
	assert.Equal(t, 3, execErr.ExitCode)
	assert.Equal(t, "boom\n", execErr.Stderr)
	assert.Contains(t, err.Error(), "boom")
}

func TestWithDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), nil, 0o644))

	result, err := New().WithDir(dir).Run("ls")
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "marker")
}

func TestLocalSettingsReset(t *testing.T) {
	dir := t.TempDir()
	cmd := New(WithDir(dir))

	_, err := cmd.WithEnv(map[string]string{"LOCAL": "1"}).WithDir("/").Run("pwd")
	require.NoError(t, err)

	result, err := cmd.Run("sh", "-c", "echo \"$LOCAL\"; pwd")
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, "\n"+resolved+"\n", result.Stdout)
}

func TestGlobalEnv(t *testing.T) {
	cmd := New(WithEnv(map[string]string{"GLOBAL": "g", "SHARED": "global"}))

	result, err := cmd.WithEnv(map[string]string{"SHARED": "local"}).Run("sh", "-c", "echo $GLOBAL $SHARED")
	require.NoError(t, err)
	assert.Equal(t, "g local\n", result.Stdout)
}

func TestWithTimeout(t *testing.T) {
	_, err := New().WithTimeout(100*time.Millisecond).Run("sleep", "2")
	require.Error(t, err)
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().WithContext(ctx).Run("sleep", "2")
	require.Error(t, err)
}

func TestCombinedOutput(t *testing.T) {
	result, err := New().Run("sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)

	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
	assert.Contains(t, result.Combined, "out\n")
	assert.Contains(t, result.Combined, "err\n")
}

func TestClone(t *testing.T) {
	original := New(WithEnv(map[string]string{"VAR": "original"}))
	original.WithDir("/nonexistent-local-only")

	clone := original.Clone()
	result, err := clone.Run("sh", "-c", "echo $VAR")
	require.NoError(t, err)
	assert.Equal(t, "original\n", result.Stdout)
}
