package exec

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a fake Executor that records the arguments it was asked to run.
type recorder struct {
	dir  string
	env  map[string]string
	runs [][]string
}

func (r *recorder) WithEnv(env map[string]string) Executor { r.env = env; return r }
func (r *recorder) WithDir(dir string) Executor { r.dir = dir; return r }
func (r *recorder) WithContext(context.Context) Executor { return r }
func (r *recorder) WithTimeout(time.Duration) Executor { return r }
func (r *recorder) WithInheritEnv() Executor { return r }
func (r *recorder) Clone() Executor { return &recorder{} }
func (r *recorder) Run(args ...string) (*Result, error) {
	r.runs = append(r.runs, args)
	return &Result{Stdout: "ok"}, nil
}

func TestWrapperPrependsCommand(t *testing.T) {
	rec := &recorder{}
	tar := NewWrapper(rec, "tar")

	result, err := tar.WithDir("/srv").WithEnv(map[string]string{"A": "b"}).Run("-cf", "/tmp/out.tar", "site")
	require.NoError(t, err)

	assert.Equal(t, "ok", result.Stdout)
	assert.Equal(t, "tar", tar.Name())
	assert.Equal(t, "/srv", rec.dir)
	assert.Equal(t, "b", rec.env["A"])
	require.Len(t, rec.runs, 1)
	assert.Equal(t, []string{"tar", "-cf", "/tmp/out.tar", "site"}, rec.runs[0])
}

func TestWrapperRealCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hi"), 0o644))

	cat := NewWrapper(New(), "cat")
	result, err := cat.WithDir(dir).Run("hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", result.Stdout)
}

func TestWrapperClone(t *testing.T) {
	echo := NewWrapper(New(), "echo")
	clone := echo.Clone()

	result, err := clone.Run("cloned")
	require.NoError(t, err)
	assert.Equal(t, "cloned\n", result.Stdout)
}
