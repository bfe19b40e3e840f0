package exec

import (
	"context"
	"time"
)

// CommandWrapper binds an Executor to a single program so callers pass only
// arguments, e.g. NewWrapper(exec.New(), "tar").Run("-cf", target, name).
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper returns a CommandWrapper that prepends cmd to every Run.
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{executor: executor, cmd: cmd}
}

// Name returns the wrapped program.
func (w *CommandWrapper) Name() string {
	return w.cmd
}

func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

func (w *CommandWrapper) WithTimeout(timeout time.Duration) Executor {
	w.executor = w.executor.WithTimeout(timeout)
	return w
}

func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// Run executes the wrapped program with args.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	fullArgs := append([]string{w.cmd}, args...)
	return w.executor.Run(fullArgs...)
}

func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{executor: w.executor.Clone(), cmd: w.cmd}
}
