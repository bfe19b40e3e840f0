package exec

import (
	"context"
	"os"
	osexec "os/exec"
	"sort"
	"time"
)

// Command is the os/exec backed Executor.
type Command struct {
	config  *config
	baseCtx context.Context
	ctx     context.Context
}

// New creates a Command with the given global options.
func New(opts ...Option) *Command {
	cmd := &Command{
		config:  newConfig(),
		baseCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

func (c *Command) WithTimeout(timeout time.Duration) Executor {
	c.config.localTimeout = timeout
	return c
}

func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// Run executes the command. Local settings are reset afterwards whether or
// not the command succeeded.
func (c *Command) Run(args ...string) (*Result, error) {
	defer c.reset()

	if len(args) == 0 {
		return nil, &ExecError{ExitCode: -1, Err: osexec.ErrNotFound}
	}

	ctx := c.baseCtx
	if c.ctx != nil {
		ctx = c.ctx
	}
	if timeout := c.config.effectiveTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = c.config.effectiveDir()

	if c.config.effectiveInheritEnv() {
		cmd.Env = os.Environ()
	}
	env := c.config.effectiveEnv()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Env = append(cmd.Env, k+"="+env[k])
	}

	stdout := newCapture()
	stderr := newCapture()
	combined := newCapture()
	cmd.Stdout = newMultiWriter(stdout, combined)
	cmd.Stderr = newMultiWriter(stderr, combined)

	err := cmd.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		return result, &ExecError{
			Command:  args,
			Dir:      cmd.Dir,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}
	return result, nil
}

// Clone returns a Command sharing the global configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config:  c.config.clone(),
		baseCtx: c.baseCtx,
	}
}

func (c *Command) reset() {
	c.config.resetLocal()
	c.ctx = nil
}
