package exec

import (
	"context"
	"time"
)

// Executor runs external programs on behalf of resources that delegate to
// system tools (the archiver shells out to tar).
type Executor interface {
	// WithEnv sets environment variables for the next Run.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next Run.
	WithDir(dir string) Executor

	// WithContext sets the context for the next Run.
	WithContext(ctx context.Context) Executor

	// WithTimeout bounds the next Run.
	WithTimeout(timeout time.Duration) Executor

	// WithInheritEnv makes the next Run inherit the parent environment.
	WithInheritEnv() Executor

	// Run executes args[0] with the remaining arguments and returns the
	// captured output. A non-zero exit status yields an *ExecError.
	Run(args ...string) (*Result, error)

	// Clone returns an executor with the same global configuration.
	Clone() Executor
}

// Result is the captured outcome of a single Run.
type Result struct {
	Stdout   string
	Stderr   string
	Combined string
	ExitCode int
}

// Option configures global settings on a Command.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithContext returns an Option that sets the base context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.baseCtx = ctx
	}
}

// WithTimeout returns an Option that bounds every Run.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Command) {
		c.config.globalTimeout = timeout
	}
}

// WithInheritEnv returns an Option that inherits the parent environment on every Run.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}
