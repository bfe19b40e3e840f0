package resource

import (
	"context"
	"log/slog"

	"github.com/medusaphp/filesystem/billy"
	"github.com/medusaphp/filesystem/core"
	"github.com/medusaphp/filesystem/exec"
)

// Option configures a handle.
type Option func(*options)

type options struct {
	fs       core.FS
	logger   *slog.Logger
	executor exec.Executor
}

// WithFS sets the filesystem a handle operates on. The default is the local
// filesystem.
func WithFS(fsys core.FS) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithExecutor sets the executor used to run external tools such as tar.
func WithExecutor(executor exec.Executor) Option {
	return func(o *options) {
		o.executor = executor
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.fs == nil {
		o.fs = billy.NewLocal()
	}
	if o.logger == nil {
		o.logger = slog.New(discardHandler{})
	}
	if o.executor == nil {
		o.executor = exec.New(exec.WithInheritEnv())
	}
	return o
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
