package exec

import (
	"fmt"
	"strings"
)

// ExecError describes a command that could not be started or exited non-zero.
type ExecError struct {
	Command  []string
	Dir      string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("command %q failed with exit code %d", strings.Join(e.Command, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
