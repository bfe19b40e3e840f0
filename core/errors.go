package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	ErrPermission = fs.ErrPermission

	// ErrUnsupported is returned when a provider lacks an optional capability.
	ErrUnsupported = errors.New("operation not supported")

	// ErrLoop is returned when resolving a path follows too many symbolic links.
	ErrLoop = errors.New("too many levels of symbolic links")
)
