package resource

import (
	"os"
	"path"
	"path/filepath"

	"github.com/medusaphp/filesystem/core"
	"github.com/medusaphp/filesystem/errors"
)

// Getwd returns the operating system's current working directory, which
// relative locations resolve against. It is read on every call.
func Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeIO, "failed to read working directory")
	}
	return filepath.ToSlash(wd), nil
}

// requireLocal fails for providers whose paths the process cannot enter.
func requireLocal(fsys core.FS, dir string) error {
	if fsys.Type() == core.FSTypeLocal {
		return nil
	}
	return errors.WithContext(
		errors.Wrap(core.ErrUnsupported, errors.CodeUnsupported, "working directory requires the local filesystem"),
		"location", dir)
}

// chdir makes dir the process working directory.
func chdir(fsys core.FS, dir string) error {
	if err := requireLocal(fsys, dir); err != nil {
		return err
	}
	info, err := fsys.Stat(dir)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to change directory",
			map[string]interface{}{"location": dir})
	}
	if !info.IsDir() {
		return errors.WithContext(
			errors.New(errors.CodeIO, "failed to change directory: not a directory"),
			"location", dir)
	}
	if err := os.Chdir(filepath.FromSlash(dir)); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to change directory",
			map[string]interface{}{"location": dir})
	}
	return nil
}

// absolute resolves location against the current working directory.
func absolute(location string) (string, error) {
	location = filepath.ToSlash(location)
	if path.IsAbs(location) {
		return path.Clean(location), nil
	}
	wd, err := Getwd()
	if err != nil {
		return "", err
	}
	return path.Join(wd, location), nil
}

// restore sets the process working directory back to dir without checking
// it first.
func restore(dir string) error {
	if err := os.Chdir(filepath.FromSlash(dir)); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to restore working directory",
			map[string]interface{}{"location": dir})
	}
	return nil
}
