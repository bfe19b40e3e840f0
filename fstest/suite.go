// Package fstest provides a conformance suite for core.FS providers.
//
// Every provider backing resources must pass it:
//
//	func TestLocalFS(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
//	        return billy.NewLocal(), t.TempDir()
//	    })
//	}
//
// The factory returns a fresh filesystem and an existing, empty directory
// inside it under which the suite creates its fixtures.
package fstest

import (
	"path"
	"testing"

	"github.com/medusaphp/filesystem/core"
)

// Factory returns a filesystem and an empty scratch directory within it.
type Factory func(t *testing.T) (fsys core.FS, root string)

// Config adjusts the suite to a provider.
type Config struct {
	// SkipTests lists groups or subtests to skip, e.g. "SymlinkFS/Relative".
	SkipTests []string
}

// TestSuite runs every conformance group against fresh filesystems.
func TestSuite(t *testing.T, newFS Factory) {
	TestSuiteWithConfig(t, newFS, Config{})
}

// TestSuiteWithConfig runs the conformance groups honoring config.
func TestSuiteWithConfig(t *testing.T, newFS Factory, config Config) {
	groups := []struct {
		name string
		run  func(t *testing.T, fsys core.FS, root string)
	}{
		{"ReadFS", TestReadFS},
		{"WriteFS", TestWriteFS},
		{"ManageFS", TestManageFS},
		{"WalkFS", TestWalkFS},
		{"MetadataFS", TestMetadataFS},
		{"SymlinkFS", TestSymlinkFS},
		{"Realpath", TestRealpath},
		{"CopyTree", TestCopyTree},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.skips(g.name) {
				t.Skip("Skipped by provider configuration")
			}
			fsys, root := newFS(t)
			g.run(t, fsys, root)
		})
	}
}

func (c Config) skips(name string) bool {
	for _, skip := range c.SkipTests {
		if skip == name {
			return true
		}
	}
	return false
}

// scratch returns a fresh directory below root for one subtest.
func scratch(t *testing.T, fsys core.FS, root, name string) string {
	t.Helper()
	dir := path.Join(root, name)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", dir, err)
	}
	return dir
}

func mustWrite(t *testing.T, fsys core.FS, name, content string) {
	t.Helper()
	if err := fsys.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
}
