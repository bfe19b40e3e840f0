// Package billy provides core.FS implementations backed by go-billy.
//
// LocalFS wraps osfs rooted at "/" and MemoryFS wraps memfs. Both add the
// guarantees resources rely on that go-billy leaves out: writes, renames and
// symlinks never create missing parent directories, Mkdir applies permission
// bits exactly, and Chmod/Chtimes are available (MemoryFS keeps them in an
// overlay since memfs cannot store them).
//
//	fsys := billy.NewLocal()
//	err := fsys.Mkdir("/srv/cache", 0o754)
//
// MemoryFS is intended for tests:
//
//	fsys := billy.NewMemory()
//	err := fsys.WriteFile("/tmp/a.txt", []byte("data"), 0o644)
//
// FS instances are safe for concurrent use by multiple goroutines. File
// handles are not.
package billy
