// Package exec runs external programs behind a small, mockable interface.
//
// Resources use it for the operations that are delegated to system tools,
// most notably archiving a directory with tar. The Command type wraps
// os/exec and captures stdout, stderr and their interleaving; CommandWrapper
// pins an Executor to one program.
//
// Settings come in two layers. Options passed to New are global and apply to
// every Run; the With* methods are local and are cleared once Run returns:
//
//	tar := exec.NewWrapper(exec.New(exec.WithTimeout(time.Minute)), "tar")
//	_, err := tar.WithDir("/srv").Run("-cf", "/tmp/site.tar", "site")
//
// A command that exits non-zero returns both the Result and an *ExecError.
package exec
