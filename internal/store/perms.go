package store

import (
	"os"
	"runtime"
)

const (
	// dirMode restricts the cache directory to the owning user.
	dirMode os.FileMode = 0o700

	// fileMode restricts record files to the owning user.
	fileMode os.FileMode = 0o600
)

// permissionsEnforced reports whether the platform honors POSIX-style
// permission bits. Where it does not, permission restriction degrades to a
// no-op: the logical contract is "best-effort owner-only".
func permissionsEnforced() bool {
	switch runtime.GOOS {
	case "windows", "js", "wasip1":
		return false
	default:
		return true
	}
}

// restrict applies mode to path when the platform enforces permissions.
// An explicit chmod is required because creation modes are masked by umask.
func restrict(path string, mode os.FileMode) error {
	if !permissionsEnforced() {
		return nil
	}
	return os.Chmod(path, mode)
}
