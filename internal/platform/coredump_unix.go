//go:build linux || darwin || freebsd

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DisableCoreDumps sets the core file size limit of the process to zero so
// that decrypted secrets never end up in a crash dump.
func DisableCoreDumps() error {
	rlim := unix.Rlimit{Cur: 0, Max: 0}
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &rlim); err != nil {
		return fmt.Errorf("disable core dumps: %w", err)
	}
	return nil
}
