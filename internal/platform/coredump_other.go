//go:build !linux && !darwin && !freebsd

package platform

// DisableCoreDumps is a no-op on platforms without RLIMIT_CORE.
func DisableCoreDumps() error {
	return nil
}
