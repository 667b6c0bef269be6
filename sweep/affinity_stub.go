//go:build !linux

package sweep

import "errors"

// pinThread is a stub on platforms without user-settable CPU affinity.
// Callers treat pinning as best effort, so the error is advisory.
func pinThread(int) error {
	return errors.New("sweep: cpu pinning not supported on this platform")
}
