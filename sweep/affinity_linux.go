//go:build linux

package sweep

import (
	"golang.org/x/sys/unix"
)

// pinThread binds the calling OS thread to one logical CPU. The caller
// must hold runtime.LockOSThread for the pin to stay meaningful.
func pinThread(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	// tid 0 targets the calling thread.
	return unix.SchedSetaffinity(0, &set)
}
