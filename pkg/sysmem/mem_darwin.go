//go:build darwin

package sysmem

import "golang.org/x/sys/unix"

// physicalMemory returns total system RAM on macOS via the hw.memsize sysctl.
func physicalMemory() (uint64, bool) {
	mem, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0, false
	}
	return mem, true
}
