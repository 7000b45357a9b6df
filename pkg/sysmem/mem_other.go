//go:build !linux && !darwin

package sysmem

// physicalMemory reports detection as unavailable, triggering the fallback.
func physicalMemory() (uint64, bool) {
	return 0, false
}
