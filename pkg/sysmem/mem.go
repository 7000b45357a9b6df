// Package sysmem detects total system RAM so the benchmark can report the
// host it ran on. Unsupported platforms fall back to a safe default.
package sysmem

// DefaultMemoryBytes is the fallback (4 GB) used when platform-specific
// detection fails or is unsupported.
const DefaultMemoryBytes uint64 = 4 * 1024 * 1024 * 1024

// Result holds the result of memory detection.
type Result struct {
	// TotalBytes is the total system memory in bytes.
	TotalBytes uint64

	// Reliable is true when the value came from a platform-specific
	// method rather than the fallback default.
	Reliable bool
}

// Total returns the total system memory, falling back to DefaultMemoryBytes
// with Reliable=false when detection is unavailable.
func Total() Result {
	bytes, ok := physicalMemory()
	if !ok || bytes == 0 {
		return Result{TotalBytes: DefaultMemoryBytes, Reliable: false}
	}
	return Result{TotalBytes: bytes, Reliable: true}
}
