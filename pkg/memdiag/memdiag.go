// Package memdiag snapshots Go runtime memory statistics so the benchmark
// can log heap pressure between sizes under --debug.
package memdiag

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Stats holds the subset of runtime.MemStats the benchmark reports.
type Stats struct {
	// Alloc is bytes allocated and still in use.
	Alloc uint64

	// TotalAlloc is cumulative bytes allocated, including freed memory.
	TotalAlloc uint64

	// Sys is bytes obtained from the OS.
	Sys uint64

	// HeapInuse is bytes in in-use heap spans.
	HeapInuse uint64

	// NumGC is the number of completed GC cycles.
	NumGC uint32
}

// Read reads current memory statistics.
func Read() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		Alloc:      m.Alloc,
		TotalAlloc: m.TotalAlloc,
		Sys:        m.Sys,
		HeapInuse:  m.HeapInuse,
		NumGC:      m.NumGC,
	}
}

// Log emits a debug event with the current memory statistics. It is a
// no-op at info level, so callers need not gate it themselves.
func Log(log zerolog.Logger, msg string) {
	s := Read()
	log.Debug().
		Uint64("alloc", s.Alloc).
		Uint64("total_alloc", s.TotalAlloc).
		Uint64("sys", s.Sys).
		Uint64("heap_inuse", s.HeapInuse).
		Uint32("num_gc", s.NumGC).
		Msg(msg)
}
