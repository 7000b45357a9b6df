// Package humanfmt provides human-readable formatting for the benchmark
// report and log lines: millisecond cells, durations, counts, and bytes.
package humanfmt

import (
	"fmt"
	"strconv"
	"time"
)

// Millis renders a duration as milliseconds with two decimal places, the
// format used by the benchmark table cells.
func Millis(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d)/float64(time.Millisecond))
}

// Duration renders a duration compactly at a precision matching its
// magnitude. Examples: "1.23s", "45.6ms", "789.0µs", "1m30s", "2h15m".
func Duration(d time.Duration) string {
	if d < 0 {
		return d.String()
	}

	switch {
	case d >= time.Hour:
		h := d / time.Hour
		m := (d % time.Hour) / time.Minute
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	case d >= time.Minute:
		m := d / time.Minute
		s := (d % time.Minute) / time.Second
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

// Count renders an element count compactly: "789", "456.00K", "1.23M".
func Count(n int64) string {
	if n < 0 {
		return strconv.FormatInt(n, 10)
	}

	units := []struct {
		limit int64
		name  string
	}{
		{1_000_000_000, "B"},
		{1_000_000, "M"},
		{1_000, "K"},
	}
	for _, u := range units {
		if n >= u.limit {
			return fmt.Sprintf("%.2f%s", float64(n)/float64(u.limit), u.name)
		}
	}
	return strconv.FormatInt(n, 10)
}

// Bytes renders a byte count using IEC binary units: "512 B", "1.50 MiB".
func Bytes(b uint64) string {
	const kib = 1024

	units := []struct {
		limit uint64
		name  string
	}{
		{kib * kib * kib * kib, "TiB"},
		{kib * kib * kib, "GiB"},
		{kib * kib, "MiB"},
		{kib, "KiB"},
	}
	for _, u := range units {
		if b >= u.limit {
			return fmt.Sprintf("%.2f %s", float64(b)/float64(u.limit), u.name)
		}
	}
	return fmt.Sprintf("%d B", b)
}
