package humanfmt

import (
	"testing"
	"time"
)

func TestMillis(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0.00"},
		{1 * time.Millisecond, "1.00"},
		{1500 * time.Microsecond, "1.50"},
		{12340 * time.Microsecond, "12.34"},
		{2 * time.Second, "2000.00"},
	}

	for _, tt := range tests {
		got := Millis(tt.input)
		if got != tt.want {
			t.Errorf("Millis(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0ns"},
		{500 * time.Nanosecond, "500ns"},
		{1 * time.Microsecond, "1.0µs"},
		{1 * time.Millisecond, "1.0ms"},
		{1230 * time.Millisecond, "1.23s"},
		{90 * time.Second, "1m30s"},
		{60 * time.Second, "1m"},
		{3660 * time.Second, "1h1m"},
		{7200 * time.Second, "2h"},
	}

	for _, tt := range tests {
		got := Duration(tt.input)
		if got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.00K"},
		{20000, "20.00K"},
		{1_500_000, "1.50M"},
		{2_000_000_000, "2.00B"},
		{-5, "-5"},
	}

	for _, tt := range tests {
		got := Count(tt.input)
		if got != tt.want {
			t.Errorf("Count(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{1048576, "1.00 MiB"},
		{1073741824, "1.00 GiB"},
		{1099511627776, "1.00 TiB"},
	}

	for _, tt := range tests {
		got := Bytes(tt.input)
		if got != tt.want {
			t.Errorf("Bytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
