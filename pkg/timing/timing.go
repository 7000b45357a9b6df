// Package timing measures the wall-clock cost of a single function call by
// averaging over repeated batches of calls.
package timing

import "time"

// Measure runs fn in repeat independent batches of number calls each and
// returns the estimated cost of one call: total elapsed / (repeat * number).
//
// The outer repeat loop averages out scheduler and cache jitter; the inner
// number loop amortizes the clock-read overhead for very fast calls.
// Values below 1 are clamped to 1.
func Measure(repeat, number int, fn func()) time.Duration {
	if repeat < 1 {
		repeat = 1
	}
	if number < 1 {
		number = 1
	}

	var total time.Duration
	for r := 0; r < repeat; r++ {
		start := time.Now()
		for i := 0; i < number; i++ {
			fn()
		}
		total += time.Since(start)
	}
	return total / time.Duration(repeat*number)
}
