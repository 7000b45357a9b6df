package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/eunmann/sortbench/internal/logctx"
	"github.com/eunmann/sortbench/pkg/humanfmt"
	"github.com/eunmann/sortbench/pkg/timing"
)

// Scaling progressions double n at every step. The quadratic sort gets a
// smaller progression to bound total runtime.
var (
	scalingSizes          = []int{2000, 4000, 8000, 16000}
	quadraticScalingSizes = []int{1000, 2000, 4000, 8000}
)

// scalingRepeat is the batch count for scaling measurements.
const scalingRepeat = 3

// ScalingPoint is one timing in a scaling progression.
type ScalingPoint struct {
	N       int
	PerCall time.Duration
	// Ratio is PerCall divided by the previous point's PerCall;
	// 0 for the first point of a progression.
	Ratio float64
}

// RunScaling times each algorithm across its geometric size progression on
// random data and writes the timings with successive ratios to w.
//
// Doubling n shows roughly x4 for the quadratic sort and x2.0-2.4 for the
// n log n sorts. The report is diagnostic only; no threshold is asserted.
func (r *Runner) RunScaling(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "\nEmpirical scaling on random data (Insertion vs Merge vs Baseline)")

	for _, algo := range algorithms {
		sizes := scalingSizes
		if algo.quadratic {
			sizes = quadraticScalingSizes
		}

		fmt.Fprintf(w, "  %s:\n", algo.name)
		points, err := r.scalingFor(ctx, algo, sizes)
		if err != nil {
			return err
		}
		for _, p := range points {
			if p.Ratio > 0 {
				fmt.Fprintf(w, "    n=%6d: %8s ms  (x%.2f)\n", p.N, humanfmt.Millis(p.PerCall), p.Ratio)
			} else {
				fmt.Fprintf(w, "    n=%6d: %8s ms\n", p.N, humanfmt.Millis(p.PerCall))
			}
		}
	}
	return nil
}

// scalingFor times one algorithm across sizes on freshly generated random
// data and computes the ratio of successive timings.
func (r *Runner) scalingFor(ctx context.Context, algo algorithm, sizes []int) ([]ScalingPoint, error) {
	log := logctx.FromContext(logctx.WithStr(ctx, "algorithm", algo.name))

	points := make([]ScalingPoint, 0, len(sizes))
	var prev time.Duration
	for _, n := range sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data := r.gen.Random(n)
		per := timing.Measure(scalingRepeat, 1, func() {
			algo.sort(data)
		})

		p := ScalingPoint{N: n, PerCall: per}
		if prev > 0 {
			p.Ratio = float64(per) / float64(prev)
		}
		prev = per

		log.Debug().Int("n", n).Dur("per_call", per).Float64("ratio", p.Ratio).
			Msg("scaling point measured")
		points = append(points, p)
	}
	return points, nil
}
