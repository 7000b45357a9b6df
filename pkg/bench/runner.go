// Package bench orchestrates the sorting benchmark: it crosses the three
// sort algorithms with every dataset kind and size, times each cell, and
// renders the tabular report plus the empirical scaling analysis.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/eunmann/sortbench/internal/logctx"
	"github.com/eunmann/sortbench/pkg/dataset"
	"github.com/eunmann/sortbench/pkg/humanfmt"
	"github.com/eunmann/sortbench/pkg/memdiag"
	"github.com/eunmann/sortbench/pkg/sortalgo"
	"github.com/eunmann/sortbench/pkg/timing"
)

// ErrInvalidConfig is wrapped by every configuration error, so callers can
// distinguish bad input from measurement failures with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the benchmark parameters. It is immutable for the duration
// of one run.
type Config struct {
	// Sizes are the array sizes to benchmark.
	Sizes []int
	// Repeat is the number of measurement batches per cell.
	Repeat int
	// Number is the number of sort calls per batch.
	Number int
	// InsertionMax is the largest size at which insertion sort is still
	// measured. Larger sizes render the "not measured" marker.
	InsertionMax int
	// Scaling controls whether the scaling-ratio report runs after the table.
	Scaling bool
	// Seed drives dataset generation. 0 = dataset.DefaultSeed.
	Seed int64
}

// DefaultConfig returns the standard benchmark parameters.
func DefaultConfig() Config {
	return Config{
		Sizes:        []int{1000, 5000, 20000},
		Repeat:       3,
		Number:       1,
		InsertionMax: 20000,
		Scaling:      true,
		Seed:         dataset.DefaultSeed,
	}
}

// Validate reports the first configuration problem, if any. It runs before
// any dataset is generated or any timing begins.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: at least one size is required", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("%w: sizes must be positive, got %d", ErrInvalidConfig, n)
		}
	}
	if c.Repeat <= 0 {
		return fmt.Errorf("%w: repeat must be positive, got %d", ErrInvalidConfig, c.Repeat)
	}
	if c.Number <= 0 {
		return fmt.Errorf("%w: number must be positive, got %d", ErrInvalidConfig, c.Number)
	}
	if c.InsertionMax <= 0 {
		return fmt.Errorf("%w: ins-max must be positive, got %d", ErrInvalidConfig, c.InsertionMax)
	}
	return nil
}

// algorithm pairs a display name with a non-mutating sort. quadratic marks
// the sorts subject to the InsertionMax ceiling.
type algorithm struct {
	name      string
	sort      func([]int) []int
	quadratic bool
}

var algorithms = []algorithm{
	{name: "Insertion", sort: sortalgo.Insertion[int], quadratic: true},
	{name: "Merge", sort: sortalgo.Merge[int]},
	{name: "Baseline", sort: sortalgo.Baseline[int]},
}

// Result is one timed cell of the report.
type Result struct {
	Algorithm string
	Dataset   dataset.Kind
	N         int
	// PerCall is the estimated cost of a single sort call.
	PerCall time.Duration
	// Measured is false when the cell was skipped by the size ceiling;
	// such cells render the notMeasured marker, never a zero.
	Measured bool
}

// Row is one report line: every algorithm's cell for one (size, kind) pair.
type Row struct {
	N       int
	Dataset dataset.Kind
	Cells   []Result
}

// Runner executes the benchmark cross-product.
type Runner struct {
	cfg Config
	gen *dataset.Generator
}

// NewRunner validates cfg and creates a runner with a freshly seeded
// dataset generator.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg: cfg,
		gen: dataset.NewGenerator(dataset.Config{Seed: cfg.Seed}),
	}, nil
}

// notMeasured marks cells excluded by the insertion-sort size ceiling.
const notMeasured = "—"

// cellWidths are the column widths for the three algorithm cells.
var cellWidths = []int{14, 11, 13}

// Run times every (size, dataset kind, algorithm) cell and writes the
// report table to w. Datasets are generated once per (size, kind) and
// shared across algorithms; each timed call sorts its own copy.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "\nBenchmark: repeat=%d, number=%d\n", r.cfg.Repeat, r.cfg.Number)
	fmt.Fprintf(w, "%8s  %-16s  %14s  %11s  %13s\n",
		"n", "dataset", "Insertion (ms)", "Merge (ms)", "Baseline (ms)")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for _, n := range r.cfg.Sizes {
		for _, kind := range dataset.Kinds {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := r.measureRow(ctx, n, kind)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, renderRow(row))
		}
		memdiag.Log(logctx.FromContext(logctx.WithInt(ctx, "n", n)), "size complete")
	}
	return nil
}

// measureRow generates one dataset instance and times every algorithm
// against it.
func (r *Runner) measureRow(ctx context.Context, n int, kind dataset.Kind) (Row, error) {
	data, err := r.gen.Generate(kind, n)
	if err != nil {
		return Row{}, err
	}

	ctx = logctx.WithStr(logctx.WithInt(ctx, "n", n), "dataset", string(kind))
	log := logctx.FromContext(ctx)

	row := Row{N: n, Dataset: kind, Cells: make([]Result, 0, len(algorithms))}
	for _, algo := range algorithms {
		cell := Result{Algorithm: algo.name, Dataset: kind, N: n}
		if algo.quadratic && n > r.cfg.InsertionMax {
			row.Cells = append(row.Cells, cell)
			continue
		}

		sort := algo.sort
		cell.PerCall = timing.Measure(r.cfg.Repeat, r.cfg.Number, func() {
			// Sort a fresh copy on every call so one call can never hand
			// pre-sorted data to the next.
			sort(slices.Clone(data))
		})
		cell.Measured = true
		log.Debug().
			Str("algorithm", algo.name).
			Str("elements", humanfmt.Count(int64(n))).
			Dur("per_call", cell.PerCall).
			Msg("cell measured")
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}

func renderRow(row Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8d  %-16s", row.N, row.Dataset)
	for i, cell := range row.Cells {
		v := notMeasured
		if cell.Measured {
			v = humanfmt.Millis(cell.PerCall)
		}
		fmt.Fprintf(&b, "  %*s", cellWidths[i], v)
	}
	return b.String()
}
