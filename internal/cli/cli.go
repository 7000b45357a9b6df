// Package cli implements the command-line interface for sortbench.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/eunmann/sortbench/internal/logctx"
	"github.com/eunmann/sortbench/pkg/bench"
	"github.com/eunmann/sortbench/pkg/dataset"
	"github.com/eunmann/sortbench/pkg/humanfmt"
	"github.com/eunmann/sortbench/pkg/logging"
	"github.com/eunmann/sortbench/pkg/sysmem"
)

const (
	defaultSizes = "1000,5000,20000"

	// seedEnvVar overrides the dataset seed; the --seed flag takes priority.
	seedEnvVar = "SORTBENCH_SEED"
)

// Run executes the CLI with the given arguments, writing the report to
// stdout. All configuration errors surface before any timing begins.
func Run(args []string) error {
	return run(args, os.Stdout)
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sortbench", flag.ContinueOnError)
	var sizesCSV string
	fs.StringVar(&sizesCSV, "sizes", defaultSizes, "comma-separated array sizes to benchmark")
	fs.StringVar(&sizesCSV, "n", defaultSizes, "shorthand for -sizes")
	repeat := fs.Int("repeat", 3, "number of measurement batches per cell")
	number := fs.Int("number", 1, "sort calls per measurement batch")
	insMax := fs.Int("ins-max", 20000, "largest n at which insertion sort is still measured")
	noScaling := fs.Bool("no-scaling", false, "suppress the scaling-ratio report")
	seedFlag := fs.Int64("seed", 0, "dataset generator seed (0 = default)")
	debug := fs.Bool("debug", false, "enable debug logging")
	human := fs.Bool("human", false, "human-friendly console logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments: %v", bench.ErrInvalidConfig, fs.Args())
	}

	logging.Init(*debug, *human)

	sizes, err := parseSizes(sizesCSV)
	if err != nil {
		return err
	}
	seed, err := determineSeed(*seedFlag)
	if err != nil {
		return err
	}

	cfg := bench.Config{
		Sizes:        sizes,
		Repeat:       *repeat,
		Number:       *number,
		InsertionMax: *insMax,
		Scaling:      !*noScaling,
		Seed:         seed,
	}
	runner, err := bench.NewRunner(cfg)
	if err != nil {
		return err
	}

	mem := sysmem.Total()
	setupLog := logging.WithPhase("setup")
	setupLog.Info().
		Str("mem_total", humanfmt.Bytes(mem.TotalBytes)).
		Bool("mem_reliable", mem.Reliable).
		Int("cpus", runtime.NumCPU()).
		Int64("seed", seed).
		Ints("sizes", sizes).
		Msg("starting benchmark")

	ctx := logctx.WithLogger(context.Background(), *logging.L())

	start := time.Now()
	if err := runner.Run(ctx, stdout); err != nil {
		return err
	}
	if cfg.Scaling {
		if err := runner.RunScaling(ctx, stdout); err != nil {
			return err
		}
	}

	logging.L().Info().
		Str("elapsed", humanfmt.Duration(time.Since(start))).
		Msg("benchmark complete")
	return nil
}

// parseSizes parses a comma-separated list of positive integers. Empty
// tokens are skipped; an empty result is an error.
func parseSizes(csv string) ([]int, error) {
	var sizes []int
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: size %q is not an integer", bench.ErrInvalidConfig, tok)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: sizes must be positive, got %d", bench.ErrInvalidConfig, n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: --sizes has no entries", bench.ErrInvalidConfig)
	}
	return sizes, nil
}

// determineSeed resolves the dataset seed: --seed, then SORTBENCH_SEED,
// then the built-in default.
func determineSeed(cliSeed int64) (int64, error) {
	if cliSeed != 0 {
		return cliSeed, nil
	}
	if env := os.Getenv(seedEnvVar); env != "" {
		seed, err := strconv.ParseInt(env, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q is not an integer", bench.ErrInvalidConfig, seedEnvVar, env)
		}
		return seed, nil
	}
	return dataset.DefaultSeed, nil
}
