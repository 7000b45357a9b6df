package cli

import (
	"bytes"
	"errors"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/eunmann/sortbench/pkg/bench"
	"github.com/eunmann/sortbench/pkg/dataset"
)

func TestParseSizes(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{"1000,5000,20000", []int{1000, 5000, 20000}, false},
		{"1000", []int{1000}, false},
		{" 10 , 20 ", []int{10, 20}, false},
		{"10,,20", []int{10, 20}, false},
		{"10,", []int{10}, false},
		{"", nil, true},
		{",", nil, true},
		{"abc", nil, true},
		{"10,abc", nil, true},
		{"0", nil, true},
		{"-5", nil, true},
		{"1.5", nil, true},
	}

	for _, tt := range tests {
		got, err := parseSizes(tt.input)
		if tt.wantErr {
			if !errors.Is(err, bench.ErrInvalidConfig) {
				t.Errorf("parseSizes(%q) error = %v, want ErrInvalidConfig", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSizes(%q) error: %v", tt.input, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("parseSizes(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDetermineSeedCLI(t *testing.T) {
	// CLI flag takes priority
	os.Setenv(seedEnvVar, "99")
	defer os.Unsetenv(seedEnvVar)

	seed, err := determineSeed(7)
	if err != nil {
		t.Fatalf("determineSeed error: %v", err)
	}
	if seed != 7 {
		t.Errorf("determineSeed(7) = %d, want 7", seed)
	}
}

func TestDetermineSeedEnv(t *testing.T) {
	os.Setenv(seedEnvVar, "99")
	defer os.Unsetenv(seedEnvVar)

	seed, err := determineSeed(0)
	if err != nil {
		t.Fatalf("determineSeed error: %v", err)
	}
	if seed != 99 {
		t.Errorf("determineSeed(0) = %d, want 99 from env", seed)
	}
}

func TestDetermineSeedDefault(t *testing.T) {
	os.Unsetenv(seedEnvVar)

	seed, err := determineSeed(0)
	if err != nil {
		t.Fatalf("determineSeed error: %v", err)
	}
	if seed != dataset.DefaultSeed {
		t.Errorf("determineSeed(0) = %d, want %d", seed, dataset.DefaultSeed)
	}
}

func TestDetermineSeedInvalidEnv(t *testing.T) {
	os.Setenv(seedEnvVar, "badvalue")
	defer os.Unsetenv(seedEnvVar)

	_, err := determineSeed(0)
	if !errors.Is(err, bench.ErrInvalidConfig) {
		t.Errorf("determineSeed with bad env = %v, want ErrInvalidConfig", err)
	}
	if err == nil || !strings.Contains(err.Error(), seedEnvVar) {
		t.Errorf("expected %s in error, got: %v", seedEnvVar, err)
	}
}

func TestRunRejectsMalformedSizes(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"--sizes", "10,abc"}, &buf)
	if !errors.Is(err, bench.ErrInvalidConfig) {
		t.Errorf("run with bad sizes = %v, want ErrInvalidConfig", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial report printed on invalid config:\n%s", buf.String())
	}
}

func TestRunRejectsNonPositiveRepeat(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"--sizes", "10", "--repeat", "0"}, &buf)
	if !errors.Is(err, bench.ErrInvalidConfig) {
		t.Errorf("run with --repeat 0 = %v, want ErrInvalidConfig", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial report printed on invalid config:\n%s", buf.String())
	}
}

func TestRunRejectsUnexpectedArguments(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"extra"}, &buf)
	if !errors.Is(err, bench.ErrInvalidConfig) {
		t.Errorf("run with positional arg = %v, want ErrInvalidConfig", err)
	}
}

func TestRunSmallBenchmark(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"--sizes", "50,120", "--ins-max", "100", "--repeat", "1", "--no-scaling"}, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Benchmark: repeat=1, number=1") {
		t.Errorf("missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "—") {
		t.Errorf("expected not-measured marker for n=120 > ins-max:\n%s", out)
	}
	if strings.Contains(out, "Empirical scaling") {
		t.Errorf("--no-scaling did not suppress the scaling report:\n%s", out)
	}
}

func TestRunSizesShorthand(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"-n", "30", "--repeat", "1", "--no-scaling"}, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "30") {
		t.Errorf("expected n=30 rows in output:\n%s", buf.String())
	}
}
