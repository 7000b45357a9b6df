package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestScalingForProducesRatios(t *testing.T) {
	r := testRunner(t, DefaultConfig())

	points, err := r.scalingFor(context.Background(), algorithms[1], []int{200, 400, 800})
	if err != nil {
		t.Fatalf("scalingFor: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("scalingFor returned %d points, want 3", len(points))
	}

	if points[0].Ratio != 0 {
		t.Errorf("first point Ratio = %v, want 0", points[0].Ratio)
	}
	for i, p := range points {
		if p.PerCall <= 0 {
			t.Errorf("point %d PerCall = %v, want > 0", i, p.PerCall)
		}
		if i > 0 && p.Ratio <= 0 {
			t.Errorf("point %d Ratio = %v, want > 0", i, p.Ratio)
		}
	}
}

func TestScalingForCanceledContext(t *testing.T) {
	r := testRunner(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.scalingFor(ctx, algorithms[1], []int{200}); err == nil {
		t.Error("scalingFor on canceled context returned nil error")
	}
}

func TestRunScalingOutput(t *testing.T) {
	r := testRunner(t, DefaultConfig())

	var buf bytes.Buffer
	if err := r.RunScaling(context.Background(), &buf); err != nil {
		t.Fatalf("RunScaling: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Empirical scaling on random data") {
		t.Errorf("missing scaling header in output:\n%s", out)
	}
	for _, name := range []string{"Insertion:", "Merge:", "Baseline:"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing %q section in output:\n%s", name, out)
		}
	}
	// Every progression prints a ratio from its second size onward:
	// 3 algorithms x (4 sizes - 1).
	if got := strings.Count(out, "(x"); got != 9 {
		t.Errorf("found %d ratio annotations, want 9:\n%s", got, out)
	}
}
