package sla

import (
	"testing"
)

func TestComputeStats_MeanAndMedian(t *testing.T) {
	samples := []float64{100, 150, 200, 250, 300}

	mean, pcts := ComputeStats(samples, []int{50})

	if mean == nil || *mean != 200 {
		t.Fatalf("want mean 200, got %v", mean)
	}
	// nearest-rank: ceil(0.5*5)-1 = 2 -> 200
	if v := pcts["p50"]; v == nil || *v != 200 {
		t.Fatalf("want p50 200, got %v", v)
	}
}

func TestComputeStats_UnsortedInput(t *testing.T) {
	samples := []float64{300, 100, 250, 150, 200}

	mean, pcts := ComputeStats(samples, []int{50, 99})
	if mean == nil || *mean != 200 {
		t.Fatalf("want mean 200, got %v", mean)
	}
	if v := pcts["p50"]; v == nil || *v != 200 {
		t.Fatalf("want p50 200, got %v", v)
	}
	if v := pcts["p99"]; v == nil || *v != 300 {
		t.Fatalf("want p99 300, got %v", v)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	mean, pcts := ComputeStats(nil, []int{50, 95})

	if mean != nil {
		t.Fatalf("want nil mean for empty samples, got %v", *mean)
	}
	if len(pcts) != 2 {
		t.Fatalf("want entries for every requested percentile, got %d", len(pcts))
	}
	if pcts["p50"] != nil || pcts["p95"] != nil {
		t.Fatalf("want nil percentile values for empty samples")
	}
}

func TestComputeStats_SingleSample(t *testing.T) {
	mean, pcts := ComputeStats([]float64{42}, []int{1, 50, 99})

	if mean == nil || *mean != 42 {
		t.Fatalf("want mean 42, got %v", mean)
	}
	for _, label := range []string{"p1", "p50", "p99"} {
		if v := pcts[label]; v == nil || *v != 42 {
			t.Fatalf("want %s=42, got %v", label, v)
		}
	}
}

func TestComputeStats_PercentilesNonDecreasing(t *testing.T) {
	samples := []float64{12, 7, 90, 45, 3, 61, 33, 28, 70, 55}
	requested := []int{1, 10, 25, 50, 75, 90, 95, 99}

	_, pcts := ComputeStats(samples, requested)

	prev := -1.0
	for _, p := range requested {
		v := pcts[PercentileLabel(p)]
		if v == nil {
			t.Fatalf("missing percentile %d", p)
		}
		if *v < prev {
			t.Fatalf("percentile %d value %v decreased below %v", p, *v, prev)
		}
		prev = *v
	}
}

func TestPercentileLabel(t *testing.T) {
	if got := PercentileLabel(95); got != "p95" {
		t.Fatalf("want p95, got %s", got)
	}
}
