package sla

import (
	"fmt"
	"math"
	"sort"
)

// PercentileLabel formats a percentile integer as its map key, e.g. 95 -> "p95".
func PercentileLabel(p int) string {
	return fmt.Sprintf("p%d", p)
}

// ComputeStats returns the arithmetic mean and nearest-rank percentile values
// for the given response-time samples (milliseconds).
//
// Nearest-rank: sort ascending, index = ceil(p/100 * N) - 1 clamped to
// [0, N-1]. Deterministic, so bucketed and unbucketed queries agree. An empty
// sample set yields a nil mean and nil percentile values.
func ComputeStats(samples []float64, percentiles []int) (*float64, map[string]*float64) {
	out := make(map[string]*float64, len(percentiles))

	if len(samples) == 0 {
		for _, p := range percentiles {
			out[PercentileLabel(p)] = nil
		}
		return nil, out
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	var sum float64
	for _, s := range sorted {
		sum += s
	}
	mean := sum / float64(len(sorted))

	for _, p := range percentiles {
		idx := int(math.Ceil(float64(p)/100*float64(len(sorted)))) - 1
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		v := sorted[idx]
		out[PercentileLabel(p)] = &v
	}

	return &mean, out
}
