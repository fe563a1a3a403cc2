package sla

import (
	"fmt"
	"strconv"
	"strings"

	"pulsewatch/pkg/apperror"
)

// MetricSelector is a resolved time-series metric name: "availability",
// "mean", or a percentile label such as "p95".
type MetricSelector struct {
	Name       string
	Percentile int // 0 unless Name is a percentile label
}

// Percentiles returns the percentile set the selector needs from the
// calculator. Only percentile metrics need one; no default list is baked in.
func (m MetricSelector) Percentiles() []int {
	if m.Percentile > 0 {
		return []int{m.Percentile}
	}
	return nil
}

func ParseMetricName(name string) (MetricSelector, error) {
	switch name {
	case "availability", "mean":
		return MetricSelector{Name: name}, nil
	}

	if rest, ok := strings.CutPrefix(name, "p"); ok {
		if p, err := strconv.Atoi(rest); err == nil && p >= 1 && p <= 99 {
			return MetricSelector{Name: name, Percentile: p}, nil
		}
	}

	return MetricSelector{}, &apperror.Error{
		Kind:    apperror.UnknownMetric,
		Op:      "sla.series.parse_metric",
		Message: fmt.Sprintf("unknown metric %q", name),
	}
}

// BuildSeries maps bucketed metrics onto chart points for one metric, in the
// same chronological order as the input.
func BuildSeries(metrics []Metrics, bucket BucketType, sel MetricSelector) []TimeSeriesPoint {
	points := make([]TimeSeriesPoint, 0, len(metrics))

	for i := range metrics {
		m := &metrics[i]

		var v *float64
		switch sel.Name {
		case "availability":
			av := m.AvailabilityPercent
			v = &av
		case "mean":
			v = m.MeanResponseTimeMs
		default:
			v = m.PercentileResponseTimes[sel.Name]
		}

		points = append(points, TimeSeriesPoint{
			Timestamp: m.StartTime,
			Value:     v,
			Label:     BucketLabel(m.StartTime, bucket),
		})
	}
	return points
}
