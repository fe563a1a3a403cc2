package sla

import (
	"sort"
	"time"
)

// TotalDowntime clips the given intervals against [qStart, qEnd) and returns
// the downtime seconds attributable to that range.
//
// An ongoing interval (EndedAt nil) is charged up to qEnd, never beyond it.
// Clipped sub-intervals are merged before summing so overlapping or duplicate
// writer rows never double-count a region. A malformed interval (end before
// start) clips to zero length and contributes nothing. The result is always
// within [0, qEnd - qStart].
func TotalDowntime(intervals []DowntimeInterval, qStart, qEnd time.Time) float64 {
	if !qEnd.After(qStart) {
		return 0
	}

	type span struct {
		start, end time.Time
	}

	spans := make([]span, 0, len(intervals))
	for _, iv := range intervals {
		end := qEnd
		if iv.EndedAt != nil && iv.EndedAt.Before(qEnd) {
			end = *iv.EndedAt
		}
		start := iv.StartedAt
		if start.Before(qStart) {
			start = qStart
		}
		if !end.After(start) {
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].start.Before(spans[j].start)
	})

	var total float64
	for i := 0; i < len(spans); {
		merged := spans[i]
		j := i + 1
		for ; j < len(spans) && !spans[j].start.After(merged.end); j++ {
			if spans[j].end.After(merged.end) {
				merged.end = spans[j].end
			}
		}
		total += merged.end.Sub(merged.start).Seconds()
		i = j
	}

	if limit := qEnd.Sub(qStart).Seconds(); total > limit {
		total = limit
	}
	return total
}
