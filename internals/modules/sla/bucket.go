package sla

import (
	"fmt"
	"time"
)

// Bucket is one calendar-aligned sub-range of a query, half-open [Start, End).
type Bucket struct {
	Start time.Time
	End   time.Time
}

// GenerateBuckets splits [start, end) into calendar-aligned sub-ranges.
//
// Day buckets align to UTC midnight, week buckets to the Monday on/before the
// range start (ISO week), month buckets to the first of the month. The first
// and last bucket are clipped to the query range, so a query beginning
// mid-day yields a shorter first bucket, never one reaching before start.
func GenerateBuckets(start, end time.Time, bucket BucketType) []Bucket {
	start = start.UTC()
	end = end.UTC()
	if !start.Before(end) {
		return nil
	}

	cur := alignBucketStart(start, bucket)

	var out []Bucket
	for cur.Before(end) {
		next := advanceBucket(cur, bucket)

		bStart := cur
		if bStart.Before(start) {
			bStart = start
		}
		bEnd := next
		if bEnd.After(end) {
			bEnd = end
		}
		if bEnd.After(bStart) {
			out = append(out, Bucket{Start: bStart, End: bEnd})
		}

		cur = next
	}
	return out
}

func alignBucketStart(t time.Time, bucket BucketType) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	switch bucket {
	case BucketWeek:
		// Monday on/before t; Go weekdays start at Sunday==0
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case BucketMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// advanceBucket assumes cur is already aligned, so AddDate never drifts.
func advanceBucket(cur time.Time, bucket BucketType) time.Time {
	switch bucket {
	case BucketWeek:
		return cur.AddDate(0, 0, 7)
	case BucketMonth:
		return cur.AddDate(0, 1, 0)
	default:
		return cur.AddDate(0, 0, 1)
	}
}

// BucketLabel renders a bucket start as a stable, human-readable chart label:
// "2024-01-15" for day, "2024-W03" for week, "2024-01" for month.
func BucketLabel(t time.Time, bucket BucketType) string {
	t = t.UTC()
	switch bucket {
	case BucketWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case BucketMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}
