package sla

import (
	"testing"
	"time"
)

func TestGenerateBuckets_DayAligned(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	buckets := GenerateBuckets(start, end, BucketDay)
	if len(buckets) != 3 {
		t.Fatalf("want 3 day buckets, got %d", len(buckets))
	}
	for i, b := range buckets {
		wantStart := start.AddDate(0, 0, i)
		if !b.Start.Equal(wantStart) || !b.End.Equal(wantStart.AddDate(0, 0, 1)) {
			t.Fatalf("bucket %d: got [%v, %v)", i, b.Start, b.End)
		}
	}
}

func TestGenerateBuckets_MidDayStartClipsFirstBucket(t *testing.T) {
	start := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	buckets := GenerateBuckets(start, end, BucketDay)
	if len(buckets) != 2 {
		t.Fatalf("want 2 buckets, got %d", len(buckets))
	}
	// first bucket must start at the query start, never before it
	if !buckets[0].Start.Equal(start) {
		t.Fatalf("first bucket start: want %v, got %v", start, buckets[0].Start)
	}
	if !buckets[0].End.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("first bucket end: got %v", buckets[0].End)
	}
}

func TestGenerateBuckets_MidDayEndClipsLastBucket(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC)

	buckets := GenerateBuckets(start, end, BucketDay)
	if len(buckets) != 2 {
		t.Fatalf("want 2 buckets, got %d", len(buckets))
	}
	last := buckets[len(buckets)-1]
	if !last.End.Equal(end) {
		t.Fatalf("last bucket end: want %v, got %v", end, last.End)
	}
}

func TestGenerateBuckets_WeekAlignsToMonday(t *testing.T) {
	// 2024-01-10 is a Wednesday; the containing ISO week starts Monday 2024-01-08
	start := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC)

	buckets := GenerateBuckets(start, end, BucketWeek)
	if len(buckets) != 2 {
		t.Fatalf("want 2 week buckets, got %d", len(buckets))
	}
	if !buckets[0].Start.Equal(start) {
		t.Fatalf("first bucket clipped start: want %v, got %v", start, buckets[0].Start)
	}
	if !buckets[0].End.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("first week should end Monday 2024-01-15, got %v", buckets[0].End)
	}
	if !buckets[1].Start.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("second week should start Monday 2024-01-15, got %v", buckets[1].Start)
	}
}

func TestGenerateBuckets_MonthBoundaries(t *testing.T) {
	start := time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	buckets := GenerateBuckets(start, end, BucketMonth)
	if len(buckets) != 3 {
		t.Fatalf("want 3 month buckets (Nov, Dec, Jan), got %d", len(buckets))
	}
	if !buckets[0].Start.Equal(start) {
		t.Fatalf("first month bucket clipped to query start, got %v", buckets[0].Start)
	}
	if !buckets[1].Start.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("second bucket should start Dec 1, got %v", buckets[1].Start)
	}
	// year rollover
	if !buckets[2].Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("third bucket should start Jan 1 2024, got %v", buckets[2].Start)
	}
}

func TestGenerateBuckets_EmptyRange(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := GenerateBuckets(at, at, BucketDay); got != nil {
		t.Fatalf("want nil for empty range, got %v", got)
	}
}

func TestBucketLabel(t *testing.T) {
	at := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC) // Monday of ISO week 3

	if got := BucketLabel(at, BucketDay); got != "2024-01-15" {
		t.Fatalf("day label: got %s", got)
	}
	if got := BucketLabel(at, BucketWeek); got != "2024-W03" {
		t.Fatalf("week label: got %s", got)
	}
	if got := BucketLabel(at, BucketMonth); got != "2024-01" {
		t.Fatalf("month label: got %s", got)
	}
}

func TestParseBucketType(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		if _, err := ParseBucketType(valid); err != nil {
			t.Fatalf("ParseBucketType(%q): %v", valid, err)
		}
	}
	if _, err := ParseBucketType("hour"); err == nil {
		t.Fatalf("expected error for unrecognized bucket type")
	}
}
