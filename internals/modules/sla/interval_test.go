package sla

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// ---- shared helpers ----

func ts(hour, min int) time.Time {
	return time.Date(2024, 1, 1, hour, min, 0, 0, time.UTC)
}

func iv(start time.Time, end *time.Time) DowntimeInterval {
	return DowntimeInterval{
		MonitorID: uuid.Nil,
		StartedAt: start,
		EndedAt:   end,
	}
}

func tp(t time.Time) *time.Time { return &t }

func fp(v float64) *float64 { return &v }

// ---- tests ----

func TestTotalDowntime_NoIntervals(t *testing.T) {
	got := TotalDowntime(nil, ts(0, 0), ts(24, 0))
	if got != 0 {
		t.Fatalf("want 0, got %v", got)
	}
}

func TestTotalDowntime_FullyInside(t *testing.T) {
	intervals := []DowntimeInterval{
		iv(ts(6, 0), tp(ts(8, 0))),
		iv(ts(10, 0), tp(ts(10, 30))),
	}
	got := TotalDowntime(intervals, ts(0, 0), ts(24, 0))
	want := 2*3600 + 30*60.0
	if got != want {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestTotalDowntime_ClipsAtQueryBoundaries(t *testing.T) {
	// 2023-12-31T22:00 -> 2024-01-01T02:00 against a 2024-01-01 day query
	start := time.Date(2023, 12, 31, 22, 0, 0, 0, time.UTC)
	intervals := []DowntimeInterval{iv(start, tp(ts(2, 0)))}

	got := TotalDowntime(intervals, ts(0, 0), ts(24, 0))
	if got != 7200 {
		t.Fatalf("want 7200s clipped downtime, got %v", got)
	}
}

func TestTotalDowntime_OngoingChargedToQueryEnd(t *testing.T) {
	// open interval from 20:00 against a [00:00, next midnight) query -> 4h
	intervals := []DowntimeInterval{iv(ts(20, 0), nil)}

	got := TotalDowntime(intervals, ts(0, 0), ts(24, 0))
	if got != 4*3600 {
		t.Fatalf("want 14400, got %v", got)
	}
}

func TestTotalDowntime_OutsideRangeContributesZero(t *testing.T) {
	intervals := []DowntimeInterval{
		iv(ts(0, 0).Add(-5*time.Hour), tp(ts(0, 0).Add(-1*time.Hour))), // before
		iv(ts(24, 0).Add(time.Hour), tp(ts(24, 0).Add(2*time.Hour))),   // after
	}
	if got := TotalDowntime(intervals, ts(0, 0), ts(24, 0)); got != 0 {
		t.Fatalf("want 0, got %v", got)
	}
}

func TestTotalDowntime_OverlapsNeverDoubleCount(t *testing.T) {
	intervals := []DowntimeInterval{
		iv(ts(6, 0), tp(ts(9, 0))),
		iv(ts(8, 0), tp(ts(10, 0))), // overlaps previous by an hour
		iv(ts(6, 0), tp(ts(9, 0))),  // exact duplicate
		iv(ts(10, 0), tp(ts(11, 0))), // touches, merges
	}
	got := TotalDowntime(intervals, ts(0, 0), ts(24, 0))
	want := 5 * 3600.0 // merged [06:00, 11:00)
	if got != want {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestTotalDowntime_NeverExceedsRange(t *testing.T) {
	intervals := []DowntimeInterval{
		iv(ts(0, 0).Add(-10*time.Hour), nil),
		iv(ts(1, 0), nil),
	}
	got := TotalDowntime(intervals, ts(0, 0), ts(24, 0))
	if got != 24*3600 {
		t.Fatalf("want full range 86400, got %v", got)
	}
}

func TestTotalDowntime_MalformedIntervalIsZero(t *testing.T) {
	// end before start is writer-side corruption, tolerated as zero-length
	intervals := []DowntimeInterval{iv(ts(8, 0), tp(ts(6, 0)))}
	if got := TotalDowntime(intervals, ts(0, 0), ts(24, 0)); got != 0 {
		t.Fatalf("want 0 for malformed interval, got %v", got)
	}
}

func TestTotalDowntime_EmptyQueryRange(t *testing.T) {
	intervals := []DowntimeInterval{iv(ts(1, 0), tp(ts(2, 0)))}
	if got := TotalDowntime(intervals, ts(5, 0), ts(5, 0)); got != 0 {
		t.Fatalf("want 0 for empty range, got %v", got)
	}
}
