package sla

import (
	"fmt"
	"time"

	"pulsewatch/pkg/apperror"

	"github.com/google/uuid"
)

// BucketType is the calendar unit used to split a query range.
type BucketType string

const (
	BucketDay   BucketType = "day"
	BucketWeek  BucketType = "week"
	BucketMonth BucketType = "month"
)

func ParseBucketType(s string) (BucketType, error) {
	switch BucketType(s) {
	case BucketDay, BucketWeek, BucketMonth:
		return BucketType(s), nil
	default:
		return "", &apperror.Error{
			Kind:    apperror.InvalidBucketType,
			Op:      "sla.bucket.parse",
			Message: fmt.Sprintf("unrecognized bucket type %q", s),
		}
	}
}

// CheckSample is one recorded health-check observation. Written by the
// monitoring subsystem, read-only here.
type CheckSample struct {
	MonitorID      uuid.UUID
	CheckedAt      time.Time
	ResponseTimeMs *float64 // nil when the check failed
	StatusCode     int32
	Up             bool
	ErrorText      string
}

// DowntimeInterval is a recorded span of unavailability. EndedAt nil means
// the outage is still ongoing.
type DowntimeInterval struct {
	MonitorID    uuid.UUID
	StartedAt    time.Time
	EndedAt      *time.Time
	FailureCount int32
}

// Metrics is the computed SLA result for one (monitor, start, end) query.
// Mean and percentile values are nil when no successful samples exist in the
// range, a zero there would be misleading.
type Metrics struct {
	StartTime               time.Time
	EndTime                 time.Time
	AvailabilityPercent     float64
	MeanResponseTimeMs      *float64
	PercentileResponseTimes map[string]*float64
	FailureCount            int
	TotalDowntimeSeconds    float64
	TotalChecks             int
	SuccessfulChecks        int
}

// TimeSeriesPoint is one chart-ready data point.
type TimeSeriesPoint struct {
	Timestamp time.Time
	Value     *float64
	Label     string
}
