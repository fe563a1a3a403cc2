package sla

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DataReader is the engine's only view of the persistence layer. Both queries
// are half-open on [start, end): checks by checked_at, intervals by overlap.
type DataReader interface {
	ReadChecks(ctx context.Context, monitorID uuid.UUID, start, end time.Time) ([]CheckSample, error)
	ReadDowntimeIntervals(ctx context.Context, monitorID uuid.UUID, start, end time.Time) ([]DowntimeInterval, error)
}
