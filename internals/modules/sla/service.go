package sla

import (
	"context"
	"encoding/json"
	"time"

	"pulsewatch/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service computes SLA metrics from recorded checks and downtime intervals.
// It is stateless apart from the cache: every call is a pure function of its
// inputs plus whatever the reader returns, so concurrent calls need no
// coordination here.
type Service struct {
	reader DataReader
	cache  Cache
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewService(reader DataReader, cache Cache, ttl time.Duration, logger *zerolog.Logger) *Service {
	return &Service{
		reader: reader,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// CalculateMetrics computes one Metrics result for [start, end).
//
// Availability derives from explicit downtime intervals, not from the
// success/failure ratio of samples: a long outage with few checks weighs the
// same as one with many. A range with no checks and no intervals is 100%
// available — absence of data is never penalized.
func (s *Service) CalculateMetrics(ctx context.Context, monitorID uuid.UUID, start, end time.Time, percentiles []int) (Metrics, error) {
	const op string = "service.sla.calculate_metrics"

	if !start.Before(end) {
		return Metrics{}, &apperror.Error{
			Kind:    apperror.InvalidRange,
			Op:      op,
			Message: "start must be before end",
		}
	}

	key := CacheKey(monitorID, start, end, "", percentiles)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var m Metrics
		if err := json.Unmarshal(raw, &m); err == nil {
			return m, nil
		}
		// corrupt entry, fall through and recompute
	}

	m, err := s.compute(ctx, monitorID, start, end, percentiles)
	if err != nil {
		return Metrics{}, err
	}

	s.store(ctx, key, m)
	return m, nil
}

// GetBucketedMetrics computes one Metrics per aligned day/week/month bucket,
// in chronological order. Each bucket goes through CalculateMetrics so the
// per-bucket entries cache independently of the combined result.
func (s *Service) GetBucketedMetrics(ctx context.Context, monitorID uuid.UUID, start, end time.Time, bucket BucketType, percentiles []int) ([]Metrics, error) {
	const op string = "service.sla.get_bucketed_metrics"

	if !start.Before(end) {
		return nil, &apperror.Error{
			Kind:    apperror.InvalidRange,
			Op:      op,
			Message: "start must be before end",
		}
	}
	if _, err := ParseBucketType(string(bucket)); err != nil {
		return nil, err
	}

	key := CacheKey(monitorID, start, end, bucket, percentiles)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var ms []Metrics
		if err := json.Unmarshal(raw, &ms); err == nil {
			return ms, nil
		}
	}

	buckets := GenerateBuckets(start, end, bucket)

	results := make([]Metrics, 0, len(buckets))
	for _, b := range buckets {
		m, err := s.CalculateMetrics(ctx, monitorID, b.Start, b.End, percentiles)
		if err != nil {
			return nil, err
		}
		results = append(results, m)
	}

	s.store(ctx, key, results)
	return results, nil
}

// GetTimeSeries renders one scalar metric of the bucketed results as chart
// points. The percentile set is derived from the metric name, no default
// list lives in the engine.
func (s *Service) GetTimeSeries(ctx context.Context, monitorID uuid.UUID, start, end time.Time, bucket BucketType, metricName string) ([]TimeSeriesPoint, error) {
	sel, err := ParseMetricName(metricName)
	if err != nil {
		return nil, err
	}

	metrics, err := s.GetBucketedMetrics(ctx, monitorID, start, end, bucket, sel.Percentiles())
	if err != nil {
		return nil, err
	}

	return BuildSeries(metrics, bucket, sel), nil
}

// ClearCache drops every cached metrics entry, used after bulk data
// corrections upstream.
func (s *Service) ClearCache(ctx context.Context) error {
	const op string = "service.sla.clear_cache"

	if err := s.cache.Clear(ctx); err != nil {
		return apperror.New(apperror.Dependency, op, err)
	}
	s.logger.Info().Msg("metrics cache cleared")
	return nil
}

// compute is the uncached calculation path. A reader failure propagates
// untouched: "could not determine" must never look like "no data, 100%".
func (s *Service) compute(ctx context.Context, monitorID uuid.UUID, start, end time.Time, percentiles []int) (Metrics, error) {

	checks, err := s.reader.ReadChecks(ctx, monitorID, start, end)
	if err != nil {
		return Metrics{}, err
	}
	intervals, err := s.reader.ReadDowntimeIntervals(ctx, monitorID, start, end)
	if err != nil {
		return Metrics{}, err
	}

	totalDowntime := TotalDowntime(intervals, start, end)

	totalSeconds := end.Sub(start).Seconds()
	availability := 100.0
	if totalSeconds > 0 {
		availability = (totalSeconds - totalDowntime) / totalSeconds * 100
	}
	// clamp against clock skew or data anomalies
	if availability < 0 {
		availability = 0
	}
	if availability > 100 {
		availability = 100
	}

	var responseTimes []float64
	successes := 0
	failures := 0
	for i := range checks {
		c := &checks[i]
		if !c.Up {
			failures++
			continue
		}
		successes++
		if c.ResponseTimeMs != nil {
			responseTimes = append(responseTimes, *c.ResponseTimeMs)
		}
	}

	mean, percentileValues := ComputeStats(responseTimes, percentiles)

	return Metrics{
		StartTime:               start,
		EndTime:                 end,
		AvailabilityPercent:     availability,
		MeanResponseTimeMs:      mean,
		PercentileResponseTimes: percentileValues,
		FailureCount:            failures,
		TotalDowntimeSeconds:    totalDowntime,
		TotalChecks:             len(checks),
		SuccessfulChecks:        successes,
	}, nil
}

// store caches v best-effort; a cache write failure never fails the query.
func (s *Service) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to marshal metrics for cache")
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("cache set failed")
	}
}
