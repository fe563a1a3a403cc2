package sla

import "time"

type MetricsQuery struct {
	Start       time.Time `validate:"required"`
	End         time.Time `validate:"required,gtfield=Start"`
	Percentiles []int     `validate:"dive,gte=1,lte=99"`
}

type MetricsResponse struct {
	StartTime               time.Time           `json:"start_time"`
	EndTime                 time.Time           `json:"end_time"`
	AvailabilityPercent     float64             `json:"availability_percent"`
	MeanResponseTimeMs      *float64            `json:"mean_response_time_ms"`
	PercentileResponseTimes map[string]*float64 `json:"percentile_response_times"`
	FailureCount            int                 `json:"failure_count"`
	TotalDowntimeSeconds    float64             `json:"total_downtime_seconds"`
	TotalChecks             int                 `json:"total_checks"`
	SuccessfulChecks        int                 `json:"successful_checks"`
}

type BucketedMetricsResponse struct {
	Bucket  string            `json:"bucket"`
	Metrics []MetricsResponse `json:"metrics"`
}

type TimeSeriesPointResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Value     *float64  `json:"value"`
	Label     string    `json:"label"`
}

type TimeSeriesResponse struct {
	Bucket string                    `json:"bucket"`
	Metric string                    `json:"metric"`
	Points []TimeSeriesPointResponse `json:"points"`
}

func toMetricsResponse(m Metrics) MetricsResponse {
	return MetricsResponse{
		StartTime:               m.StartTime,
		EndTime:                 m.EndTime,
		AvailabilityPercent:     m.AvailabilityPercent,
		MeanResponseTimeMs:      m.MeanResponseTimeMs,
		PercentileResponseTimes: m.PercentileResponseTimes,
		FailureCount:            m.FailureCount,
		TotalDowntimeSeconds:    m.TotalDowntimeSeconds,
		TotalChecks:             m.TotalChecks,
		SuccessfulChecks:        m.SuccessfulChecks,
	}
}
