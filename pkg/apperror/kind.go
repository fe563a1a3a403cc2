package apperror

type Kind string

var (
	// --- Generic ---
	InvalidInput   Kind = "invalid_input"
	NotFound       Kind = "not_found"
	RequestTimeout Kind = "request_timeout"
	Internal       Kind = "internal"
	Dependency     Kind = "dependency_failure"
	DatabaseErr    Kind = "database_error"

	// --- SLA analytics ---
	InvalidRange      Kind = "invalid_range"
	InvalidBucketType Kind = "invalid_bucket_type"
	UnknownMetric     Kind = "unknown_metric"
)
