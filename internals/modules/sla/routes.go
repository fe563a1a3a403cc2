package sla

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{monitorID}/metrics", h.GetMetrics)
	r.Get("/{monitorID}/buckets", h.GetBucketedMetrics)
	r.Get("/{monitorID}/series", h.GetTimeSeries)
	r.Delete("/cache", h.ClearCache)

	return r
}

/*
- GET: /sla/{monitorID}/metrics?start={}&end={}&percentiles={}
	body : nil
	resp : MetricsResponse

- GET: /sla/{monitorID}/buckets?start={}&end={}&bucket={day|week|month}&percentiles={}
	body : nil
	resp : BucketedMetricsResponse, one entry per aligned bucket

- GET: /sla/{monitorID}/series?start={}&end={}&bucket={day|week|month}&metric={availability|mean|pNN}
	body : nil
	resp : TimeSeriesResponse

- DELETE: /sla/cache -> drop all cached metrics (after bulk data corrections)
	body : nil
	resp : ok / error
*/
