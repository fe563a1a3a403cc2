package sla

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"pulsewatch/pkg/apperror"
	"pulsewatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// defaultPercentiles is the API-layer default; the engine itself takes an
// explicit set per call.
var defaultPercentiles = []int{50, 75, 90, 95, 99}

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service, validator *validator.Validate) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
	}
}

// GET /sla/{monitorID}/metrics?start=...&end=...&percentiles=50,95
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	monitorID, q, ok := h.parseQuery(w, r, reqID)
	if !ok {
		return
	}

	m, err := h.service.CalculateMetrics(ctx, monitorID, q.Start, q.End, q.Percentiles)
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, reqID, "metrics calculated", toMetricsResponse(m))
}

// GET /sla/{monitorID}/buckets?start=...&end=...&bucket=day&percentiles=50,95
func (h *Handler) GetBucketedMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	monitorID, q, ok := h.parseQuery(w, r, reqID)
	if !ok {
		return
	}

	bucket, err := ParseBucketType(r.URL.Query().Get("bucket"))
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	ms, err := h.service.GetBucketedMetrics(ctx, monitorID, q.Start, q.End, bucket, q.Percentiles)
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	resp := BucketedMetricsResponse{
		Bucket:  string(bucket),
		Metrics: make([]MetricsResponse, 0, len(ms)),
	}
	for _, m := range ms {
		resp.Metrics = append(resp.Metrics, toMetricsResponse(m))
	}

	utils.WriteJSON(w, http.StatusOK, reqID, "bucketed metrics calculated", resp)
}

// GET /sla/{monitorID}/series?start=...&end=...&bucket=day&metric=p95
func (h *Handler) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	monitorID, q, ok := h.parseQuery(w, r, reqID)
	if !ok {
		return
	}

	bucket, err := ParseBucketType(r.URL.Query().Get("bucket"))
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "availability"
	}

	points, err := h.service.GetTimeSeries(ctx, monitorID, q.Start, q.End, bucket, metric)
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	resp := TimeSeriesResponse{
		Bucket: string(bucket),
		Metric: metric,
		Points: make([]TimeSeriesPointResponse, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, TimeSeriesPointResponse{
			Timestamp: p.Timestamp,
			Value:     p.Value,
			Label:     p.Label,
		})
	}

	utils.WriteJSON(w, http.StatusOK, reqID, "time series built", resp)
}

// DELETE /sla/cache
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	if err := h.service.ClearCache(ctx); err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	utils.WriteJSON[any](w, http.StatusOK, reqID, "cache cleared", nil)
}

// parseQuery pulls monitorID, start, end and percentiles out of the request.
// Writes the error response itself and returns ok=false on bad input.
func (h *Handler) parseQuery(w http.ResponseWriter, r *http.Request, reqID string) (uuid.UUID, MetricsQuery, bool) {
	monitorID, err := uuid.Parse(chi.URLParam(r, "monitorID"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "invalid monitor id")
		return uuid.UUID{}, MetricsQuery{}, false
	}

	query := r.URL.Query()

	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "start must be RFC3339")
		return uuid.UUID{}, MetricsQuery{}, false
	}
	end, err := time.Parse(time.RFC3339, query.Get("end"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "end must be RFC3339")
		return uuid.UUID{}, MetricsQuery{}, false
	}

	percentiles := defaultPercentiles
	if raw := query.Get("percentiles"); raw != "" {
		percentiles = nil
		for _, part := range strings.Split(raw, ",") {
			p, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "percentiles must be integers")
				return uuid.UUID{}, MetricsQuery{}, false
			}
			percentiles = append(percentiles, p)
		}
	}

	q := MetricsQuery{
		Start:       start,
		End:         end,
		Percentiles: percentiles,
	}
	if err := h.validator.Struct(q); err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "invalid query parameters")
		return uuid.UUID{}, MetricsQuery{}, false
	}

	return monitorID, q, true
}
