package monitor

import (
	"net/http"
	"strconv"

	"pulsewatch/pkg/apperror"
	"pulsewatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GET /monitors/{monitorID}
func (h *Handler) GetMonitor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	monitorID, err := uuid.Parse(chi.URLParam(r, "monitorID"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "invalid monitor id")
		return
	}

	m, err := h.service.GetMonitor(ctx, monitorID)
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, reqID, "monitor retrieved", toMonitorResponse(m))
}

// GET /monitors?offset=0&limit=50
func (h *Handler) ListMonitors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	limit := parseInt32(r.URL.Query().Get("limit"), 50)
	offset := parseInt32(r.URL.Query().Get("offset"), 0)

	monitors, err := h.service.ListMonitors(ctx, limit, offset)
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	resp := ListMonitorsResponse{
		Limit:    limit,
		Offset:   offset,
		Monitors: make([]GetMonitorResponse, 0, len(monitors)),
	}
	for _, m := range monitors {
		resp.Monitors = append(resp.Monitors, toMonitorResponse(m))
	}

	utils.WriteJSON(w, http.StatusOK, reqID, "monitors retrieved", resp)
}

func toMonitorResponse(m Monitor) GetMonitorResponse {
	return GetMonitorResponse{
		ID:               m.ID.String(),
		Name:             m.Name,
		Url:              m.Url,
		CheckIntervalSec: m.CheckIntervalSec,
		CreatedAt:        m.CreatedAt,
	}
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
