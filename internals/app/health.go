package app

import (
	"net/http"

	"pulsewatch/pkg/apperror"
	"pulsewatch/pkg/utils"

	"github.com/go-chi/chi/v5/middleware"
)

type healthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
	Redis  string `json:"redis,omitempty"`
}

// GET /health
func (c *Container) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	resp := healthResponse{Status: "ok", DB: "ok"}
	healthy := true

	if err := c.DB.Ping(ctx); err != nil {
		resp.DB = "unreachable"
		healthy = false
	}

	if c.RedisClient != nil {
		resp.Redis = "ok"
		if err := c.RedisClient.Ping(ctx); err != nil {
			resp.Redis = "unreachable"
			healthy = false
		}
	}

	if !healthy {
		resp.Status = "degraded"
		utils.WriteError(w, http.StatusServiceUnavailable, reqID, apperror.Dependency, "one or more dependencies unreachable")
		return
	}

	utils.WriteJSON(w, http.StatusOK, reqID, "healthy", resp)
}
