package monitor

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListMonitors)
	r.Get("/{monitorID}", h.GetMonitor)

	return r
}

/*
- GET: /monitors?offset={}&limit={}  -> list monitors
	body : nil
	resp : ListMonitorsResponse

- GET: /monitors/{monitorID} -> get one monitor
	body : nil
	resp : GetMonitorResponse
*/
