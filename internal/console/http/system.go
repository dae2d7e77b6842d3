package http

import (
	"net/http"
	"time"

	"github.com/vyaapaarai/console/pkg/httpx"
	"github.com/vyaapaarai/console/pkg/slogx"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /livez", r.handleLivez)
	r.Mux.HandleFunc("GET /readyz", r.handleReadyz)
}

// handleLivez reports process liveness.
func (r *Router) handleLivez(w http.ResponseWriter, req *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: r.buildVersion,
		Uptime:  time.Since(r.startTime).Round(time.Second).String(),
	})
}

// handleReadyz reports readiness, which requires the demo catalog to answer.
func (r *Router) handleReadyz(w http.ResponseWriter, req *http.Request) {
	if err := r.store.Ping(req.Context()); err != nil {
		slogx.FromContext(req.Context()).Error("readiness check failed", "error", err)
		httpx.WriteError(w, http.StatusServiceUnavailable, "not_ready", "Catalog store unavailable.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: r.buildVersion,
		Uptime:  time.Since(r.startTime).Round(time.Second).String(),
	})
}
