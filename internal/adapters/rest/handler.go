package rest

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/findbgm/internal/core/services"
)

// Handler manages the HTTP interface for the recommendation service.
type Handler struct {
	svc    *services.Orchestrator
	router *http.ServeMux
	log    *logrus.Logger
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator, log *logrus.Logger) *Handler {
	h := &Handler{
		svc:    svc,
		router: http.NewServeMux(),
		log:    log,
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface, wrapping the router with
// request-ID and logging middleware.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.withRequestID(h.withLogging(h.router)).ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)
	h.router.HandleFunc("POST /api/recommendations", h.Recommend)
	h.router.HandleFunc("POST /api/analyze", h.Analyze)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "findbgm"})
}
