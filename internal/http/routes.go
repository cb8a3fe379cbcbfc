package httpx

import (
	"database/sql"
	"net/http"

	"github.com/byeyali/airang-ssam-sub001/internal/core"
	"github.com/byeyali/airang-ssam-sub001/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Listing  *service.ListingService
	Jobs     *service.JobService
	Sessions core.SessionStore
	DB       *sql.DB
}

// NewRouter creates and configures the HTTP router. All /api routes sit
// behind session authentication; /healthz is open. Logging and recovery
// middleware are applied by the caller.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	healthHandlers := &HealthHandlers{DB: services.DB}
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandlers.Healthz))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandlers.Healthz))

	jobHandlers := &JobHandlers{Listing: services.Listing, Jobs: services.Jobs}

	api := http.NewServeMux()
	registerJobRoutes(api, jobHandlers)
	mux.Handle("/api/", RequireAuth(services.Sessions)(api))

	return mux
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers) {
	mux.HandleFunc("GET /api/jobs", h.ListJobs)
	mux.HandleFunc("POST /api/jobs", h.CreateJob)
	mux.HandleFunc("GET /api/jobs/{id}", h.GetJob)
	mux.HandleFunc("POST /api/jobs/{id}/cancel", h.CancelJob)
	mux.HandleFunc("POST /api/jobs/{id}/transition", h.TransitionJob)
}
