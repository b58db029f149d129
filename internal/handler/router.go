package handler

import (
	"net/http"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/metrics"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RouterDeps bundles what NewRouter mounts. Only Activities is required.
type RouterDeps struct {
	Activities *ActivityHandler

	// Root serves GET /. Static is mounted under /static/.
	Root   http.HandlerFunc
	Static http.Handler

	Recorder       *metrics.Recorder
	MetricsHandler http.Handler

	Log        *zap.Logger
	CORSOrigin string
}

// NewRouter builds the chi router with the global middleware stack.
func NewRouter(d RouterDeps) chi.Router {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	origin := d.CORSOrigin
	if origin == "" {
		origin = "*"
	}

	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(log))
	r.Use(CORS(origin))
	r.Use(Metrics(d.Recorder))

	r.Get("/health", HealthCheck)
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", d.Activities.ListActivities)
		r.Post("/{activity}/signup", d.Activities.Signup)
		r.Delete("/{activity}/signup", d.Activities.Unregister)
	})

	if d.Root != nil {
		r.Get("/", d.Root)
	}
	if d.Static != nil {
		r.Handle("/static/*", d.Static)
	}

	return r
}
