package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nidx/internal/platform/metrics"
	"nidx/internal/platform/middleware"
)

// RouterConfig carries the transport-level knobs the router needs.
type RouterConfig struct {
	RequestTimeout time.Duration
	AdminTokenHash string
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(
	h *Handler,
	validator middleware.TokenValidator,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientInfo)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.ContentTypeJSON)
	r.Use(latency(m))

	r.Get("/healthz", h.HandleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/countries", h.HandleCountries)
		r.Post("/decode", h.HandleDecode)
		r.Post("/validate", h.HandleValidate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(validator, logger))
			r.Post("/validate/batch", h.HandleValidateBatch)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(cfg.AdminTokenHash, logger))
		r.Post("/admin/tokens", h.HandleIssueToken)
	})

	return r
}

// latency observes per-endpoint request duration using the chi route
// pattern, so path parameters don't explode label cardinality.
func latency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = r.URL.Path
			}
			m.EndpointLatency.WithLabelValues(pattern).Observe(time.Since(start).Seconds())
		})
	}
}
