package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/leonf08/building-metrics.git/internal/observability"
	"github.com/leonf08/building-metrics.git/internal/server/http/middleware"
	"github.com/leonf08/building-metrics.git/internal/services"
	"github.com/rs/zerolog"
)

// MetricsPath is where Prometheus metrics of the server are exposed.
const MetricsPath = "/debug/metrics"

// Options configure the router.
type Options struct {
	// Prefix is a path all API routes are mounted under, e.g. /api
	Prefix string

	// CORSOrigins are origins allowed to call the API from a browser
	CORSOrigins []string

	// RateLimit is a maximum number of requests per second, 0 disables the limit
	RateLimit int
}

// NewRouter creates a new router and adds middleware.
// Nil ip and m disable the trusted subnet check and instrumentation.
func NewRouter(
	svc services.MetricsQuerier,
	ip services.IPChecker,
	m *observability.HTTPMetrics,
	opts Options,
	l zerolog.Logger,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chiMw.Recoverer, middleware.Logging(l))

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Use(middleware.IPCheck(ip), middleware.RateLimit(opts.RateLimit))

	if m != nil {
		r.Use(middleware.Instrument(m))
	}

	r.Use(middleware.Compress, middleware.ETag)

	if m != nil {
		r.Method(http.MethodGet, MetricsPath, m.Handler())
	}

	prefix := "/" + strings.Trim(opts.Prefix, "/")
	if prefix == "/" {
		newHandler(r, svc, l)
	} else {
		r.Route(prefix, func(r chi.Router) {
			newHandler(r, svc, l)
		})
	}

	return r
}
