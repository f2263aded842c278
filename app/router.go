package app

import (
	"context"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const healthCheckTimeout = 3 * time.Second

type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// newHTTPRouter returns the root mux and the /api sub-router the modules
// mount their routes on. Metrics are served here unless a separate metrics
// listener is configured.
func (app *App) newHTTPRouter() (*chi.Mux, chi.Router) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httpx.CorrelationMiddleware)

	r.Get("/healthz", app.healthz)
	if app.Config.Observability.MetricsAddress == "" {
		r.Handle("/metrics", app.metricsHandler())
	}

	limiter := httpx.NewIPRateLimiter(rate.Limit(app.Config.HTTP.RateLimit), app.Config.HTTP.RateBurst)

	api := chi.NewRouter()
	api.Use(httpx.CORSMiddleware(app.Config.HTTP.AllowedOrigins))
	api.Use(httpx.RateLimitMiddleware(limiter))
	r.Mount("/api", api)

	return r, api
}

func (app *App) metricsHandler() http.Handler {
	return promhttp.HandlerFor(app.Observability.Registry, promhttp.HandlerOpts{})
}

// healthz reports 503 when any dependency check fails.
func (app *App) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]func(context.Context) error{
		"database": func(ctx context.Context) error { return app.DB.PingContext(ctx) },
		"eventbus": func(context.Context) error { return app.EventBus.Healthy() },
	}
	if app.Modules.Match != nil && app.Modules.Match.Queue != nil {
		checks["queue"] = app.Modules.Match.Queue.HealthCheck
	}

	report := healthReport{Status: "ok", Checks: make(map[string]string, len(checks))}
	status := http.StatusOK
	for name, check := range checks {
		if err := check(ctx); err != nil {
			app.logger.WarnContext(ctx, "Health check failed", attr.String("check", name), attr.Error(err))
			report.Checks[name] = err.Error()
			report.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		report.Checks[name] = "ok"
	}
	httpx.WriteJSON(w, status, report)
}
