package handlers

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vyper/fermybot/internal/config"
	"github.com/vyper/fermybot/internal/logging"
)

// Routed paths. Matching is exact and ignores method and query string.
const (
	PathSpyderbat = "/slack/spyderbat"
	PathIncr      = "/slack/incr"
	PathDebug     = "/debug"
)

// NotFoundText is the body returned for unknown paths
const NotFoundText = "nope"

const routeNotFound = "not_found"

// NewRouter wires the slash command handlers to their paths
func NewRouter(cfg *config.Config) http.Handler {
	r := mux.NewRouter().SkipClean(true)
	r.Use(requestLogger(cfg), instrument(cfg))

	r.HandleFunc(PathSpyderbat, func(w http.ResponseWriter, req *http.Request) {
		HandleSpyderbat(w, req, cfg)
	}).Name("spyderbat")
	r.HandleFunc(PathIncr, func(w http.ResponseWriter, req *http.Request) {
		HandleIncr(w, req, cfg)
	}).Name("incr")
	r.HandleFunc(PathDebug, func(w http.ResponseWriter, req *http.Request) {
		HandleDebug(w, req, cfg)
	}).Name("debug")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		WriteText(w, http.StatusNotFound, NotFoundText)
		cfg.Metrics.RequestHandled(routeNotFound, http.StatusNotFound, time.Since(start))
	})

	return r
}

// requestLogger attaches a logger tagged with a fresh request ID
func requestLogger(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			base := cfg.Logger
			if base == nil {
				base = zap.NewNop()
			}
			logger := base.With(
				zap.String("request_id", uuid.NewString()),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path))
			next.ServeHTTP(w, r.WithContext(logging.WithContext(r.Context(), logger)))
		})
	}
}

// instrument records status and latency for matched routes
func instrument(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := "unknown"
			if current := mux.CurrentRoute(r); current != nil {
				route = current.GetName()
			}

			m := httpsnoop.CaptureMetrics(next, w, r)
			cfg.Metrics.RequestHandled(route, m.Code, m.Duration)

			logging.FromContext(r.Context(), cfg.Logger).Debug("Request handled",
				zap.String("route", route),
				zap.Int("status", m.Code),
				zap.Duration("duration", m.Duration))
		})
	}
}
