package handlers

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRouter_NotFound(t *testing.T) {
	paths := []string{
		"/",
		"/slack",
		"/slack/incr/",
		"/slack//incr",
		"/SLACK/INCR",
		"/slack/spyderbat/extra",
		"/debug/",
		"/metrics",
	}

	for _, path := range paths {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
			t.Run(method+" "+path, func(t *testing.T) {
				counter := &stubCounter{}
				cfg, _ := createTestConfig(counter)

				w := serve(cfg, method, path, "text=foo")

				assert.Equal(t, http.StatusNotFound, w.Code)
				assert.Equal(t, NotFoundText, w.Body.String())
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
				assert.Zero(t, counter.calls())
				assert.Equal(t, 1.0, testutil.ToFloat64(cfg.Metrics.RequestCounter.WithLabelValues("not_found", "404")))
			})
		}
	}
}

func TestRouter_IgnoresMethodAndQuery(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"spyderbat GET", http.MethodGet, PathSpyderbat, "", http.StatusOK},
		{"spyderbat PUT with query", http.MethodPut, PathSpyderbat + "?x=1", "", http.StatusOK},
		{"incr GET with body", http.MethodGet, PathIncr, "text=foo", http.StatusOK},
		{"incr POST with query", http.MethodPost, PathIncr + "?text=ignored", "text=foo", http.StatusOK},
		{"debug PATCH", http.MethodPatch, PathDebug, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := createTestConfig(&stubCounter{})
			w := serve(cfg, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRouter_RecordsRouteMetrics(t *testing.T) {
	cfg, _ := createTestConfig(&stubCounter{})

	serve(cfg, http.MethodPost, PathSpyderbat, "")
	serve(cfg, http.MethodPost, PathIncr, "text=foo")
	serve(cfg, http.MethodPost, PathIncr, "")
	serve(cfg, http.MethodPost, PathDebug, "")

	assert.Equal(t, 1.0, testutil.ToFloat64(cfg.Metrics.RequestCounter.WithLabelValues("spyderbat", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(cfg.Metrics.RequestCounter.WithLabelValues("incr", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(cfg.Metrics.RequestCounter.WithLabelValues("incr", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(cfg.Metrics.RequestCounter.WithLabelValues("debug", "200")))
}

func TestRouter_TagsLogsWithRequestID(t *testing.T) {
	cfg, logs := createTestConfig(&stubCounter{})

	serve(cfg, http.MethodPost, PathIncr, "text=foo")
	serve(cfg, http.MethodPost, PathIncr, "text=foo")

	entries := logs.FilterMessage("Counter incremented").All()
	if assert.Len(t, entries, 2) {
		first := entries[0].ContextMap()["request_id"]
		second := entries[1].ContextMap()["request_id"]
		assert.NotEmpty(t, first)
		assert.NotEqual(t, first, second)
		assert.Equal(t, PathIncr, entries[0].ContextMap()["path"])
	}
}
