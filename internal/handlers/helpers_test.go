package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vyper/fermybot/internal/config"
	"github.com/vyper/fermybot/internal/metrics"
)

// stubCounter records every key it is asked to increment
type stubCounter struct {
	mu      sync.Mutex
	keys    []string
	results []int64
	err     error
}

func (s *stubCounter) Incr(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	if s.err != nil {
		return 0, s.err
	}
	if len(s.results) == 0 {
		return int64(len(s.keys)), nil
	}
	n := s.results[0]
	s.results = s.results[1:]
	return n, nil
}

func (s *stubCounter) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

// createTestConfig creates a test configuration with an observable logger
func createTestConfig(counter config.Counter) (*config.Config, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &config.Config{
		RedisURL: "redis://localhost:6379/0",
		LogLevel: "debug",
		Counter:  counter,
		Logger:   zap.New(core),
		Metrics:  metrics.New(),
	}, logs
}

// serve sends one request through the router
func serve(cfg *config.Config, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	NewRouter(cfg).ServeHTTP(w, req)
	return w
}

// failingReader errors on the first read
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func newFailingBodyRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Body = io.NopCloser(failingReader{})
	return req
}
