package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/vyper/fermybot/internal/config"
)

// mockCounter records Incr calls and replays scripted results
type mockCounter struct {
	mu      sync.Mutex
	keys    []string
	results []int64
	err     error
}

func (m *mockCounter) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	if m.err != nil {
		return 0, m.err
	}
	if len(m.results) == 0 {
		return int64(len(m.keys)), nil
	}
	n := m.results[0]
	m.results = m.results[1:]
	return n, nil
}

func testConfig(counter config.Counter) *config.Config {
	return &config.Config{
		RedisURL: "redis://localhost:6379/0",
		LogLevel: "info",
		Counter:  counter,
		Logger:   zap.NewNop(),
	}
}
