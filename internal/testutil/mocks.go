package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"alumnirabatt/internal/models"
	"alumnirabatt/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level   string
	Type    providers.TypeEnum
	Message string
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Message: fmt.Sprintf(format, args...)})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu             sync.Mutex
	UpstreamCalls  map[string]int
	UpstreamErrors map[string]int
	LogoRenders    int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		UpstreamCalls:  make(map[string]int),
		UpstreamErrors: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) ObserveUpstreamDuration(provider string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamCalls[provider]++
}
func (m *MockMetrics) IncUpstreamErrors(provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamErrors[provider]++
}
func (m *MockMetrics) ObserveLogoRender(_ bool, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LogoRenders++
}

// MockCache implements providers.CacheProviderInterface on a plain map.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
	TTLs map[string]time.Duration
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte), TTLs: make(map[string]time.Duration)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
	m.TTLs[key] = ttl
}

// MockStukSearcher implements upstream.StudentkortetSearcher.
type MockStukSearcher struct {
	mu       sync.Mutex
	Response *models.StukResponse
	Err      error
	Queries  []string
	// Started, when set, is closed by the first call.
	Started chan struct{}
	// Release, when set, blocks every call until it is closed.
	Release chan struct{}
}

func (m *MockStukSearcher) Search(ctx context.Context, query string) (*models.StukResponse, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	if m.Started != nil {
		close(m.Started)
		m.Started = nil
	}
	m.mu.Unlock()
	if err := wait(ctx, m.Release); err != nil {
		return nil, err
	}
	return m.Response, m.Err
}

func (m *MockStukSearcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}

// MockMecenatSearcher implements upstream.MecenatSearcher.
type MockMecenatSearcher struct {
	mu       sync.Mutex
	Response *models.MecenatResponse
	Err      error
	Queries  []string
	Started  chan struct{}
	Release  chan struct{}
}

func (m *MockMecenatSearcher) Search(ctx context.Context, query string) (*models.MecenatResponse, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	if m.Started != nil {
		close(m.Started)
		m.Started = nil
	}
	m.mu.Unlock()
	if err := wait(ctx, m.Release); err != nil {
		return nil, err
	}
	return m.Response, m.Err
}

func (m *MockMecenatSearcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}

// MockImageFetcher implements upstream.ImageFetcher.
type MockImageFetcher struct {
	mu      sync.Mutex
	Data    []byte
	Err     error
	Sources []string
	Release chan struct{}
}

func (m *MockImageFetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	m.mu.Lock()
	m.Sources = append(m.Sources, src)
	m.mu.Unlock()
	if err := wait(ctx, m.Release); err != nil {
		return nil, err
	}
	return m.Data, m.Err
}

func (m *MockImageFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sources)
}

func wait(ctx context.Context, release chan struct{}) error {
	if release == nil {
		return nil
	}
	select {
	case <-release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
