package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() *Config {
	return &Config{
		Port:         "0",
		GinMode:      gin.TestMode,
		TemplatesDir: "templates",
		Store:        StoreConfig{Driver: "sqlite", SQLitePath: ":memory:"},
		Admin:        AdminConfig{Username: "admin", Password: "s3cret", SessionSecret: "test-secret"},
		RateLimit:    RateLimitConfig{Enabled: false, PerMinute: 5, Burst: 3},
	}
}

// recordingStore wraps a real store and captures contact writes.
type recordingStore struct {
	siteStore
	mu    sync.Mutex
	calls []ContactRecord
	err   error
}

func (r *recordingStore) CreateContact(ctx context.Context, rec *ContactRecord) error {
	r.mu.Lock()
	r.calls = append(r.calls, *rec)
	r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	return r.siteStore.CreateContact(ctx, rec)
}

func (r *recordingStore) Calls() []ContactRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ContactRecord(nil), r.calls...)
}

func newTestServer(t *testing.T, cfg *Config) (*server, *recordingStore) {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	store := &recordingStore{siteStore: openTestStore(t)}
	s, err := newServer(cfg, store)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(s.wait)
	return s, store
}

func doRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("DNT", "1")
	return req
}

func validContactValues() url.Values {
	return url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"subject": {"Project Inquiry"},
		"message": {"Hello there, let's talk."},
	}
}
