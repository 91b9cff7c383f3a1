package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aTrapDeer/portfolio-backend/internal/auth"
	"github.com/aTrapDeer/portfolio-backend/internal/logging"
	"github.com/aTrapDeer/portfolio-backend/internal/middleware"
	"github.com/aTrapDeer/portfolio-backend/internal/notify"
	"github.com/aTrapDeer/portfolio-backend/internal/storage"
)

const (
	adminUser     = "admin"
	adminPassword = "admin123"
)

type recordingNotifier struct {
	mu      sync.Mutex
	changes []notify.Change
}

func (n *recordingNotifier) Notify(_ context.Context, c notify.Change) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, c)
	return nil
}

func (n *recordingNotifier) all() []notify.Change {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Change(nil), n.changes...)
}

type testEnv struct {
	t        *testing.T
	srv      *httptest.Server
	client   *http.Client
	store    storage.Storage
	notifier *recordingNotifier
	logs     *observer.ObservedLogs
}

type envOption func(*RouterOptions)

// newTestEnv serves the API over a seeded in-memory store.
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	store := storage.NewMemStorage()
	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	_, err = storage.Seed(context.Background(), store, adminUser, hash)
	require.NoError(t, err)
	return serve(t, store, opts...)
}

func newUnseededEnv(t *testing.T) *testEnv {
	t.Helper()
	return serve(t, storage.NewMemStorage())
}

func serve(t *testing.T, store storage.Storage, opts ...envOption) *testEnv {
	t.Helper()

	sessions := auth.NewSessionManager([]byte("0123456789abcdef0123456789abcdef"), time.Hour, false)
	notifier := &recordingNotifier{}
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewHandler(store, sessions, notifier, logging.NewZapLogger(zap.New(core)))

	var ro RouterOptions
	for _, o := range opts {
		o(&ro)
	}
	srv := httptest.NewServer(middleware.RequestLogger(logging.Nop())(NewRouter(h, ro)))
	t.Cleanup(srv.Close)

	return &testEnv{t: t, srv: srv, client: newClient(t), store: store, notifier: notifier, logs: logs}
}

func newClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

// do sends a request with an optional JSON body and decodes the JSON answer
// into out when out is non-nil.
func (e *testEnv) do(method, path string, body any, out any) int {
	e.t.Helper()
	return e.doWith(e.client, method, path, body, out)
}

func (e *testEnv) doWith(c *http.Client, method, path string, body any, out any) int {
	e.t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(e.t, err)
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rdr)
	require.NoError(e.t, err)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.Do(req)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	assert.Equal(e.t, "application/json", resp.Header.Get("Content-Type"), "%s %s", method, path)
	if out != nil {
		require.NoError(e.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (e *testEnv) login() {
	e.t.Helper()
	status := e.do(http.MethodPost, "/api/auth/login", map[string]string{"username": adminUser, "password": adminPassword}, nil)
	require.Equal(e.t, http.StatusOK, status)
}

type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func validProject(title string) map[string]any {
	return map[string]any{
		"title":        title,
		"description":  "A thing I built",
		"technologies": []string{"Go", "React"},
	}
}
