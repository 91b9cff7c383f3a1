package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aTrapDeer/portfolio-backend/internal/auth"
	"github.com/aTrapDeer/portfolio-backend/internal/logging"
)

func TestRevalidator_PostsSignedChange(t *testing.T) {
	signer := auth.NewSigner("revalidation-secret", time.Minute)

	type received struct {
		change Change
		claims *auth.Claims
	}
	seen := make(chan received, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got received
		var err error
		got.claims = &auth.Claims{}
		_, err = jwt.ParseWithClaims(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "), got.claims,
			func(*jwt.Token) (interface{}, error) { return []byte("revalidation-secret"), nil },
			jwt.WithIssuer(auth.TokenIssuer))
		assert.NoError(t, err)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got.change))
		seen <- got
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewRevalidator(srv.URL, signer, srv.Client())
	require.NoError(t, r.Notify(context.Background(), Change{Kind: "projects", ID: 4}))

	got := <-seen
	assert.Equal(t, Change{Kind: "projects", ID: 4}, got.change)
	require.NotNil(t, got.claims)
	assert.Equal(t, "projects", got.claims.Kind)
}

func TestRevalidator_ReportsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	r := NewRevalidator(srv.URL, auth.NewSigner("s", time.Minute), nil)
	err := r.Notify(context.Background(), Change{Kind: "skills"})
	assert.ErrorContains(t, err, "401")
}

type fakeNotifier struct {
	mu      sync.Mutex
	changes []Change
	ctxID   string
	err     error
}

func (f *fakeNotifier) Notify(ctx context.Context, c Change) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes = append(f.changes, c)
	f.ctxID = logging.RequestID(ctx)
	return f.err
}

func TestAsync_RunsInBackground(t *testing.T) {
	for _, fail := range []bool{false, true} {
		next := &fakeNotifier{}
		if fail {
			next.err = errors.New("boom")
		}
		a := NewAsync(next, logging.Nop())
		var wg sync.WaitGroup
		wg.Add(1)
		a.done = wg.Done

		ctx, cancel := context.WithCancel(logging.WithRequestID(context.Background(), "req-9"))
		require.NoError(t, a.Notify(ctx, Change{Kind: "profile", ID: 1}))
		cancel()
		wg.Wait()

		next.mu.Lock()
		assert.Equal(t, []Change{{Kind: "profile", ID: 1}}, next.changes)
		assert.Equal(t, "req-9", next.ctxID)
		next.mu.Unlock()
	}
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Notify(context.Background(), Change{Kind: "x"}))
}
