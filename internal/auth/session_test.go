package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func withCookies(r *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func login(t *testing.T, m *SessionManager, u models.User) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	_, err := m.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil), u)
	require.NoError(t, err)
	return rec
}

func TestSessionLoginAndCurrent(t *testing.T) {
	m := NewSessionManager(testSecret, time.Hour, false)

	_, ok := m.Current(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)

	rec := login(t, m, models.User{ID: 7, Username: "admin"})
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	s, ok := m.Current(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	require.True(t, ok)
	assert.Equal(t, 7, s.UserID)
	assert.Equal(t, "admin", s.Username)
	assert.Equal(t, 1, m.Count())
}

func TestSessionDestroy(t *testing.T) {
	m := NewSessionManager(testSecret, time.Hour, false)
	rec := login(t, m, models.User{ID: 1, Username: "admin"})

	out := httptest.NewRecorder()
	require.NoError(t, m.Destroy(out, withCookies(httptest.NewRequest(http.MethodPost, "/", nil), rec)))

	expired := out.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Less(t, expired[0].MaxAge, 0)

	// the old cookie no longer maps to server state
	_, ok := m.Current(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())
}

func TestSessionDestroyWithoutCookie(t *testing.T) {
	m := NewSessionManager(testSecret, time.Hour, false)
	assert.NoError(t, m.Destroy(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil)))
}

func TestSessionRejectsForeignCookie(t *testing.T) {
	m := NewSessionManager(testSecret, time.Hour, false)
	other := NewSessionManager([]byte("ffffffffffffffffffffffffffffffff"), time.Hour, false)

	rec := login(t, other, models.User{ID: 1, Username: "admin"})
	_, ok := m.Current(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.False(t, ok)
}

func TestSessionLoginRotatesID(t *testing.T) {
	m := NewSessionManager(testSecret, time.Hour, false)
	first := login(t, m, models.User{ID: 1, Username: "admin"})

	second := httptest.NewRecorder()
	req := withCookies(httptest.NewRequest(http.MethodPost, "/api/auth/login", nil), first)
	_, err := m.Login(second, req, models.User{ID: 1, Username: "admin"})
	require.NoError(t, err)

	_, ok := m.Current(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), first))
	assert.False(t, ok, "previous session is dropped")
	_, ok = m.Current(withCookies(httptest.NewRequest(http.MethodGet, "/", nil), second))
	assert.True(t, ok)
	assert.Equal(t, 1, m.Count())
}

func TestSessionContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := FromContext(req.Context())
	assert.False(t, ok)

	ctx := NewContext(req.Context(), &Session{UserID: 3})
	s, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, 3, s.UserID)
}
