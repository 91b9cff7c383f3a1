package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/patrickmn/go-cache"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

const (
	CookieName = "portfolio_session"
	sidKey     = "sid"
)

// Session is the server-side state behind a session cookie.
type Session struct {
	ID        string    `json:"-"`
	UserID    int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"-"`
}

// SessionManager keeps session state in memory and hands the browser only a
// signed cookie holding an opaque id.
type SessionManager struct {
	store *sessions.CookieStore
	state *cache.Cache
	ttl   time.Duration
}

func NewSessionManager(secret []byte, ttl time.Duration, secure bool) *SessionManager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(int(ttl.Seconds()))

	return &SessionManager{
		store: store,
		state: cache.New(ttl, ttl/2),
		ttl:   ttl,
	}
}

// Login starts a fresh session for u and writes its cookie. Any session the
// request already carried is dropped first.
func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, u models.User) (*Session, error) {
	cookie, _ := m.store.Get(r, CookieName)
	if old, ok := cookie.Values[sidKey].(string); ok {
		m.state.Delete(old)
	}

	s := &Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		CreatedAt: time.Now().UTC(),
	}
	m.state.Set(s.ID, *s, m.ttl)

	cookie.Values = map[interface{}]interface{}{sidKey: s.ID}
	cookie.Options.MaxAge = int(m.ttl.Seconds())
	if err := cookie.Save(r, w); err != nil {
		m.state.Delete(s.ID)
		return nil, err
	}
	return s, nil
}

// Current returns the session the request's cookie points at. A cookie that
// fails verification or whose state expired yields false.
func (m *SessionManager) Current(r *http.Request) (*Session, bool) {
	cookie, err := m.store.Get(r, CookieName)
	if err != nil || cookie.IsNew {
		return nil, false
	}
	sid, ok := cookie.Values[sidKey].(string)
	if !ok {
		return nil, false
	}
	v, found := m.state.Get(sid)
	if !found {
		return nil, false
	}
	s := v.(Session)
	return &s, true
}

// Destroy forgets the request's session and expires its cookie. Calling it
// without a session is fine.
func (m *SessionManager) Destroy(w http.ResponseWriter, r *http.Request) error {
	cookie, err := m.store.Get(r, CookieName)
	if err == nil {
		if sid, ok := cookie.Values[sidKey].(string); ok {
			m.state.Delete(sid)
		}
	}
	cookie.Values = map[interface{}]interface{}{}
	cookie.Options.MaxAge = -1
	return cookie.Save(r, w)
}

// Count reports how many sessions are live.
func (m *SessionManager) Count() int {
	return m.state.ItemCount()
}

type sessionCtxKey struct{}

// NewContext returns ctx carrying s. RequireSession stores the session this way
// for the handlers behind it.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// FromContext returns the session stored by NewContext.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return s, ok && s != nil
}
