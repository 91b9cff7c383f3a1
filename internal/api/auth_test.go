package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	e := newTestEnv(t)

	var out struct {
		User struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	status := e.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin123"}, &out)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin", out.User.Username)
	assert.Positive(t, out.User.ID)

	status = e.do(http.MethodGet, "/api/auth/me", nil, &out)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin", out.User.Username)
}

func TestLoginFailures(t *testing.T) {
	e := newTestEnv(t)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"wrong password", map[string]string{"username": "admin", "password": "nope"}, http.StatusUnauthorized},
		{"unknown user", map[string]string{"username": "root", "password": "admin123"}, http.StatusUnauthorized},
		{"missing fields", map[string]string{}, http.StatusBadRequest},
		{"not json", "username=admin", http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out errorResponse
			assert.Equal(t, tc.status, e.do(http.MethodPost, "/api/auth/login", tc.body, &out))
			assert.NotEmpty(t, out.Message)
		})
	}

	var out errorResponse
	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/auth/me", nil, &out))
	assert.Equal(t, "Not authenticated", out.Message)
}

func TestLogout(t *testing.T) {
	e := newTestEnv(t)
	e.login()

	var out errorResponse
	require.Equal(t, http.StatusOK, e.do(http.MethodPost, "/api/auth/logout", nil, &out))
	assert.Equal(t, "Logged out", out.Message)

	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/auth/me", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/messages", nil, nil))

	// logging out twice is harmless
	assert.Equal(t, http.StatusOK, e.do(http.MethodPost, "/api/auth/logout", nil, nil))
}

func TestAdminRoutesRequireSession(t *testing.T) {
	e := newTestEnv(t)

	routes := []struct{ method, path string }{
		{http.MethodPut, "/api/profile/1"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/projects/1"},
		{http.MethodDelete, "/api/projects/1"},
		{http.MethodPost, "/api/skills"},
		{http.MethodPut, "/api/skills/1"},
		{http.MethodDelete, "/api/skills/1"},
		{http.MethodPost, "/api/experiences"},
		{http.MethodPut, "/api/experiences/1"},
		{http.MethodDelete, "/api/experiences/1"},
		{http.MethodGet, "/api/messages"},
		{http.MethodGet, "/api/messages/1"},
		{http.MethodGet, "/api/messages/unread-count"},
		{http.MethodPut, "/api/messages/1/read"},
		{http.MethodDelete, "/api/messages/1"},
		{http.MethodGet, "/api/admin/stats"},
	}
	for _, rt := range routes {
		var out errorResponse
		assert.Equal(t, http.StatusUnauthorized, e.do(rt.method, rt.path, "{}", &out), "%s %s", rt.method, rt.path)
		assert.Equal(t, "Unauthorized", out.Message)
	}
}

func TestAdminWritesLogActingUser(t *testing.T) {
	e := newTestEnv(t)
	e.login()

	admin, ok, err := e.store.GetUserByUsername(context.Background(), adminUser)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/projects", validProject("Audited"), nil))

	entries := e.logs.FilterMessage("content changed").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(admin.ID), fields["user_id"])
	assert.Equal(t, adminUser, fields["username"])
	assert.Equal(t, "projects", fields["kind"])
}
