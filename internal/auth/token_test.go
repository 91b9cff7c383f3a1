package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseClaims checks a token the way the frontend's revalidation route does.
func parseClaims(token, secret string, now func() time.Time) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(TokenIssuer), jwt.WithTimeFunc(now))
	return claims, err
}

func TestSigner_Sign(t *testing.T) {
	s := NewSigner("revalidation-secret", time.Minute)

	token, err := s.Sign("projects")
	require.NoError(t, err)

	claims, err := parseClaims(token, "revalidation-secret", time.Now)
	require.NoError(t, err)
	assert.Equal(t, "projects", claims.Kind)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestSigner_OtherSecretDoesNotVerify(t *testing.T) {
	token, err := NewSigner("one", time.Minute).Sign("skills")
	require.NoError(t, err)

	_, err = parseClaims(token, "two", time.Now)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestSigner_TokensExpire(t *testing.T) {
	s := NewSigner("secret", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := s.Sign("profile")
	require.NoError(t, err)

	_, err = parseClaims(token, "secret", time.Now)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSigner_EmptySecret(t *testing.T) {
	_, err := NewSigner("", time.Minute).Sign("x")
	assert.Error(t, err)
}
