package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cr3t-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cr3t-password", hash)

	assert.NoError(t, CheckPassword(hash, "s3cr3t-password"))
	assert.Error(t, CheckPassword(hash, "wrong"))
}

func TestVerifyCredentials(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	u := &models.User{ID: 1, Username: "admin", Password: hash}

	assert.True(t, VerifyCredentials(u, "admin123"))
	assert.False(t, VerifyCredentials(u, "admin1234"))
	assert.False(t, VerifyCredentials(nil, "admin123"))
}
