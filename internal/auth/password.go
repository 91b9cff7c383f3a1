// Package auth covers admin credentials, browser sessions and the signed
// tokens sent to the frontend.
package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

// HashPassword returns a bcrypt hash for the provided plaintext.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// VerifyCredentials reports whether password belongs to u. A nil user is
// still run through bcrypt so unknown usernames take as long as wrong passwords.
func VerifyCredentials(u *models.User, password string) bool {
	if u == nil {
		dummyOnce.Do(func() {
			dummyHash, _ = HashPassword("not-a-real-password")
		})
		_ = CheckPassword(dummyHash, password)
		return false
	}
	return CheckPassword(u.Password, password) == nil
}
