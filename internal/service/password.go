// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword reports whether the plaintext matches the bcrypt hash.
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}
