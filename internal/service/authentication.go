// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"time"

	"taskdesk/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// Claims is the JWT payload. Subject carries the username.
type Claims struct {
	UserID int    `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Username returns the subject claim.
func (c *Claims) Username() string { return c.Subject }

// AuthenticateUser checks the plaintext password against the stored hash.
// The error never says which part was wrong.
func AuthenticateUser(user model.User, password string) error {
	if err := ComparePassword(user.HashedPassword, password); err != nil {
		return errors.New("incorrect username or password")
	}
	return nil
}

// IssueAccessToken signs a token for the user with the given HMAC algorithm
// and TTL. Claims: sub=username, id, role, exp.
func IssueAccessToken(user model.User, secret, algorithm string, ttl time.Duration) (string, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return "", fmt.Errorf("unsupported signing algorithm: %q", algorithm)
	}

	now := timeNow()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken validates signature and expiry and requires the subject
// and user id claims to be present.
func VerifyAccessToken(tokenString, secret string) (*Claims, error) {
	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, fmt.Errorf("token missing required claims")
	}

	return claims, nil
}
