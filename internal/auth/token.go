// Package auth resolves the calling identity for every request.
//
// Identities are stable user IDs carried in signed bearer tokens. The
// package only answers "who is calling", authorization decisions are
// made by the controllers.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNoToken      = errors.New("you need to sign in first")
	ErrInvalidToken = errors.New("your session is invalid or expired, please sign in again")
)

// tokenLifetime is how long an issued token stays valid.
const tokenLifetime = 24 * time.Hour

func secret() []byte {
	s, ok := os.LookupEnv("TOKEN_SECRET")
	if !ok {
		// Development fallback. Deployments set TOKEN_SECRET.
		s = "dailyledger-dev-secret"
	}

	return []byte(s)
}

// NewToken issues a signed token for the user ID.
func NewToken(userID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ParseToken verifies a token and returns the user ID it was issued for.
func ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
