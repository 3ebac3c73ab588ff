// Package auth resolves a request's bearer credentials to a user id.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Authenticator resolves a request to the acting user.
type Authenticator interface {
	// UserID returns the authenticated user's id, or "" when the request
	// carries no valid credentials.
	UserID(r *http.Request) string
}

// JWTAuthenticator verifies HMAC-signed bearer tokens and reads the user id
// from the subject claim.
type JWTAuthenticator struct {
	secret []byte
}

func NewJWT(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(secret)}
}

func (a *JWTAuthenticator) UserID(r *http.Request) string {
	raw := bearerToken(r)
	if raw == "" {
		return ""
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	return claims.Subject
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}
