// Package auth inspects bearer tokens on the client side.
//
// The shell never verifies signatures - that is the backend's job. It only
// needs to know whether a cached token is already past its expiry so it can
// skip a profile refresh that is guaranteed to fail.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether the raw bearer token carries a JWT exp claim that
// has passed. Opaque or malformed tokens report false: the client cannot
// judge them, so the backend gets to decide.
func Expired(raw string, now time.Time) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(trimmed, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
