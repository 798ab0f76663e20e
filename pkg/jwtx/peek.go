// Package jwtx reads claims out of JWTs minted by the upstream identity
// provider. This service never signs tokens and never holds the issuer's
// keys, so there is no Signer here, only an unverified peek.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed reports a token that could not be decoded at all.
	ErrMalformed = errors.New("jwtx: malformed token")
	// ErrNoExpiry reports a decodable token carrying no exp claim.
	ErrNoExpiry = errors.New("jwtx: token has no exp claim")
)

// PeekedClaims is the subset of claims readable without the issuer's key.
type PeekedClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Peek decodes a JWT payload WITHOUT verifying its signature and returns the
// subject and expiry. The signature was checked by the upstream issuer at
// mint time; the result is only safe for fast-path expiry decisions. Any
// security-sensitive decision must still present the token upstream.
func Peek(token string) (PeekedClaims, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return PeekedClaims{}, ErrMalformed
	}
	if claims.ExpiresAt == nil {
		return PeekedClaims{}, ErrNoExpiry
	}
	return PeekedClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Expired reports whether the peeked expiry has passed at the given instant.
func (c PeekedClaims) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// RemainingLife returns how long until expiry, clamped at zero.
func (c PeekedClaims) RemainingLife(now time.Time) time.Duration {
	d := c.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
