package domain

import "time"

// DeniedToken records a refresh token that logout revoked before its natural
// expiry. Only the SHA-256 fingerprint is kept; rows become garbage once
// ExpiresAt passes, since the token would no longer verify upstream anyway.
type DeniedToken struct {
	ID          string
	Fingerprint string
	DeniedAt    time.Time
	ExpiresAt   time.Time
}
