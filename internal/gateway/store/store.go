// Package store defines the data access interface for the gateway's only
// persistent state: the refresh-token denylist. Everything else this service
// touches lives upstream.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface, implemented by concrete drivers.
type Store interface {
	DeniedTokens() DeniedTokens

	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// DeniedTokens is the refresh-token denylist.
type DeniedTokens interface {
	// Deny records a fingerprint. Re-denying the same fingerprint is a
	// no-op so logout stays idempotent.
	Deny(ctx context.Context, t domain.DeniedToken) error

	// IsDenied reports whether the fingerprint is on the denylist and not
	// yet past its expiry at the given instant.
	IsDenied(ctx context.Context, fingerprint string, now time.Time) (bool, error)

	// DeleteExpired purges rows whose expiry has passed, returning how many
	// were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
