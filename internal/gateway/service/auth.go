package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/domain"
	"github.com/casadometal/vitrine/internal/gateway/store"
	"github.com/casadometal/vitrine/internal/gateway/upstream"
	"github.com/casadometal/vitrine/pkg/cryptox"
	"github.com/casadometal/vitrine/pkg/idx"
	"github.com/casadometal/vitrine/pkg/jwtx"
	"github.com/casadometal/vitrine/pkg/slogx"
)

var (
	ErrMissingCredentials = errors.New("missing_credentials")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrRefreshRejected    = errors.New("refresh_rejected")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// AuthUpstream is the slice of the upstream client the auth service needs.
type AuthUpstream interface {
	Login(ctx context.Context, username, password string) (domain.Viewer, domain.TokenPair, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Viewer(ctx context.Context, accessToken string) (domain.Viewer, error)
}

// AuthService orchestrates authentication against the upstream identity
// provider. It holds no session state; validity lives in the JWTs and,
// for revoked refresh tokens, in the denylist.
type AuthService struct {
	Upstream   AuthUpstream
	Denylist   store.DeniedTokens // nil disables revocation checks
	RefreshTTL time.Duration      // fallback denylist TTL when exp is unreadable
}

// Login exchanges credentials for a token pair. Upstream rejection detail is
// logged but never returned; the caller only learns "invalid credentials".
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Viewer, domain.TokenPair, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.Viewer{}, domain.TokenPair{}, ErrMissingCredentials
	}

	viewer, pair, err := s.Upstream.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, upstream.ErrRejected) {
			log.Info("login rejected by upstream", "username", username, "err", err)
			return domain.Viewer{}, domain.TokenPair{}, ErrInvalidCredentials
		}
		log.Error("login upstream call failed", "err", err)
		return domain.Viewer{}, domain.TokenPair{}, err
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		log.Error("upstream login returned incomplete token pair")
		return domain.Viewer{}, domain.TokenPair{}, ErrInvalidCredentials
	}

	return viewer, pair, nil
}

// Refresh exchanges a refresh token for a new access token. The refresh
// token is not rotated. A denylist hit is indistinguishable from an
// upstream rejection to the caller.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := slogx.FromContext(ctx)

	if s.denied(ctx, refreshToken) {
		log.Info("refresh token is on the denylist")
		return "", ErrRefreshRejected
	}

	accessToken, err := s.Upstream.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, upstream.ErrRejected) {
			log.Info("refresh rejected by upstream", "err", err)
			return "", ErrRefreshRejected
		}
		log.Error("refresh upstream call failed", "err", err)
		return "", err
	}
	if accessToken == "" {
		log.Info("upstream returned no access token on refresh")
		return "", ErrRefreshRejected
	}

	return accessToken, nil
}

// Viewer resolves the identity behind an access token. Every failure mode
// collapses to ErrUnauthenticated; refresh is the caller's responsibility.
func (s *AuthService) Viewer(ctx context.Context, accessToken string) (domain.Viewer, error) {
	log := slogx.FromContext(ctx)

	if accessToken == "" {
		return domain.Viewer{}, ErrUnauthenticated
	}

	viewer, err := s.Upstream.Viewer(ctx, accessToken)
	if err != nil {
		log.Info("viewer lookup failed", "err", err)
		return domain.Viewer{}, ErrUnauthenticated
	}
	return viewer, nil
}

// Logout revokes a refresh token by fingerprinting it onto the denylist.
// Best effort and always succeeds: clearing the cookies is what logs the
// browser out, the denylist is defense in depth.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" || s.Denylist == nil {
		return
	}
	log := slogx.FromContext(ctx)

	ttl := s.RefreshTTL
	if ttl <= 0 {
		ttl = domain.RefreshTokenTTL
	}
	if claims, err := jwtx.Peek(refreshToken); err == nil {
		if remaining := claims.RemainingLife(time.Now()); remaining > 0 {
			ttl = remaining
		}
	}

	now := time.Now()
	err := s.Denylist.Deny(ctx, domain.DeniedToken{
		ID:          idx.New().String(),
		Fingerprint: cryptox.FingerprintToken(refreshToken),
		DeniedAt:    now,
		ExpiresAt:   now.Add(ttl),
	})
	if err != nil {
		log.Error("failed to denylist refresh token", "err", err)
	}
}

// denied consults the denylist. Store errors are logged and treated as "not
// denied"; revocation is best effort and must not take logins down with it.
func (s *AuthService) denied(ctx context.Context, refreshToken string) bool {
	if s.Denylist == nil {
		return false
	}

	denied, err := s.Denylist.IsDenied(ctx, cryptox.FingerprintToken(refreshToken), time.Now())
	if err != nil {
		slogx.FromContext(ctx).Error("denylist lookup failed", "err", err)
		return false
	}
	return denied
}
