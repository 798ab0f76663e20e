package http_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/casadometal/vitrine/internal/gateway/domain"
	gatewayhttp "github.com/casadometal/vitrine/internal/gateway/http"
	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/internal/gateway/store"
	"github.com/casadometal/vitrine/internal/gateway/upstream"
	"github.com/casadometal/vitrine/pkg/cryptox"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/slogx"
)

// fakeAuthUpstream scripts the identity provider.
type fakeAuthUpstream struct {
	loginViewer domain.Viewer
	loginPair   domain.TokenPair
	loginErr    error

	refreshToken string
	refreshErr   error

	viewer    domain.Viewer
	viewerErr error

	refreshCalls int
}

func (f *fakeAuthUpstream) Login(ctx context.Context, username, password string) (domain.Viewer, domain.TokenPair, error) {
	return f.loginViewer, f.loginPair, f.loginErr
}

func (f *fakeAuthUpstream) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	f.refreshCalls++
	return f.refreshToken, f.refreshErr
}

func (f *fakeAuthUpstream) Viewer(ctx context.Context, accessToken string) (domain.Viewer, error) {
	return f.viewer, f.viewerErr
}

// nopStore satisfies store.Store for routes that never touch persistence.
type nopStore struct{}

func (nopStore) DeniedTokens() store.DeniedTokens { return nil }
func (nopStore) ApplyMigrations() error           { return nil }
func (nopStore) Ping(ctx context.Context) error   { return nil }
func (nopStore) Close() error                     { return nil }

func newTestRouter(t *testing.T, up *fakeAuthUpstream) *gatewayhttp.Router {
	t.Helper()

	logger := slogx.New(slogx.Config{Service: "test", Level: "error", Format: "text"})

	r := gatewayhttp.NewRouter("test", nopStore{}, upstream.New("http://wp.test/graphql"), logger)
	r.AuthService = &service.AuthService{Upstream: up}
	r.CatalogService = &service.CatalogService{Upstream: &fakeCatalogUpstream{}}
	r.ContentService = &service.ContentService{Upstream: &fakeContentUpstream{}}
	r.BasicAuth = testBasicAuth(t)
	r.ApplyRoutes()
	return r
}

type fakeCatalogUpstream struct {
	products []domain.Product
	err      error
}

func (f *fakeCatalogUpstream) Products(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalogUpstream) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for i := range f.products {
		if f.products[i].Slug == slug {
			return &f.products[i], f.err
		}
	}
	return nil, f.err
}

func (f *fakeCatalogUpstream) Categories(ctx context.Context) ([]domain.Category, error) {
	return nil, f.err
}

type fakeContentUpstream struct {
	content domain.HomeContent
	err     error
}

func (f *fakeContentUpstream) HomeContent(ctx context.Context) (domain.HomeContent, error) {
	return f.content, f.err
}

func (f *fakeContentUpstream) UpdateHomeContent(ctx context.Context, accessToken string, content domain.HomeContent) error {
	return f.err
}

func testBasicAuth(t *testing.T) httpx.BasicAuthCredentials {
	t.Helper()
	hash, err := cryptox.HashPassword("porta-aberta")
	require.NoError(t, err)
	return httpx.BasicAuthCredentials{Username: "equipe", PasswordHash: hash}
}

// signedToken mints an HS256 token expiring at exp. The guard only peeks at
// the expiry claim, so the signing key is irrelevant.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func findCookie(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set in response", name)
	return nil
}

func hasCookie(cookies []*http.Cookie, name string) bool {
	for _, c := range cookies {
		if c.Name == name {
			return true
		}
	}
	return false
}

func requireCleared(t *testing.T, c *http.Cookie) {
	t.Helper()
	require.True(t, c.MaxAge < 0 || c.Expires.Before(time.Now().Add(-time.Hour)),
		fmt.Sprintf("cookie %s should be expired, got MaxAge=%d Expires=%s", c.Name, c.MaxAge, c.Expires))
	require.Empty(t, c.Value)
}
