package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/jwtx"
	"github.com/casadometal/vitrine/pkg/shopsdk"
	"github.com/casadometal/vitrine/pkg/slogx"
)

// Admin surface paths.
const (
	adminPrefix     = "/admin"
	adminAPIPrefix  = "/api/admin/"
	adminLoginPage  = "/admin/login"
	adminHomePage   = "/admin"
	authAPIPrefix   = "/api/auth/"
	publicAPIPrefix = "/api/"
	staticPrefix    = "/static/"
	swaggerPrefix   = "/swagger/"
)

type accessTokenKey struct{}

// AccessTokenFromContext returns the access token the route guard validated
// for this request, or "" outside the admin surface.
func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}

// Guard is the single enforcement point in front of every route. It
// classifies each path as admin page, admin API, or public and applies the
// matching policy. Admin paths need a live access token; the guard checks
// only the expiry claim locally, because the signature was verified by the
// upstream issuer at mint time and every admin operation that matters
// presents the token back to that issuer anyway.
//
// When the access token is expired but a refresh cookie is present, the
// guard refreshes in-process and sets the fresh token cookie on this same
// response, so the browser is repaired on the very request that found the
// stale token.
//
// Public pages sit behind HTTP Basic Auth, the staging gate for a
// storefront that is not publicly launched. Public API routes, static
// assets, the favicon and the health endpoints bypass that gate.
type Guard struct {
	AuthService   *service.AuthService
	BasicAuth     httpx.BasicAuthCredentials
	SecureCookies bool
}

// Middleware wraps a handler with the guard's policy.
func (g *Guard) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			switch {
			case isGuardExempt(path):
				next.ServeHTTP(w, r)

			case path == adminLoginPage:
				g.serveLoginPage(next, w, r)

			case strings.HasPrefix(path, adminAPIPrefix):
				g.serveAdmin(next, w, r, g.unauthenticatedAPI)

			case path == adminPrefix || strings.HasPrefix(path, adminPrefix+"/"):
				g.serveAdmin(next, w, r, g.redirectToLogin)

			case strings.HasPrefix(path, publicAPIPrefix):
				next.ServeHTTP(w, r)

			default:
				httpx.BasicAuth(g.BasicAuth, "vitrine")(next).ServeHTTP(w, r)
			}
		})
	}
}

// isGuardExempt reports paths outside any auth policy: the auth endpoints
// themselves, health probes, static assets, the favicon and the API docs.
func isGuardExempt(path string) bool {
	switch path {
	case "/livez", "/readyz", "/favicon.ico":
		return true
	}
	return strings.HasPrefix(path, authAPIPrefix) ||
		strings.HasPrefix(path, staticPrefix) ||
		strings.HasPrefix(path, swaggerPrefix)
}

// serveAdmin lets the request through with a live access token in the
// context, or hands it to onFail. Fail-closed: any ambiguity lands in the
// unauthenticated branch.
func (g *Guard) serveAdmin(next http.Handler, w http.ResponseWriter, r *http.Request, onFail http.HandlerFunc) {
	token, ok := g.liveAccessToken(w, r)
	if !ok {
		onFail(w, r)
		return
	}

	ctx := context.WithValue(r.Context(), accessTokenKey{}, token)
	next.ServeHTTP(w, r.WithContext(ctx))
}

// serveLoginPage sends an already-authenticated admin straight to the admin
// home instead of showing the login form again. No refresh is attempted
// here: an expired session simply sees the form.
func (g *Guard) serveLoginPage(next http.Handler, w http.ResponseWriter, r *http.Request) {
	if token := cookieValue(r, accessCookieName); token != "" {
		if claims, err := jwtx.Peek(token); err == nil && !claims.Expired(time.Now()) {
			http.Redirect(w, r, adminHomePage, http.StatusSeeOther)
			return
		}
	}
	next.ServeHTTP(w, r)
}

// liveAccessToken returns a non-expired access token for the request,
// refreshing just in time when the cookie is stale. A refresh also sets the
// fresh cookie on this response.
func (g *Guard) liveAccessToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	if token := cookieValue(r, accessCookieName); token != "" {
		claims, err := jwtx.Peek(token)
		if err == nil && !claims.Expired(time.Now()) {
			return token, true
		}
	}

	refreshToken := cookieValue(r, refreshCookieName)
	if refreshToken == "" {
		return "", false
	}

	accessToken, err := g.AuthService.Refresh(r.Context(), refreshToken)
	if err != nil {
		slogx.FromContext(r.Context()).Warn("guard refresh failed", "err", err)
		return "", false
	}

	setAccessCookie(w, accessToken, g.SecureCookies)
	return accessToken, true
}

func (g *Guard) unauthenticatedAPI(w http.ResponseWriter, r *http.Request) {
	shopsdk.ErrUnauthenticated.WriteError(w)
}

// redirectToLogin clears both cookies on the way out so the next request
// starts from a clean jar.
func (g *Guard) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	clearAuthCookies(w, g.SecureCookies)
	http.Redirect(w, r, adminLoginPage, http.StatusSeeOther)
}
