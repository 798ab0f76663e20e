package http_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/upstream"
	"github.com/stretchr/testify/require"
)

func adminGet(t *testing.T, router http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGuardAdminPageWithoutTokenRedirects(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	rec := adminGet(t, router, "/admin")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	requireCleared(t, findCookie(t, cookies, "token"))
	requireCleared(t, findCookie(t, cookies, "refreshToken"))
}

func TestGuardExpiredTokenNoRefreshRedirects(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})
	expired := signedToken(t, time.Now().Add(-time.Minute))

	rec := adminGet(t, router, "/admin",
		&http.Cookie{Name: "token", Value: expired},
	)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestGuardExpiredTokenWithRefreshProceeds(t *testing.T) {
	up := &fakeAuthUpstream{refreshToken: "access-novo"}
	router := newTestRouter(t, up)
	expired := signedToken(t, time.Now().Add(-time.Minute))

	rec := adminGet(t, router, "/admin",
		&http.Cookie{Name: "token", Value: expired},
		&http.Cookie{Name: "refreshToken", Value: "refresh-valido"},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, up.refreshCalls)

	// The repaired cookie rides on this very response.
	access := findCookie(t, rec.Result().Cookies(), "token")
	require.Equal(t, "access-novo", access.Value)
}

func TestGuardAbsentTokenWithRefreshProceeds(t *testing.T) {
	// Browsers drop the access cookie the moment its five-minute MaxAge
	// lapses, so a returning admin usually arrives with only the refresh
	// cookie. The guard repairs that the same way it repairs a stale token.
	up := &fakeAuthUpstream{refreshToken: "access-novo"}
	router := newTestRouter(t, up)

	rec := adminGet(t, router, "/admin",
		&http.Cookie{Name: "refreshToken", Value: "refresh-valido"},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, up.refreshCalls)
	require.Equal(t, "access-novo", findCookie(t, rec.Result().Cookies(), "token").Value)
}

func TestGuardExpiredTokenRejectedRefreshRedirects(t *testing.T) {
	up := &fakeAuthUpstream{refreshErr: fmt.Errorf("%w: expired", upstream.ErrRejected)}
	router := newTestRouter(t, up)
	expired := signedToken(t, time.Now().Add(-time.Minute))

	rec := adminGet(t, router, "/admin",
		&http.Cookie{Name: "token", Value: expired},
		&http.Cookie{Name: "refreshToken", Value: "refresh-velho"},
	)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestGuardValidTokenProceeds(t *testing.T) {
	up := &fakeAuthUpstream{}
	router := newTestRouter(t, up)
	valid := signedToken(t, time.Now().Add(3*time.Minute))

	rec := adminGet(t, router, "/admin",
		&http.Cookie{Name: "token", Value: valid},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Zero(t, up.refreshCalls, "a live token needs no refresh")
}

func TestGuardMalformedTokenIsTreatedAsAbsent(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	rec := adminGet(t, router, "/admin",
		&http.Cookie{Name: "token", Value: "nao-e-um-jwt"},
	)

	require.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestGuardAdminAPIWithoutTokenIs401JSON(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	rec := adminGet(t, router, "/api/admin/home")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestGuardAdminAPIWithExpiredTokenRefreshesInProcess(t *testing.T) {
	up := &fakeAuthUpstream{refreshToken: "access-novo"}
	router := newTestRouter(t, up)
	expired := signedToken(t, time.Now().Add(-time.Minute))

	rec := adminGet(t, router, "/api/admin/home",
		&http.Cookie{Name: "token", Value: expired},
		&http.Cookie{Name: "refreshToken", Value: "refresh-valido"},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	access := findCookie(t, rec.Result().Cookies(), "token")
	require.Equal(t, "access-novo", access.Value)
}

func TestGuardLoginPageRedirectsAuthenticatedAdmin(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})
	valid := signedToken(t, time.Now().Add(3*time.Minute))

	rec := adminGet(t, router, "/admin/login",
		&http.Cookie{Name: "token", Value: valid},
	)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestGuardLoginPageShowsFormWhenExpired(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})
	expired := signedToken(t, time.Now().Add(-time.Minute))

	rec := adminGet(t, router, "/admin/login",
		&http.Cookie{Name: "token", Value: expired},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "login-form")
}

func TestGuardPublicPageRequiresBasicAuth(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	t.Run("missing credentials are challenged", func(t *testing.T) {
		rec := adminGet(t, router, "/")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
	})

	t.Run("valid credentials pass", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetBasicAuth("equipe", "porta-aberta")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		// The gate passed; the mux has no page at / so a 404 is the
		// expected outcome.
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGuardPublicAPIBypassesBasicAuth(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	rec := adminGet(t, router, "/api/products")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestGuardHealthEndpointsAreExempt(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	for _, path := range []string{"/livez", "/readyz"} {
		rec := adminGet(t, router, path)
		require.NotEqual(t, http.StatusUnauthorized, rec.Code, path)
	}
}
