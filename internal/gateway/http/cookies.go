package http

import (
	"net/http"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/domain"
)

// Cookie names match what the upstream WordPress JWT plugin's own clients
// expect, so the storefront frontend needs no renaming shim.
const (
	accessCookieName  = "token"
	refreshCookieName = "refreshToken"
)

func newAuthCookie(name, value string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// setAuthCookies writes both cookies in one response, the only way a
// session ever becomes established.
func setAuthCookies(w http.ResponseWriter, pair domain.TokenPair, secure bool) {
	http.SetCookie(w, newAuthCookie(accessCookieName, pair.AccessToken, domain.AccessTokenTTL, secure))
	http.SetCookie(w, newAuthCookie(refreshCookieName, pair.RefreshToken, domain.RefreshTokenTTL, secure))
}

// setAccessCookie overwrites only the access cookie, used after a refresh.
// The refresh cookie is never rotated here.
func setAccessCookie(w http.ResponseWriter, accessToken string, secure bool) {
	http.SetCookie(w, newAuthCookie(accessCookieName, accessToken, domain.AccessTokenTTL, secure))
}

// clearAuthCookies expires both cookies in the same response. Never clear
// one without the other: a half-cleared jar leaves the browser in a state
// no handler can make sense of.
func clearAuthCookies(w http.ResponseWriter, secure bool) {
	for _, name := range []string{accessCookieName, refreshCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
