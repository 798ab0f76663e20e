package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogoutWithoutSessionStillClears(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	requireCleared(t, findCookie(t, cookies, "token"))
	requireCleared(t, findCookie(t, cookies, "refreshToken"))
}

func TestLogoutIsIdempotent(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "refresh-x"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	}
}
