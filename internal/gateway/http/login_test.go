package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/casadometal/vitrine/internal/gateway/domain"
	"github.com/casadometal/vitrine/internal/gateway/upstream"
	"github.com/casadometal/vitrine/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

func postLogin(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginMissingFieldsSetsNoCookies(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	rec := postLogin(t, router, `{"username":"x","password":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, rec.Result().Cookies(), "validation failure must not touch the cookie jar")

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body.Message, "obrigatórios")
}

func TestLoginSetsBothCookies(t *testing.T) {
	up := &fakeAuthUpstream{
		loginViewer: domain.Viewer{ID: "1", Name: "Carlos", Username: "carlos"},
		loginPair:   domain.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"},
	}
	router := newTestRouter(t, up)

	rec := postLogin(t, router, `{"username":"carlos","password":"segredo"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)

	access := findCookie(t, cookies, "token")
	require.Equal(t, "access-1", access.Value)
	require.True(t, access.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, access.SameSite)
	require.Equal(t, "/", access.Path)
	require.InDelta(t, (5 * time.Minute).Seconds(), float64(access.MaxAge), 5)

	refresh := findCookie(t, cookies, "refreshToken")
	require.Equal(t, "refresh-1", refresh.Value)
	require.True(t, refresh.HttpOnly)
	require.InDelta(t, (7 * 24 * time.Hour).Seconds(), float64(refresh.MaxAge), 5)

	var body shopsdk.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.NotNil(t, body.User)
	require.Equal(t, "carlos", body.User.Username)
}

func TestLoginRejectionIsGenericAndCookieFree(t *testing.T) {
	up := &fakeAuthUpstream{loginErr: fmt.Errorf("%w: incorrect_password", upstream.ErrRejected)}
	router := newTestRouter(t, up)

	rec := postLogin(t, router, `{"username":"carlos","password":"errada"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Result().Cookies())
	require.NotContains(t, rec.Body.String(), "incorrect_password")
}

func TestLoginUpstreamTransportErrorIs500(t *testing.T) {
	up := &fakeAuthUpstream{loginErr: fmt.Errorf("upstream: transport: connection refused")}
	router := newTestRouter(t, up)

	rec := postLogin(t, router, `{"username":"carlos","password":"segredo"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Empty(t, rec.Result().Cookies())
}

func TestLoginMalformedBody(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	rec := postLogin(t, router, `{"username":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
