package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casadometal/vitrine/internal/gateway/domain"
	"github.com/casadometal/vitrine/internal/gateway/upstream"
	"github.com/casadometal/vitrine/pkg/shopsdk"
	"github.com/stretchr/testify/require"
)

func getMe(t *testing.T, router http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestViewerWithoutCookieIsNullUser(t *testing.T) {
	router := newTestRouter(t, &fakeAuthUpstream{})

	// Idempotent: every unauthenticated call answers the same way.
	for i := 0; i < 2; i++ {
		rec := getMe(t, router, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"user":null}`, rec.Body.String())
	}
}

func TestViewerRejectedUpstreamIsNullUser(t *testing.T) {
	up := &fakeAuthUpstream{viewerErr: fmt.Errorf("%w: invalid token", upstream.ErrRejected)}
	router := newTestRouter(t, up)

	rec := getMe(t, router, "token-expirado")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"user":null}`, rec.Body.String())
}

func TestViewerSuccess(t *testing.T) {
	up := &fakeAuthUpstream{viewer: domain.Viewer{ID: "1", Name: "Carlos", Username: "carlos"}}
	router := newTestRouter(t, up)

	rec := getMe(t, router, "token-valido")

	require.Equal(t, http.StatusOK, rec.Code)

	var body shopsdk.ViewerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.User)
	require.Equal(t, "carlos", body.User.Username)
}
