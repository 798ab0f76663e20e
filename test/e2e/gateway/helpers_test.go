package gateway_test

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	gatewayhttp "github.com/casadometal/vitrine/internal/gateway/http"
	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/internal/gateway/store/drivers/sqlite"
	"github.com/casadometal/vitrine/internal/gateway/upstream"
	"github.com/casadometal/vitrine/pkg/slogx"
)

// fakeWordPress emulates the slice of WPGraphQL the gateway depends on:
// the login and refreshJwtAuthToken mutations and the viewer query. Tokens
// it mints are real HS256 JWTs so the gateway's expiry peek sees real
// claims.
type fakeWordPress struct {
	t   *testing.T
	key []byte

	validRefresh string
	password     string
}

func (f *fakeWordPress) mintAccess(ttl time.Duration) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	signed, err := token.SignedString(f.key)
	require.NoError(f.t, err)
	return signed
}

func (f *fakeWordPress) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))

		write := func(data string) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(data))
		}
		reject := func(code string) {
			write(`{"errors":[{"message":"` + code + `"}]}`)
		}

		switch {
		case strings.Contains(req.Query, "mutation Login"):
			if req.Variables["password"] != f.password {
				reject("incorrect_password")
				return
			}
			access := f.mintAccess(5 * time.Minute)
			payload, _ := json.Marshal(map[string]any{
				"data": map[string]any{
					"login": map[string]any{
						"authToken":    access,
						"refreshToken": f.validRefresh,
						"user": map[string]any{
							"id":       "1",
							"name":     "Carlos Ferreira",
							"email":    "carlos@casadometal.test",
							"username": "carlos",
						},
					},
				},
			})
			write(string(payload))

		case strings.Contains(req.Query, "refreshJwtAuthToken"):
			if req.Variables["refreshToken"] != f.validRefresh {
				reject("invalid_refresh_token")
				return
			}
			payload, _ := json.Marshal(map[string]any{
				"data": map[string]any{
					"refreshJwtAuthToken": map[string]any{
						"authToken": f.mintAccess(5 * time.Minute),
					},
				},
			})
			write(string(payload))

		case strings.Contains(req.Query, "query HomeContent"):
			write(`{"data":{"homeContent":{"heroTitle":"Serralheria Casa do Metal","whatsappNumber":"+55 11 98765-4321"}}}`)

		case strings.Contains(req.Query, "query Viewer"):
			auth := r.Header.Get("Authorization")
			if len(auth) < 8 || !f.validBearer(auth[len("Bearer "):]) {
				reject("invalid_token")
				return
			}
			write(`{"data":{"viewer":{"id":"1","name":"Carlos Ferreira","email":"carlos@casadometal.test","username":"carlos"}}}`)

		default:
			reject("unknown_operation")
		}
	})
}

func (f *fakeWordPress) validBearer(token string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) { return f.key, nil })
	return err == nil && parsed.Valid
}

func newCookieClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func cookieNamed(t *testing.T, client *http.Client, baseURL, name string) string {
	t.Helper()
	u, err := url.Parse(baseURL)
	require.NoError(t, err)
	for _, c := range client.Jar.Cookies(u) {
		if c.Name == name {
			return c.Value
		}
	}
	t.Fatalf("cookie %q not in jar", name)
	return ""
}

// setupGateway stands up the whole stack: a fake WordPress, a real sqlite
// denylist in a temp dir, real services, and the real router behind an
// httptest server. Returns the gateway's base URL.
func setupGateway(t *testing.T) (string, *fakeWordPress) {
	t.Helper()

	wp := &fakeWordPress{
		t:            t,
		key:          []byte("e2e-signing-key"),
		validRefresh: "refresh-e2e",
		password:     "segredo",
	}
	wpSrv := httptest.NewServer(wp.handler())
	t.Cleanup(wpSrv.Close)

	db, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.ApplyMigrations())

	up := upstream.New(wpSrv.URL)
	logger := slogx.New(slogx.Config{Service: "e2e", Level: "error", Format: "text"})

	router := gatewayhttp.NewRouter("e2e", db, up, logger)
	router.AuthService = &service.AuthService{Upstream: up, Denylist: db.DeniedTokens()}
	router.CatalogService = &service.CatalogService{Upstream: up}
	router.ContentService = &service.ContentService{Upstream: up}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv.URL, wp
}
