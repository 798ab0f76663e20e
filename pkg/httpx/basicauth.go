package httpx

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"github.com/casadometal/vitrine/pkg/cryptox"
	"github.com/casadometal/vitrine/pkg/slogx"
)

// BasicAuthCredentials holds the configured site credentials. PasswordHash
// is a PHC-encoded Argon2id hash; the plaintext password is never retained
// past startup.
type BasicAuthCredentials struct {
	Username     string
	PasswordHash string
}

// Configured reports whether both fields are present.
func (c BasicAuthCredentials) Configured() bool {
	return c.Username != "" && c.PasswordHash != ""
}

// BasicAuth gates a handler behind HTTP Basic Authentication. Missing or
// wrong credentials get a 401 with a WWW-Authenticate challenge. If the
// credentials were never configured the request fails with a 500 at first
// use rather than aborting startup.
func BasicAuth(creds BasicAuthCredentials, realm string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			if !creds.Configured() {
				log.Error("basic auth credentials not configured")
				WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   "server_error",
					"message": "erro interno do servidor",
				})
				return
			}

			user, pass, ok := r.BasicAuth()
			if !ok || !validBasicAuth(creds, user, pass) {
				w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`", charset="UTF-8"`)
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte("unauthorized"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func validBasicAuth(creds BasicAuthCredentials, user, pass string) bool {
	// Hash both usernames before comparing so the comparison time does not
	// depend on how much of the username matched.
	wantUser := sha256.Sum256([]byte(creds.Username))
	gotUser := sha256.Sum256([]byte(user))
	userOK := subtle.ConstantTimeCompare(wantUser[:], gotUser[:]) == 1

	passOK := cryptox.VerifyPassword(pass, creds.PasswordHash) == nil

	return userOK && passOK
}
