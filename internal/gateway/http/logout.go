package http

import (
	"net/http"

	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/shopsdk"
)

// LogoutHandler serves POST /api/auth/logout.
type LogoutHandler struct {
	AuthService   *service.AuthService
	SecureCookies bool
}

// ServeHTTP godoc
//
//	@Summary		Logout
//	@Description	Revokes the refresh token and clears both auth cookies. Idempotent: succeeds whether or
//	@Description	not a session exists.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	shopsdk.LogoutResponse	"success"
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.AuthService.Logout(r.Context(), cookieValue(r, refreshCookieName))

	clearAuthCookies(w, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, shopsdk.LogoutResponse{Success: true})
}
