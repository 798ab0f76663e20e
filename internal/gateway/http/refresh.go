package http

import (
	"errors"
	"net/http"

	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/shopsdk"
	"github.com/casadometal/vitrine/pkg/slogx"
)

// RefreshHandler serves POST /api/auth/refresh.
type RefreshHandler struct {
	AuthService   *service.AuthService
	SecureCookies bool
}

// ServeHTTP godoc
//
//	@Summary		Refresh access token
//	@Description	Exchanges the refreshToken cookie for a fresh access token and overwrites the token cookie.
//	@Description	The refresh cookie itself is never rotated. A rejected refresh clears both cookies; a
//	@Description	transport failure to the upstream clears nothing so the client can retry.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	shopsdk.RefreshResponse	"success"
//	@Failure		401	{object}	shopsdk.APIError		"missing or rejected refresh token"
//	@Failure		500	{object}	shopsdk.APIError		"upstream unreachable"
//	@Router			/api/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	refreshToken := cookieValue(r, refreshCookieName)
	if refreshToken == "" {
		shopsdk.ErrUnauthenticated.WriteError(w)
		return
	}

	accessToken, err := h.AuthService.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrRefreshRejected) {
			// The refresh token is dead. Leaving it set would strand the
			// browser in a loop of doomed refreshes.
			clearAuthCookies(w, h.SecureCookies)
			shopsdk.ErrUnauthenticated.WriteError(w)
			return
		}
		log.Error("refresh failed", "err", err)
		shopsdk.ErrServerError.WriteError(w)
		return
	}

	setAccessCookie(w, accessToken, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, shopsdk.RefreshResponse{Success: true})
}
