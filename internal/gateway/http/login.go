package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/shopsdk"
	"github.com/casadometal/vitrine/pkg/slogx"
)

// LoginHandler serves POST /api/auth/login.
type LoginHandler struct {
	AuthService   *service.AuthService
	SecureCookies bool
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Authenticates against the upstream WordPress identity provider and establishes a cookie session.
//	@Description	The tokens are set as httpOnly cookies and never appear in the response body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		shopsdk.LoginRequest	true	"Username and password"
//	@Success		200			{object}	shopsdk.LoginResponse	"success, user"
//	@Failure		400			{object}	shopsdk.APIError		"missing fields"
//	@Failure		401			{object}	shopsdk.APIError		"invalid credentials"
//	@Failure		500			{object}	shopsdk.APIError		"upstream unreachable"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req shopsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shopsdk.ErrInvalidBody.WriteError(w)
		return
	}

	viewer, pair, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			shopsdk.ErrMissingCredentials.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			shopsdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			shopsdk.ErrServerError.WriteError(w)
		}
		return
	}

	setAuthCookies(w, pair, h.SecureCookies)
	user := viewerToUser(viewer)
	httpx.WriteJSON(w, http.StatusOK, shopsdk.LoginResponse{Success: true, User: &user})
}
