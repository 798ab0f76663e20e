package shopsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/casadometal/vitrine/pkg/httpx"
)

// Error codes returned by the gateway's /api surface.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
	ErrorCodeUpstreamDown       = "upstream_unavailable"
)

// APIError is the gateway's JSON error envelope. It implements the error
// interface and is used both by HTTP handlers (to write responses) and by the
// SDK (to represent them). Messages are user-facing and in Portuguese.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes the error as a JSON HTTP response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   e.Code,
		"message": e.Message,
	})
}

var (
	// ErrMissingCredentials is returned when login is attempted without a
	// username or password.
	ErrMissingCredentials = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "usuário e senha são obrigatórios",
	}

	// ErrInvalidCredentials is returned on a failed login. Deliberately
	// generic: it never says which of the two fields was wrong.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "usuário ou senha incorretos",
	}

	// ErrUnauthenticated is returned when a protected endpoint is hit
	// without a valid session.
	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "sessão expirada ou inválida",
	}

	// ErrInvalidBody is returned when a request body cannot be parsed.
	ErrInvalidBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "corpo da requisição inválido",
	}

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "recurso não encontrado",
	}

	// ErrServerError is the catch-all for unexpected failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "erro interno do servidor",
	}

	// ErrUpstreamUnavailable is returned when the WordPress backend cannot
	// be reached. Distinct from 401 so callers do not treat an outage as a
	// rejected session.
	ErrUpstreamUnavailable = &APIError{
		StatusCode: http.StatusBadGateway,
		Code:       ErrorCodeUpstreamDown,
		Message:    "serviço temporariamente indisponível",
	}
)

// NewAPIError builds a custom APIError for cases the predefined set does not
// cover.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// parseErrorResponse turns a non-2xx gateway response into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       envelope.Error,
			Message:    envelope.Message,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
