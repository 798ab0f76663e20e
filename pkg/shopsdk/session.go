package shopsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// defaultRefreshInterval keeps the access cookie fresh ahead of its
// five-minute expiry so in-flight requests rarely see a stale token.
const defaultRefreshInterval = 4 * time.Minute

// refreshDebounce collapses concurrent 401-triggered refreshes into one
// upstream call.
const refreshDebounce = 2 * time.Second

// Session is an authenticated gateway client. It holds the httpOnly auth
// cookies in a jar and keeps the access token fresh two ways: a background
// refresh loop, and a retry-once-after-refresh on any 401 from a non-auth
// endpoint. Safe for concurrent use.
type Session struct {
	client   *Client
	http     *http.Client
	jar      http.CookieJar
	user     User
	interval time.Duration

	mu          sync.Mutex
	lastRefresh time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// User returns the identity captured at login time. For the live view, use
// Viewer.
func (s *Session) User() User {
	return s.user
}

// Viewer asks the gateway who the session currently belongs to.
func (s *Session) Viewer(ctx context.Context) (*User, error) {
	var resp ViewerResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Refresh rotates the access cookie now instead of waiting for the
// background loop.
func (s *Session) Refresh(ctx context.Context) error {
	return s.refresh(ctx)
}

// HomeContent reads the editable home-page block.
func (s *Session) HomeContent(ctx context.Context) (HomeContent, error) {
	var resp HomeContentResponse
	if err := s.do(ctx, http.MethodGet, "/api/admin/home", nil, &resp); err != nil {
		return HomeContent{}, err
	}
	return resp.Content, nil
}

// UpdateHomeContent overwrites the editable home-page block.
func (s *Session) UpdateHomeContent(ctx context.Context, content HomeContent) error {
	return s.do(ctx, http.MethodPut, "/api/admin/home", HomeContentResponse{Content: content}, nil)
}

// AdminProducts lists the catalog through the admin surface.
func (s *Session) AdminProducts(ctx context.Context) ([]Product, error) {
	var resp ProductsResponse
	if err := s.do(ctx, http.MethodGet, "/api/admin/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// Logout revokes the session server-side and stops the refresh loop. The
// Session is unusable afterwards.
func (s *Session) Logout(ctx context.Context) error {
	err := s.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	s.Close()
	return err
}

// Close stops the background refresh loop without revoking anything
// server-side. Idempotent.
func (s *Session) Close() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	<-s.doneCh
}

// Done is closed when the background refresh loop has exited, whether via
// Close, Logout, or the session going terminal on a dead refresh token.
func (s *Session) Done() <-chan struct{} {
	return s.doneCh
}

func (s *Session) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err := s.refresh(ctx)
			if isUnauthorized(err) {
				// The refresh token itself is dead. Revoke what is left
				// server-side and stop; the session is terminal.
				_ = s.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
				s.stopOnce.Do(func() { close(s.stopCh) })
				cancel()
				return
			}
			// Other failures are transient; the next tick retries.
			cancel()
		}
	}
}

func (s *Session) refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastRefresh) < refreshDebounce {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.url("/api/auth/refresh"), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	var refreshResp RefreshResponse
	if err := decodeJSON(resp, &refreshResp, http.StatusOK); err != nil {
		return err
	}

	s.lastRefresh = time.Now()
	return nil
}

func (s *Session) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	if out == nil {
		defer resp.Body.Close()
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("failed to read response body: %w", readErr)
		}
		return parseErrorResponse(resp, bodyBytes)
	}
	return decodeJSON(resp, out, http.StatusOK)
}

func isUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// refreshTransport retries a request once after refreshing the session when
// the gateway answers 401. Auth endpoints are exempt so a rejected refresh
// or login cannot recurse.
type refreshTransport struct {
	session *Session
	base    http.RoundTripper
}

func (t *refreshTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}
	if strings.HasPrefix(req.URL.Path, "/api/auth/") {
		return resp, nil
	}
	if req.Body != nil && req.GetBody == nil {
		// Cannot replay the body, surface the 401 as-is.
		return resp, nil
	}

	if refreshErr := t.session.refresh(req.Context()); refreshErr != nil {
		return resp, nil
	}

	resp.Body.Close()

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		retryBody, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, bodyErr
		}
		retry.Body = retryBody
	}

	// The jar is applied by http.Client before RoundTrip, so the retry must
	// pick up the rotated cookie by hand.
	retry.Header.Del("Cookie")
	for _, cookie := range t.session.jar.Cookies(retry.URL) {
		retry.AddCookie(cookie)
	}

	return t.base.RoundTrip(retry)
}
