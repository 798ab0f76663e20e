package shopsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the storefront gateway's public surface. Authenticated
// operations live on Session, created via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// RefreshInterval overrides how often a Session proactively rotates its
	// access cookie. Zero means the default, comfortably under the cookie's
	// five-minute expiry.
	RefreshInterval time.Duration
}

// NewClient creates a gateway client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ProductQuery narrows a catalog listing. Zero values mean "no constraint".
type ProductQuery struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
}

func (q ProductQuery) encode() string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// Products lists the catalog, optionally filtered.
func (c *Client) Products(ctx context.Context, query ProductQuery) ([]Product, error) {
	var resp ProductsResponse
	if err := c.get(ctx, "/api/products"+query.encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// Product fetches one product by slug.
func (c *Client) Product(ctx context.Context, slug string) (Product, error) {
	var resp ProductResponse
	if err := c.get(ctx, "/api/products/"+url.PathEscape(slug), &resp); err != nil {
		return Product{}, err
	}
	return resp.Product, nil
}

// Categories lists the product categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp CategoriesResponse
	if err := c.get(ctx, "/api/categories", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Health checks the gateway's liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	var resp HealthResponse
	return c.get(ctx, "/livez", &resp)
}

// Login authenticates against the gateway and returns a Session carrying the
// auth cookies it set. The Session keeps itself fresh in the background;
// call Close (or Logout) when done with it.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	s := &Session{
		client:   c,
		jar:      jar,
		interval: c.RefreshInterval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	if s.interval <= 0 {
		s.interval = defaultRefreshInterval
	}
	s.http = &http.Client{
		Jar:     jar,
		Timeout: c.HTTPClient.Timeout,
		Transport: &refreshTransport{
			session: s,
			base:    http.DefaultTransport,
		},
	}

	body, err := json.Marshal(LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/api/auth/login"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	var loginResp LoginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return nil, err
	}
	if loginResp.User != nil {
		s.user = *loginResp.User
	}

	go s.run()
	return s, nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	return decodeJSON(resp, target, http.StatusOK)
}

// decodeJSON decodes a gateway response into target, or returns a typed
// APIError when the status is not the expected one.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
