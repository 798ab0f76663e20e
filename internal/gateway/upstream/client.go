// Package upstream is the transport to the headless WordPress/WooCommerce
// GraphQL endpoint that owns all business and identity data.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var (
	// ErrNotConfigured means the endpoint URL was never set. Configuration
	// problems surface at first use, not at process start.
	ErrNotConfigured = errors.New("upstream: graphql endpoint not configured")

	// ErrRejected means the upstream executed the operation and refused it
	// (bad credentials, invalid token, unknown slug). Distinct from
	// transport failures, which stay wrapped as plain errors.
	ErrRejected = errors.New("upstream: operation rejected")
)

// Client speaks GraphQL-over-HTTP to the WordPress instance.
type Client struct {
	endpoint string
	http     *http.Client
}

// New builds a client for the given GraphQL endpoint. An empty endpoint is
// accepted; calls will fail with ErrNotConfigured.
func New(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient is New with a caller-supplied http.Client, used by tests
// and by deployments that need custom transports.
func NewWithHTTPClient(endpoint string, hc *http.Client) *Client {
	c := New(endpoint)
	if hc != nil {
		c.http = hc
	}
	return c
}

// Configured reports whether an endpoint URL was set.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// do executes one GraphQL operation. bearer, when non-empty, is sent as an
// Authorization header. The decoded data object is unmarshalled into out.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, bearer string, out any) error {
	if c.endpoint == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("upstream: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: transport: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("upstream: read response: %w", err)
	}

	// WPGraphQL reports operation failures inside a 200 envelope; anything
	// else from the HTTP layer is a transport problem.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream: unexpected status %d", resp.StatusCode)
	}

	var envelope gqlEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("upstream: malformed response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("%w: %s", ErrRejected, strings.Join(msgs, "; "))
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("upstream: decode data: %w", err)
		}
	}
	return nil
}

// doWithRetry wraps do with exponential backoff for read-only catalog
// queries. Rejections are permanent; only transport failures retry. Auth
// mutations never go through here.
func (c *Client) doWithRetry(ctx context.Context, query string, vars map[string]any, bearer string, out any) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second

	op := func() error {
		err := c.do(ctx, query, vars, bearer, out)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrRejected) || errors.Is(err, ErrNotConfigured) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(op, backoff.WithContext(b, ctx))
}
