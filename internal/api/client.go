package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gateway defines the backend calls the shell depends on. It is implemented
// by *Client and by fakes in tests.
type Gateway interface {
	FetchProfile(ctx context.Context) (*Profile, error)
	Logout(ctx context.Context) error
	FetchCart(ctx context.Context) (*CartPayload, error)
	AddCartItem(ctx context.Context, req AddItemRequest) (*CartPayload, error)
	UpdateCartItem(ctx context.Context, id string, quantity int) (*CartPayload, error)
	RemoveCartItem(ctx context.Context, id string) (*CartPayload, error)
	ClearCart(ctx context.Context) error
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// TokenSource supplies the current bearer token, or "" for guest sessions.
type TokenSource func() string

// Client talks to the partmart HTTP API.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	userAgent  string
	token      TokenSource
	retryDelay time.Duration
}

const (
	defaultAPIBase    = "127.0.0.1:8799"
	defaultUserAgent  = "partmart/0.1"
	requestTimeout    = 5 * time.Second
	profileRetries    = 3
	defaultRetryDelay = 500 * time.Millisecond
)

// NewClient builds a Client for the provided apiBase host:port or URL value.
// token may be nil for a client that only ever acts as a guest.
func NewClient(apiBase string, token TokenSource) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent:  defaultUserAgent,
		token:      token,
		retryDelay: defaultRetryDelay,
	}, nil
}

// FetchProfile retrieves the current account profile. It runs once per boot,
// so transient failures are retried a few times before giving up.
func (c *Client) FetchProfile(ctx context.Context) (*Profile, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Profile
	err := retry(ctx, profileRetries, c.retryDelay, func() error {
		return c.do(ctx, http.MethodGet, "/api/v1/account/profile", nil, &payload)
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// Logout notifies the backend that the session ended. Callers treat it as
// fire-and-forget.
func (c *Client) Logout(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/api/v1/account/logout", nil, nil)
}

// FetchCart retrieves the authoritative cart for the current account.
func (c *Client) FetchCart(ctx context.Context) (*CartPayload, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload CartPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/cart", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AddCartItem adds an item and returns the resulting cart.
func (c *Client) AddCartItem(ctx context.Context, req AddItemRequest) (*CartPayload, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload CartPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/cart/items", req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateCartItem changes an item's quantity and returns the resulting cart.
func (c *Client) UpdateCartItem(ctx context.Context, id string, quantity int) (*CartPayload, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("item id required")
	}
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	var payload CartPayload
	path := "/api/v1/cart/items/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// RemoveCartItem deletes an item and returns the resulting cart.
func (c *Client) RemoveCartItem(ctx context.Context, id string) (*CartPayload, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("item id required")
	}
	var payload CartPayload
	path := "/api/v1/cart/items/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ClearCart empties the backend cart. No response shape is required.
func (c *Client) ClearCart(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/api/v1/cart", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
