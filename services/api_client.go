package services

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
)

// Sentinel errors for the failure classes pages care about. Everything
// else surfaces as *APIError with the server's message.
var (
	// ErrUnauthorized means an authenticated call was rejected and the
	// session has been invalidated. A 401 on a token-less call (a bad
	// login, say) is a plain *APIError instead.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// APIError is a server-reported validation/business error. Message is
// the server's own text, shown to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "API call failed with status: " + http.StatusText(e.Status)
}

// publicRoutes are the read-only endpoints that never carry the bearer
// token. Everything else is authenticated.
var publicRoutes = []string{
	"/api/movies/now-playing",
	"/api/movies/upcoming",
	"/api/movies/",
	"/api/news",
	"/api/cinemas",
	"/api/screens",
	"/api/showtimes",
}

func isPublicRoute(method, endpoint string) bool {
	if method != http.MethodGet {
		return false
	}
	path := endpoint
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	for _, p := range publicRoutes {
		base := strings.TrimSuffix(p, "/")
		if path == base || strings.HasPrefix(path, base+"/") {
			return true
		}
	}
	return false
}

// ApiClient issues REST calls against the booking platform. The token
// source and the auth-failure hook are injected by the session so the
// client itself holds no session state.
type ApiClient struct {
	BaseURL string

	httpClient *http.Client
	token      func() string
	onAuthFail func()
}

// NewApiClient creates a client for the given API root. tokenFn may
// return "" when nobody is logged in; onAuthFail is invoked on a
// rejected authenticated call so the session can wipe itself.
func NewApiClient(baseURL string, tokenFn func() string, onAuthFail func()) *ApiClient {
	if tokenFn == nil {
		tokenFn = func() string { return "" }
	}
	if onAuthFail == nil {
		onAuthFail = func() {}
	}
	return &ApiClient{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		token:      tokenFn,
		onAuthFail: onAuthFail,
	}
}

// Get fetches endpoint and decodes the JSON response into out.
func (c *ApiClient) Get(ctx context.Context, endpoint string, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out, nil)
}

// Post sends body as JSON and decodes the response into out.
func (c *ApiClient) Post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out, nil)
}

// PostIdempotent is Post with an Idempotency-Key header attached, for
// calls the user might accidentally repeat.
func (c *ApiClient) PostIdempotent(ctx context.Context, endpoint, key string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out, http.Header{"Idempotency-Key": []string{key}})
}

// Put sends body as JSON and decodes the response into out.
func (c *ApiClient) Put(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out, nil)
}

func (c *ApiClient) do(ctx context.Context, method, endpoint string, body, out interface{}, extra http.Header) error {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request data: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	authenticated := false
	if !isPublicRoute(method, endpoint) {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if !authenticated {
			// No session to invalidate; a rejected login or a public
			// call gone wrong keeps the server's own message.
			return &APIError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
		}
		c.onAuthFail()
		return ErrUnauthorized
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}
	return nil
}

// serverMessage pulls the error text out of a failed response body.
// The API uses either {"error": ...} or {"message": ...}.
func serverMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
