// Package finances provides request builders for the Flask Finances API.
//
// Every call issues exactly one HTTP request and returns the response as an
// immutable snapshot. HTTP error statuses are not Go errors: the suites assert
// on them. Only transport failures are returned as errors.
package finances

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/finqa/internal/common"
)

const contentType = "application/json"

// Recorder receives a copy of every response body.
type Recorder interface {
	Record(method, path string, status int, body []byte)
}

// Client sends requests to one Finances API base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
	recorder   Recorder
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit caps requests per second. Zero or less disables throttling.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRecorder attaches a response recorder
func WithRecorder(r Recorder) ClientOption {
	return func(c *Client) {
		c.recorder = r
	}
}

// NewClient creates a client for baseURL, e.g. http://localhost:5000/api.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Deadlines come from the caller's context.
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Inf, 0),
		logger:     common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ExpandPath substitutes {name} placeholders in template with path-escaped
// values from params. A placeholder without a value is an error.
func ExpandPath(template string, params map[string]string) (string, error) {
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in path %q", template)
		}
		name := rest[open+1 : open+end]
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("missing value for path parameter %q in %q", name, template)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[open+end+1:]
	}
	return b.String(), nil
}

// Send issues one request. The Authorization header is set to token verbatim,
// and only when token is non-empty; Content-Type is always application/json.
// A nil payload sends no body.
func (c *Client) Send(ctx context.Context, method, pathTemplate string, params map[string]string, payload any, token string) (*Response, error) {
	path, err := ExpandPath(pathTemplate, params)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Bool("auth", token != "").Msg("Finances API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Int("bytes", len(raw)).Msg("Finances API response")

	if c.recorder != nil {
		c.recorder.Record(method, path, resp.StatusCode, raw)
	}

	return &Response{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		body:       raw,
	}, nil
}

// Users returns the /v1/users/ request builder.
func (c *Client) Users() *UserRequests {
	return &UserRequests{client: c, path: "/v1/users/"}
}

// Auth returns the /v1/auth request builder.
func (c *Client) Auth() *AuthRequests {
	return &AuthRequests{client: c, loginPath: "/v1/auth/login", mePath: "/v1/auth/me"}
}

// Accounts returns the /v1/accounts/ request builder.
func (c *Client) Accounts() *AccountRequests {
	return &AccountRequests{client: c, path: "/v1/accounts/", balancePath: "/v1/accounts/{accountId}/balance"}
}

// Categories returns the /v1/categories/ request builder.
func (c *Client) Categories() *CategoryRequests {
	return &CategoryRequests{client: c, path: "/v1/categories/"}
}

// Transactions returns the /v1/transactions request builder.
func (c *Client) Transactions() *TransactionRequests {
	return &TransactionRequests{
		client:      c,
		incomePath:  "/v1/transactions/{accountId}/income",
		expensePath: "/v1/transactions/{accountId}/expense",
		extractPath: "/v1/transactions/{accountId}/extract",
	}
}
