package ecobee

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultBaseURL is the ecobee API base URL.
	DefaultBaseURL = "https://api.ecobee.com"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	authorizePath         = "/authorize"
	tokenPath             = "/token"
	thermostatPath        = "/1/thermostat"
	thermostatSummaryPath = "/1/thermostatSummary"
	runtimeReportPath     = "/1/runtimeReport"
	meterReportPath       = "/1/meterReport"
)

// RetryConfig configures automatic retry behavior for transient failures.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts (default: 3).
	MaxRetries uint64
	// InitialBackoff is the initial backoff duration (default: 100ms).
	InitialBackoff time.Duration
	// MaxBackoff is the maximum backoff duration (default: 5s).
	MaxBackoff time.Duration
	// Multiplier is the backoff multiplier (default: 2.0).
	Multiplier float64
}

// DefaultRetryConfig returns sensible retry defaults.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
		Multiplier:     2.0,
	}
}

// Client is an ecobee API client. The only mutable state it carries across
// calls is the token set managed by the PIN authorization flow; everything
// else is fixed at construction, so a Client is safe for concurrent use.
type Client struct {
	baseURL    string
	appKey     string
	scope      Scope
	httpClient *http.Client
	logger     *slog.Logger
	retry      *RetryConfig
	tokenStore TokenStore

	mu       sync.RWMutex
	tokens   *Tokens
	authCode string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout.
// This option can be applied in any order relative to other options.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithRetry enables automatic retry with the given configuration.
// Retries are attempted on rate limits (429), server errors (5xx), and timeouts.
func WithRetry(config *RetryConfig) Option {
	return func(c *Client) {
		c.retry = config
	}
}

// WithScope sets the OAuth scope requested during PIN authorization
// (default: ScopeSmartWrite).
func WithScope(scope Scope) Option {
	return func(c *Client) {
		c.scope = scope
	}
}

// WithTokenStore sets a store used to persist tokens across restarts. Tokens
// already in the store are loaded immediately.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) {
		c.tokenStore = store
	}
}

// NewClient creates a new ecobee API client for the given application key.
// Returns ErrEmptyAppKey if appKey is empty.
func NewClient(appKey string, opts ...Option) (*Client, error) {
	if appKey == "" {
		return nil, ErrEmptyAppKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		appKey:  appKey,
		scope:   ScopeSmartWrite,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				DisableKeepAlives:   false,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tokenStore != nil {
		if tokens, err := c.tokenStore.LoadTokens(context.Background()); err == nil {
			c.tokens = tokens
		}
	}

	return c, nil
}

// do performs an authenticated HTTP request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	token, err := c.accessToken()
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logResponse(ctx, method, path, 0, time.Since(start), err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logResponse(ctx, method, path, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode >= 400 {
		return nil, c.handleError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// handleError converts vendor HTTP error responses to appropriate errors.
// The vendor wraps API failures in a status object and authorization
// failures in an OAuth error object; both decode through the marshaller.
func (c *Client) handleError(statusCode int, body []byte) error {
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &APIError{HTTPStatus: statusCode, Message: truncatePreview(body)}
	}

	if _, ok := parsed["error"]; ok {
		obj, err := Decode(map[string]any{"ErrorResponse": parsed}, "ErrorResponse")
		if err == nil {
			errResp := obj.(*ErrorResponse)
			return &AuthError{
				HTTPStatus:  statusCode,
				Type:        deref(errResp.Error),
				Description: deref(errResp.Description),
				URI:         deref(errResp.URI),
			}
		}
	}

	if status, ok := parsed["status"].(map[string]any); ok {
		obj, err := Decode(map[string]any{"Status": status}, "Status")
		if err == nil {
			st := obj.(*Status)
			apiErr := &APIError{HTTPStatus: statusCode}
			if st.Code != nil {
				apiErr.Code = *st.Code
			}
			if st.Message != nil {
				apiErr.Message = *st.Message
			}
			return apiErr
		}
	}

	return &APIError{HTTPStatus: statusCode, Message: truncatePreview(body)}
}

// get performs a GET request. The vendor API carries the request payload in
// the "json" query parameter on reads.
func (c *Client) get(ctx context.Context, path string, payload map[string]any) ([]byte, error) {
	query := url.Values{}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		query.Set("format", "json")
		query.Set("json", string(data))
	}
	return c.doWithRetry(ctx, http.MethodGet, path, query, nil)
}

// post performs a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	query := url.Values{}
	query.Set("format", "json")
	return c.doWithRetry(ctx, http.MethodPost, path, query, body)
}

// doWithRetry performs a request with automatic retry on transient failures.
func (c *Client) doWithRetry(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	if c.retry == nil {
		return c.do(ctx, method, path, query, body)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retry.InitialBackoff
	bo.MaxInterval = c.retry.MaxBackoff
	bo.Multiplier = c.retry.Multiplier

	var data []byte
	err := backoff.Retry(func() error {
		d, err := c.do(ctx, method, path, query, body)
		if err != nil {
			if !c.isRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		data = d
		return nil
	}, backoff.WithMaxRetries(backoff.WithContext(bo, ctx), c.retry.MaxRetries))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// isRetryable returns true if the error is a transient failure worth retrying.
func (c *Client) isRetryable(err error) bool {
	if IsTimeout(err) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatus == http.StatusTooManyRequests ||
			(apiErr.HTTPStatus >= 500 && apiErr.HTTPStatus < 600)
	}
	return false
}

// decodeResponse parses a response body and runs it through the marshaller
// as the given response type.
func decodeResponse[T Object](data []byte, typeName string) (T, error) {
	var zero T

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return zero, fmt.Errorf("failed to parse %s: %w (body: %s)", typeName, err, truncatePreview(data))
	}

	obj, err := Decode(map[string]any{typeName: parsed}, typeName)
	if err != nil {
		return zero, err
	}

	resp, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("ecobee: decoded %s has unexpected type %T", typeName, obj)
	}
	return resp, nil
}

// truncatePreview returns a truncated string for error messages.
func truncatePreview(data []byte) string {
	s := string(data)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
