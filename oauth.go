package ecobee

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// tokenRefreshBuffer is how long before expiry we should refresh the token.
const tokenRefreshBuffer = 5 * time.Minute

// refreshTokenLifetime is how long the vendor honors a refresh token.
const refreshTokenLifetime = 365 * 24 * time.Hour

// Tokens is the client-side token state produced by the PIN authorization
// flow and persisted through a TokenStore.
type Tokens struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	TokenType        string    `json:"token_type"`
	Scope            string    `json:"scope"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// IsValid checks if the access token is still valid (with buffer).
func (t *Tokens) IsValid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}
	return time.Now().Add(tokenRefreshBuffer).Before(t.AccessExpiresAt)
}

// IsRefreshTokenValid checks if the refresh token is still valid.
func (t *Tokens) IsRefreshTokenValid() bool {
	if t == nil || t.RefreshToken == "" {
		return false
	}
	if t.RefreshExpiresAt.IsZero() {
		return true
	}
	return time.Now().Before(t.RefreshExpiresAt)
}

// NeedsRefresh returns true if the access token should be refreshed.
func (t *Tokens) NeedsRefresh() bool {
	return !t.IsValid()
}

// TokenStore is the interface for persisting tokens between runs.
type TokenStore interface {
	SaveTokens(ctx context.Context, tokens *Tokens) error
	LoadTokens(ctx context.Context) (*Tokens, error)
}

// Authorize starts the PIN authorization flow. The returned response carries
// the PIN the user must register in the ecobee web portal; once that is done,
// call RequestTokens to obtain the token set. The authorization code is kept
// on the client for RequestTokens.
func (c *Client) Authorize(ctx context.Context) (*AuthorizeResponse, error) {
	params := url.Values{}
	params.Set("client_id", c.appKey)
	params.Set("response_type", "ecobeePin")
	params.Set("scope", string(c.scope))

	body, err := c.authRequest(ctx, http.MethodGet, authorizePath, params)
	if err != nil {
		return nil, err
	}

	resp, err := decodeResponse[*AuthorizeResponse](body, "AuthorizeResponse")
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.authCode = deref(resp.Code)
	c.mu.Unlock()

	return resp, nil
}

// RequestTokens exchanges the authorization code obtained by Authorize for
// an access/refresh token pair, once the user has registered the PIN in the
// ecobee web portal.
func (c *Client) RequestTokens(ctx context.Context) (*Tokens, error) {
	c.mu.RLock()
	code := c.authCode
	c.mu.RUnlock()
	if code == "" {
		return nil, ErrNotAuthorized
	}

	return c.requestTokenGrant(ctx, "ecobeePin", code)
}

// RefreshTokens trades the refresh token for a brand new token pair. The
// vendor expires both previously issued tokens immediately.
func (c *Client) RefreshTokens(ctx context.Context) (*Tokens, error) {
	c.mu.RLock()
	var refresh string
	if c.tokens != nil {
		refresh = c.tokens.RefreshToken
	}
	c.mu.RUnlock()
	if refresh == "" {
		return nil, ErrNoRefreshToken
	}

	return c.requestTokenGrant(ctx, "refresh_token", refresh)
}

// EnsureValidToken checks the access token and refreshes it when it is
// expired or about to expire. Call this before a burst of API requests, or
// rely on IsTokenExpired and refresh on demand.
func (c *Client) EnsureValidToken(ctx context.Context) error {
	c.mu.RLock()
	tokens := c.tokens
	c.mu.RUnlock()

	if tokens == nil || tokens.AccessToken == "" {
		return ErrNoAccessToken
	}
	if tokens.IsValid() {
		return nil
	}
	if !tokens.IsRefreshTokenValid() {
		return ErrNoRefreshToken
	}

	_, err := c.RefreshTokens(ctx)
	return err
}

// Tokens returns a copy of the current token state, or nil if the client has
// not completed the authorization flow.
func (c *Client) Tokens() *Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return nil
	}
	copied := *c.tokens
	return &copied
}

// SetTokens installs a token set obtained elsewhere (for example from a
// previous run) and persists it if a token store is configured.
func (c *Client) SetTokens(ctx context.Context, tokens *Tokens) error {
	c.mu.Lock()
	c.tokens = tokens
	c.mu.Unlock()

	if c.tokenStore != nil && tokens != nil {
		if err := c.tokenStore.SaveTokens(ctx, tokens); err != nil {
			return fmt.Errorf("failed to save tokens: %w", err)
		}
	}
	return nil
}

// requestTokenGrant performs a token endpoint request and installs the result.
func (c *Client) requestTokenGrant(ctx context.Context, grantType, code string) (*Tokens, error) {
	params := url.Values{}
	params.Set("client_id", c.appKey)
	params.Set("code", code)
	params.Set("grant_type", grantType)

	now := time.Now()
	body, err := c.authRequest(ctx, http.MethodPost, tokenPath, params)
	if err != nil {
		return nil, err
	}

	resp, err := decodeResponse[*TokensResponse](body, "TokensResponse")
	if err != nil {
		return nil, err
	}

	tokens := &Tokens{
		AccessToken:      deref(resp.AccessToken),
		RefreshToken:     deref(resp.RefreshToken),
		TokenType:        deref(resp.TokenType),
		Scope:            deref(resp.Scope),
		RefreshExpiresAt: now.Add(refreshTokenLifetime),
	}
	if resp.ExpiresIn != nil {
		tokens.AccessExpiresAt = now.Add(time.Duration(*resp.ExpiresIn) * time.Second)
	}

	if err := c.SetTokens(ctx, tokens); err != nil {
		return tokens, err
	}
	return tokens, nil
}

// authRequest hits the authorization endpoints, which authenticate with the
// application key in the query string rather than a bearer token.
func (c *Client) authRequest(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logResponse(ctx, method, path, 0, time.Since(start), err)
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	c.logResponse(ctx, method, path, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode >= 400 {
		return nil, c.handleError(resp.StatusCode, body)
	}

	return body, nil
}

// accessToken returns the current bearer token for API requests.
func (c *Client) accessToken() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil || c.tokens.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	return c.tokens.AccessToken, nil
}

// marshalJSON is a tiny indirection so token persistence and tests share the
// exact wire representation.
func marshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
