// Package tokens obtains bearer tokens for fixture users.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bobmcallan/finqa/internal/clients/finances"
	"github.com/bobmcallan/finqa/internal/models"
)

// BearerPrefix is the Authorization scheme the API expects.
const BearerPrefix = "Bearer "

// ErrAuthenticationFailed is matched by every AuthenticationFailedError.
var ErrAuthenticationFailed = errors.New("authentication failed")

// AuthenticationFailedError reports a login that did not yield a token.
type AuthenticationFailedError struct {
	Email      string
	StatusCode int
	Body       string
}

func (e *AuthenticationFailedError) Error() string {
	return fmt.Sprintf("authentication failed for %q: status %d: %s", e.Email, e.StatusCode, e.Body)
}

// Is reports whether target is ErrAuthenticationFailed.
func (e *AuthenticationFailedError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

// Provider logs users in. It holds no token state: every call logs in again.
type Provider struct {
	auth *finances.AuthRequests
}

// NewProvider creates a provider over the auth request builder.
func NewProvider(auth *finances.AuthRequests) *Provider {
	return &Provider{auth: auth}
}

// Obtain logs in with creds and returns the raw access token.
func (p *Provider) Obtain(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := p.auth.Login(ctx, creds)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	failed := &AuthenticationFailedError{
		Email:      creds.Email,
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body()),
	}
	if resp.StatusCode != http.StatusCreated {
		return "", failed
	}

	var login models.Login
	if err := resp.JSON(&login); err != nil || login.Access == "" {
		return "", failed
	}
	return login.Access, nil
}

// ObtainBearer is Obtain followed by Bearer.
func (p *Provider) ObtainBearer(ctx context.Context, creds models.Credentials) (string, error) {
	token, err := p.Obtain(ctx, creds)
	if err != nil {
		return "", err
	}
	return Bearer(token), nil
}

// Bearer prefixes token with the Bearer scheme.
func Bearer(token string) string {
	return BearerPrefix + token
}
