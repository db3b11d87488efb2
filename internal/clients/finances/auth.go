package finances

import (
	"context"
	"net/http"

	"github.com/bobmcallan/finqa/internal/models"
)

// AuthRequests builds requests for /v1/auth.
type AuthRequests struct {
	client    *Client
	loginPath string
	mePath    string
}

// Login posts credentials to /v1/auth/login.
func (r *AuthRequests) Login(ctx context.Context, creds models.Credentials) (*Response, error) {
	return r.client.Send(ctx, http.MethodPost, r.loginPath, nil, creds, "")
}

// Me returns the user the token belongs to.
func (r *AuthRequests) Me(ctx context.Context, token string) (*Response, error) {
	return r.client.Send(ctx, http.MethodGet, r.mePath, nil, nil, token)
}
