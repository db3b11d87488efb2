package finances

import (
	"context"
	"net/http"

	"github.com/bobmcallan/finqa/internal/models"
)

// UserRequests builds requests for /v1/users/.
type UserRequests struct {
	client *Client
	path   string
}

// Create registers a user. No token is sent.
func (r *UserRequests) Create(ctx context.Context, user models.UserPayload) (*Response, error) {
	return r.client.Send(ctx, http.MethodPost, r.path, nil, user, "")
}

// List returns every registered user. No token is sent.
func (r *UserRequests) List(ctx context.Context) (*Response, error) {
	return r.client.Send(ctx, http.MethodGet, r.path, nil, nil, "")
}
