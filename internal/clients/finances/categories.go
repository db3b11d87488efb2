package finances

import (
	"context"
	"net/http"

	"github.com/bobmcallan/finqa/internal/models"
)

// CategoryRequests builds requests for /v1/categories/.
type CategoryRequests struct {
	client *Client
	path   string
}

// Create adds a category for the token's user.
func (r *CategoryRequests) Create(ctx context.Context, category models.CategoryPayload, token string) (*Response, error) {
	return r.client.Send(ctx, http.MethodPost, r.path, nil, category, token)
}

// List returns the token user's categories.
func (r *CategoryRequests) List(ctx context.Context, token string) (*Response, error) {
	return r.client.Send(ctx, http.MethodGet, r.path, nil, nil, token)
}
