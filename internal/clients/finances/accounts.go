package finances

import (
	"context"
	"net/http"

	"github.com/bobmcallan/finqa/internal/models"
)

// AccountRequests builds requests for /v1/accounts/.
type AccountRequests struct {
	client      *Client
	path        string
	balancePath string
}

// Create opens an account for the token's user.
func (r *AccountRequests) Create(ctx context.Context, account models.AccountPayload, token string) (*Response, error) {
	return r.client.Send(ctx, http.MethodPost, r.path, nil, account, token)
}

// List returns the token user's accounts.
func (r *AccountRequests) List(ctx context.Context, token string) (*Response, error) {
	return r.client.Send(ctx, http.MethodGet, r.path, nil, nil, token)
}

// Balance returns the balance of accountID.
func (r *AccountRequests) Balance(ctx context.Context, accountID, token string) (*Response, error) {
	return r.client.Send(ctx, http.MethodGet, r.balancePath, map[string]string{"accountId": accountID}, nil, token)
}
