package finances

import (
	"context"
	"net/http"

	"github.com/bobmcallan/finqa/internal/models"
)

// TransactionRequests builds requests for /v1/transactions/{accountId}.
type TransactionRequests struct {
	client      *Client
	incomePath  string
	expensePath string
	extractPath string
}

// Income records an income entry on accountID.
func (r *TransactionRequests) Income(ctx context.Context, accountID string, tx models.TransactionPayload, token string) (*Response, error) {
	return r.client.Send(ctx, http.MethodPost, r.incomePath, accountParams(accountID), tx, token)
}

// Expense records an expense entry on accountID.
func (r *TransactionRequests) Expense(ctx context.Context, accountID string, tx models.TransactionPayload, token string) (*Response, error) {
	return r.client.Send(ctx, http.MethodPost, r.expensePath, accountParams(accountID), tx, token)
}

// Extract lists the entries of accountID.
func (r *TransactionRequests) Extract(ctx context.Context, accountID, token string) (*Response, error) {
	return r.client.Send(ctx, http.MethodGet, r.extractPath, accountParams(accountID), nil, token)
}

func accountParams(accountID string) map[string]string {
	return map[string]string{"accountId": accountID}
}
