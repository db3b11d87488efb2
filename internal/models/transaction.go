package models

// Transaction is an income or expense entry as rendered by the API.
type Transaction struct {
	ID        string   `json:"id"`
	Value     string   `json:"value"`
	CreatedAt string   `json:"created_at"`
	Category  Category `json:"category"`
}

// TransactionPayload is the body of POST /v1/transactions/{accountId}/income
// and /expense. Category is referenced by name.
type TransactionPayload struct {
	Value    *float64 `json:"value,omitempty"`
	Category string   `json:"category,omitempty"`
}
