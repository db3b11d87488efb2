package models

// Account is an account as rendered by the API. Monetary fields are
// pre-formatted currency strings ("R$ 0,00").
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// AccountPayload is the body of POST /v1/accounts/. A nil Balance leaves the
// field out of the body.
type AccountPayload struct {
	Name    string   `json:"name,omitempty"`
	Balance *float64 `json:"balance,omitempty"`
}

// Amount returns a pointer to v for the optional monetary payload fields.
func Amount(v float64) *float64 {
	return &v
}

// Balance is the body of GET /v1/accounts/{accountId}/balance.
type Balance struct {
	Balance string `json:"balance"`
}
