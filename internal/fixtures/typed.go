package fixtures

import (
	"github.com/bobmcallan/finqa/internal/models"
)

// Root keys of the fixture file.
const (
	RootUsers        = "users"
	RootAccounts     = "accounts"
	RootCategories   = "categories"
	RootTokens       = "tokens"
	RootTransactions = "transactions"
	RootErrors       = "default_errors"
)

// User is a user fixture. Fields may be deliberately missing or malformed.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials returns the login body for the user.
func (u User) Credentials() models.Credentials {
	return models.Credentials{Email: u.Email, Password: u.Password}
}

// Payload returns the registration body for the user.
func (u User) Payload() models.UserPayload {
	return models.UserPayload{Name: u.Name, Email: u.Email, Password: u.Password}
}

// Account is an account fixture. Owner is the e-mail of the owning user.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Owner   string  `json:"owner"`
}

// Payload returns the creation body for the account.
func (a Account) Payload() models.AccountPayload {
	return models.AccountPayload{Name: a.Name, Balance: models.Amount(a.Balance)}
}

// Category is a category fixture. Type is the creation code (E/S) and Enum
// the label the API renders for it.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Enum  string `json:"enum"`
	Owner string `json:"owner"`
}

// Payload returns the creation body for the category.
func (c Category) Payload() models.CategoryPayload {
	return models.CategoryPayload{Name: c.Name, Type: c.Type}
}

// Token is a pre-built Authorization header value, passed verbatim.
type Token struct {
	Value string `json:"value"`
}

// Transaction is a ledger entry used to seed replicas of the API.
type Transaction struct {
	ID       string  `json:"id"`
	Account  string  `json:"account"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// ExpectedError is the oracle for a failure-path assertion.
type ExpectedError struct {
	Status  int      `json:"status"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// APIError renders the expectation as a validation/business error body.
func (e ExpectedError) APIError() models.APIError {
	details := make([]string, len(e.Details))
	copy(details, e.Details)
	return models.APIError{Code: e.Code, Message: e.Message, Details: details}
}

// TokenError renders the expectation as an authentication error body.
func (e ExpectedError) TokenError() models.TokenError {
	return models.TokenError{Msg: e.Message}
}

func resolveAs[T any](s *Store, root, profiles string) (T, error) {
	var v T
	rec, err := s.Resolve(root, profiles)
	if err != nil {
		return v, err
	}
	if err := rec.Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

// User resolves a users fixture.
func (s *Store) User(profiles string) (User, error) {
	return resolveAs[User](s, RootUsers, profiles)
}

// Account resolves an accounts fixture.
func (s *Store) Account(profiles string) (Account, error) {
	return resolveAs[Account](s, RootAccounts, profiles)
}

// Category resolves a categories fixture.
func (s *Store) Category(profiles string) (Category, error) {
	return resolveAs[Category](s, RootCategories, profiles)
}

// Token resolves a tokens fixture.
func (s *Store) Token(profiles string) (Token, error) {
	return resolveAs[Token](s, RootTokens, profiles)
}

// Transaction resolves a transactions fixture.
func (s *Store) Transaction(profiles string) (Transaction, error) {
	return resolveAs[Transaction](s, RootTransactions, profiles)
}

// ExpectedError resolves a default_errors fixture.
func (s *Store) ExpectedError(profiles string) (ExpectedError, error) {
	return resolveAs[ExpectedError](s, RootErrors, profiles)
}

// DecodeAll decodes every record under root into a slice of T.
func DecodeAll[T any](s *Store, root string) ([]T, error) {
	records := s.Records(root)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		var v T
		if err := rec.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
