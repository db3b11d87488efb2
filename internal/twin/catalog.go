package twin

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/bobmcallan/finqa/internal/fixtures"
)

// Error names. Each one must have a default_errors fixture.
const (
	errMissingBearerToken       = "missing_bearer_token"
	errExpiredBearerToken       = "expired_bearer_token"
	errInvalidTokenFormat       = "invalid_token_format"
	errInvalidTokenType         = "invalid_token_type"
	errMissingUserParameters    = "missing_user_parameters"
	errInvalidUserName          = "invalid_user_name"
	errInvalidUserEmail         = "invalid_user_email"
	errInvalidUserPassword      = "invalid_user_password"
	errEmailAlreadyExists       = "email_already_exists"
	errWrongCredentials         = "wrong_credentials"
	errMissingParameters        = "missing_parameters"
	errInvalidJSON              = "invalid_json"
	errInvalidAccountName       = "invalid_account_name"
	errInvalidAccountBalance    = "invalid_account_balance"
	errInexistentAccount        = "inexistent_account"
	errAccountNotFound          = "account_not_found"
	errInvalidCategoryName      = "invalid_category_name"
	errInvalidCategoryType      = "invalid_category_type"
	errCategoryAlreadyExists    = "category_already_exists"
	errCategoryNotFound         = "category_not_found"
	errInvalidTransactionValue  = "invalid_transaction_value"
	errIncorrectIncomeCategory  = "incorrect_income_category"
	errIncorrectExpenseCategory = "incorrect_expense_category"
)

var requiredErrors = []string{
	errMissingBearerToken, errExpiredBearerToken, errInvalidTokenFormat, errInvalidTokenType,
	errMissingUserParameters, errInvalidUserName, errInvalidUserEmail, errInvalidUserPassword,
	errEmailAlreadyExists, errWrongCredentials, errMissingParameters, errInvalidJSON,
	errInvalidAccountName, errInvalidAccountBalance, errInexistentAccount, errAccountNotFound,
	errInvalidCategoryName, errInvalidCategoryType, errCategoryAlreadyExists, errCategoryNotFound,
	errInvalidTransactionValue, errIncorrectIncomeCategory, errIncorrectExpenseCategory,
}

// Token errors are rendered as {msg}; everything else as {code, message, details}.
var tokenErrors = map[string]bool{
	errMissingBearerToken: true,
	errExpiredBearerToken: true,
	errInvalidTokenFormat: true,
	errInvalidTokenType:   true,
}

// Catalog maps error names to the responses the twin sends for them. It is
// read from default_errors so the twin and the suites share one oracle.
type Catalog struct {
	entries map[string]fixtures.ExpectedError
}

// NewCatalog builds the catalog from the store's default_errors and fails if
// any error the twin can raise is missing.
func NewCatalog(fx *fixtures.Store) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]fixtures.ExpectedError)}
	for _, rec := range fx.Records(fixtures.RootErrors) {
		var e fixtures.ExpectedError
		if err := rec.Decode(&e); err != nil {
			return nil, err
		}
		if e.Details == nil {
			e.Details = []string{}
		}
		for _, name := range rec.Profiles {
			c.entries[name] = e
		}
	}

	var missing []string
	for _, name := range requiredErrors {
		if _, ok := c.entries[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("default_errors for environment %q is missing: %s", fx.Environment(), strings.Join(missing, ", "))
	}
	return c, nil
}

// Write sends the response registered for name.
func (c *Catalog) Write(w http.ResponseWriter, name string) {
	e, ok := c.entries[name]
	if !ok {
		writeInternalError(w, fmt.Errorf("unregistered error %s", name))
		return
	}
	if tokenErrors[name] {
		WriteJSON(w, e.Status, e.TokenError())
		return
	}
	WriteJSON(w, e.Status, e.APIError())
}
