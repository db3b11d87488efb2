// Package factories builds request payloads with fresh random names for the
// success paths of the suites.
package factories

import (
	"fmt"

	"github.com/bobmcallan/finqa/internal/generators"
	"github.com/bobmcallan/finqa/internal/models"
)

// DefaultPassword is the password given to every generated user.
const DefaultPassword = "123456"

// Field names accepted by NewUserWithout.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// suffixSpan bounds the random suffix of generated names and e-mails.
const suffixSpan = 1_000_000_000

func suffix() int {
	return generators.RandomInt(suffixSpan)
}

// Name returns a temporary QA name, QATMP<n>.
func Name() string {
	return fmt.Sprintf("QATMP%d", suffix())
}

// NewUser returns a complete registration payload.
func NewUser() models.UserPayload {
	n := suffix()
	return models.UserPayload{
		Name:     fmt.Sprintf("QATMP%d", n),
		Email:    fmt.Sprintf("qa_tmp_%d@example.com", n),
		Password: DefaultPassword,
	}
}

// NewUserWithout returns a registration payload with field left out.
func NewUserWithout(field string) models.UserPayload {
	u := NewUser()
	switch field {
	case FieldName:
		u.Name = ""
	case FieldEmail:
		u.Email = ""
	case FieldPassword:
		u.Password = ""
	default:
		panic(fmt.Sprintf("factories: unknown user field %q", field))
	}
	return u
}

// NewAccount returns an account payload with the given opening balance.
func NewAccount(balance float64) models.AccountPayload {
	return models.AccountPayload{Name: Name(), Balance: models.Amount(balance)}
}

// NewIncomeCategory returns a category payload of type E.
func NewIncomeCategory() models.CategoryPayload {
	return models.CategoryPayload{Name: Name(), Type: models.CategoryIncome}
}

// NewExpenseCategory returns a category payload of type S.
func NewExpenseCategory() models.CategoryPayload {
	return models.CategoryPayload{Name: Name(), Type: models.CategoryExpense}
}

// TransactionValue draws a transaction amount in [1, 3).
func TransactionValue() float64 {
	return generators.RandomFloatBetween(1, 2)
}

// ValidTransaction returns a transaction payload with a positive value.
func ValidTransaction(categoryName string) models.TransactionPayload {
	return models.TransactionPayload{Value: models.Amount(TransactionValue()), Category: categoryName}
}

// InvalidTransaction returns a transaction payload with a negative value.
func InvalidTransaction(categoryName string) models.TransactionPayload {
	return models.TransactionPayload{Value: models.Amount(-TransactionValue()), Category: categoryName}
}
