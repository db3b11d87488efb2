package twin

import (
	"net/http"

	"github.com/bobmcallan/finqa/internal/generators"
	"github.com/bobmcallan/finqa/internal/models"
)

func userView(u User) models.User {
	return models.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func accountView(a Account) models.Account {
	return models.Account{
		ID:      a.ID,
		Name:    a.Name,
		Income:  generators.FormatDecimal(a.Income),
		Expense: generators.FormatDecimal(a.Expense),
		Balance: generators.FormatDecimal(a.Balance()),
	}
}

func categoryView(c Category) models.Category {
	return models.Category{ID: c.ID, Name: c.Name, Type: models.CategoryLabel(c.Type)}
}

func transactionView(tx Transaction) models.Transaction {
	return models.Transaction{
		ID:        tx.ID,
		Value:     generators.FormatDecimal(tx.Value),
		CreatedAt: tx.CreatedAt.UTC().Format(http.TimeFormat),
		Category:  categoryView(tx.Category),
	}
}
