package twin

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds. They match the category type codes.
const (
	KindIncome  = "E"
	KindExpense = "S"
)

// User is a registered user. Only the bcrypt hash of the password is kept.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Account is a ledger owned by one user. Balance is derived from the
// opening balance and the running totals.
type Account struct {
	ID        string
	OwnerID   string
	Name      string
	Opening   decimal.Decimal
	Income    decimal.Decimal
	Expense   decimal.Decimal
	CreatedAt time.Time
}

// Balance returns opening + income - expense.
func (a Account) Balance() decimal.Decimal {
	return a.Opening.Add(a.Income).Sub(a.Expense)
}

// Category classifies transactions of one user as income (E) or expense (S).
type Category struct {
	ID      string
	OwnerID string
	Name    string
	Type    string
}

// Transaction is one income or expense entry. Value is always positive; the
// kind decides its sign in the balance.
type Transaction struct {
	ID        string
	AccountID string
	Kind      string
	Value     decimal.Decimal
	Category  Category
	CreatedAt time.Time
}
