package twin

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_UniqueEmail(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.CreateUser(User{ID: "u1", Email: "a@example.com"}))
	assert.ErrorIs(t, s.CreateUser(User{ID: "u2", Email: "a@example.com"}), ErrEmailExists)

	u, ok := s.UserByEmail("a@example.com")
	require.True(t, ok)
	assert.Equal(t, "u1", u.ID)
}

func TestMemoryStore_OwnershipScopesLookups(t *testing.T) {
	s := NewMemoryStore()
	s.CreateAccount(Account{ID: "a1", OwnerID: "u1", Name: "Main"})
	require.NoError(t, s.CreateCategory(Category{ID: "c1", OwnerID: "u1", Name: "Food", Type: KindExpense}))

	_, ok := s.Account("u2", "a1")
	assert.False(t, ok)
	_, ok = s.Category("u2", "c1")
	assert.False(t, ok)
	_, ok = s.CategoryByName("u2", "Food")
	assert.False(t, ok)

	assert.Empty(t, s.Accounts("u2"))
	assert.Len(t, s.Accounts("u1"), 1)

	// Same name is fine for another owner.
	assert.NoError(t, s.CreateCategory(Category{ID: "c2", OwnerID: "u2", Name: "Food", Type: KindExpense}))
	assert.ErrorIs(t, s.CreateCategory(Category{ID: "c3", OwnerID: "u1", Name: "Food", Type: KindIncome}), ErrCategoryExists)
}

func TestMemoryStore_AddTransactionUpdatesTotals(t *testing.T) {
	s := NewMemoryStore()
	s.CreateAccount(Account{ID: "a1", OwnerID: "u1", Opening: decimal.NewFromInt(10)})
	income := Category{ID: "c1", OwnerID: "u1", Name: "Salary", Type: KindIncome}
	expense := Category{ID: "c2", OwnerID: "u1", Name: "Food", Type: KindExpense}
	require.NoError(t, s.CreateCategory(income))
	require.NoError(t, s.CreateCategory(expense))

	_, err := s.AddTransaction(Transaction{ID: "t1", AccountID: "a1", Kind: KindIncome, Value: decimal.RequireFromString("5.25"), Category: income})
	require.NoError(t, err)
	a, err := s.AddTransaction(Transaction{ID: "t2", AccountID: "a1", Kind: KindExpense, Value: decimal.RequireFromString("2.10"), Category: expense})
	require.NoError(t, err)

	assert.Equal(t, "5.25", a.Income.StringFixed(2))
	assert.Equal(t, "2.10", a.Expense.StringFixed(2))
	assert.Equal(t, "13.15", a.Balance().StringFixed(2))

	txs := s.Transactions("a1")
	require.Len(t, txs, 2)
	assert.Equal(t, "t1", txs[0].ID)
	assert.Equal(t, "t2", txs[1].ID)
}

func TestMemoryStore_AddTransactionUnknownRefs(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.AddTransaction(Transaction{AccountID: "nope"})
	assert.ErrorIs(t, err, ErrAccountNotFound)

	s.CreateAccount(Account{ID: "a1", OwnerID: "u1"})
	_, err = s.AddTransaction(Transaction{AccountID: "a1", Category: Category{ID: "nope"}})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestMemoryStore_ConcurrentTransactions(t *testing.T) {
	s := NewMemoryStore()
	s.CreateAccount(Account{ID: "a1", OwnerID: "u1"})
	cat := Category{ID: "c1", OwnerID: "u1", Name: "Salary", Type: KindIncome}
	require.NoError(t, s.CreateCategory(cat))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddTransaction(Transaction{AccountID: "a1", Kind: KindIncome, Value: decimal.RequireFromString("0.10"), Category: cat})
		}()
	}
	wg.Wait()

	a, ok := s.Account("u1", "a1")
	require.True(t, ok)
	assert.Equal(t, "5.00", a.Balance().StringFixed(2))
	assert.Len(t, s.Transactions("a1"), 50)
}

func TestMemoryStore_Reset(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.CreateUser(User{ID: "u1", Email: "a@example.com"}))
	s.Reset()
	assert.Empty(t, s.Users())
	_, ok := s.UserByEmail("a@example.com")
	assert.False(t, ok)
}
