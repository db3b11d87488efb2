package twin

import (
	"errors"
	"sync"
)

// Store errors
var (
	ErrEmailExists      = errors.New("email already registered")
	ErrCategoryExists   = errors.New("category already exists")
	ErrAccountNotFound  = errors.New("account not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// MemoryStore holds all twin state in memory. Slices keep creation order.
type MemoryStore struct {
	mu sync.RWMutex

	users        map[string]User
	userOrder    []string
	usersByEmail map[string]string

	accounts     map[string]Account
	accountOrder []string

	categories    map[string]Category
	categoryOrder []string

	transactions map[string][]Transaction
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.Reset()
	return s
}

// Reset drops all state.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]User)
	s.userOrder = nil
	s.usersByEmail = make(map[string]string)
	s.accounts = make(map[string]Account)
	s.accountOrder = nil
	s.categories = make(map[string]Category)
	s.categoryOrder = nil
	s.transactions = make(map[string][]Transaction)
}

// CreateUser stores u. E-mails are unique.
func (s *MemoryStore) CreateUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByEmail[u.Email]; ok {
		return ErrEmailExists
	}
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	s.usersByEmail[u.Email] = u.ID
	return nil
}

// User returns the user with id.
func (s *MemoryStore) User(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// UserByEmail returns the user registered with email.
func (s *MemoryStore) UserByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usersByEmail[email]
	if !ok {
		return User{}, false
	}
	return s.users[id], true
}

// Users returns every user in registration order.
func (s *MemoryStore) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	return out
}

// CreateAccount stores a.
func (s *MemoryStore) CreateAccount(a Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.ID] = a
	s.accountOrder = append(s.accountOrder, a.ID)
}

// Account returns the account id if it belongs to ownerID.
func (s *MemoryStore) Account(ownerID, id string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok || a.OwnerID != ownerID {
		return Account{}, false
	}
	return a, true
}

// Accounts returns the accounts of ownerID in creation order.
func (s *MemoryStore) Accounts(ownerID string) []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Account{}
	for _, id := range s.accountOrder {
		if a := s.accounts[id]; a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out
}

// CreateCategory stores c. Names are unique per owner.
func (s *MemoryStore) CreateCategory(c Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.OwnerID == c.OwnerID && existing.Name == c.Name {
			return ErrCategoryExists
		}
	}
	s.categories[c.ID] = c
	s.categoryOrder = append(s.categoryOrder, c.ID)
	return nil
}

// CategoryByName returns the category of ownerID called name.
func (s *MemoryStore) CategoryByName(ownerID, name string) (Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.OwnerID == ownerID && c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Category returns the category id if it belongs to ownerID.
func (s *MemoryStore) Category(ownerID, id string) (Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok || c.OwnerID != ownerID {
		return Category{}, false
	}
	return c, true
}

// Categories returns the categories of ownerID in creation order.
func (s *MemoryStore) Categories(ownerID string) []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Category{}
	for _, id := range s.categoryOrder {
		if c := s.categories[id]; c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out
}

// AddTransaction appends tx to its account and updates the account totals in
// the same critical section. It returns the updated account.
func (s *MemoryStore) AddTransaction(tx Transaction) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[tx.AccountID]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	if _, ok := s.categories[tx.Category.ID]; !ok {
		return Account{}, ErrCategoryNotFound
	}
	switch tx.Kind {
	case KindIncome:
		a.Income = a.Income.Add(tx.Value)
	case KindExpense:
		a.Expense = a.Expense.Add(tx.Value)
	}
	s.accounts[a.ID] = a
	s.transactions[a.ID] = append(s.transactions[a.ID], tx)
	return a, nil
}

// Transactions returns the entries of accountID in insertion order.
func (s *MemoryStore) Transactions(accountID string) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txs := s.transactions[accountID]
	out := make([]Transaction, len(txs))
	copy(out, txs)
	return out
}
