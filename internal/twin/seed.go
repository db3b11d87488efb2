package twin

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/bobmcallan/finqa/internal/fixtures"
)

// Seed profiles: users, accounts and categories tagged "valid" and
// transactions tagged "seed" exist before the first request.
const (
	seedProfile            = "valid"
	seedTransactionProfile = "seed"
)

// Seed loads the fixture records the suites expect to find on the server.
// Accounts and categories are owned by the user whose e-mail is in their
// owner field. Records without an id get a fresh one.
func (t *Twin) Seed(fx *fixtures.Store) error {
	users, err := decodeMatching[fixtures.User](fx, fixtures.RootUsers, seedProfile)
	if err != nil {
		return err
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password of %s: %w", u.Email, err)
		}
		err = t.store.CreateUser(User{
			ID:           idOrNew(u.ID),
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: hash,
			CreatedAt:    t.now(),
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	accounts, err := decodeMatching[fixtures.Account](fx, fixtures.RootAccounts, seedProfile)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		owner, ok := t.store.UserByEmail(a.Owner)
		if !ok {
			return fmt.Errorf("seed account %q: owner %q is not a seeded user", a.Name, a.Owner)
		}
		t.store.CreateAccount(Account{
			ID:        idOrNew(a.ID),
			OwnerID:   owner.ID,
			Name:      a.Name,
			Opening:   decimal.NewFromFloat(a.Balance),
			CreatedAt: t.now(),
		})
	}

	categories, err := decodeMatching[fixtures.Category](fx, fixtures.RootCategories, seedProfile)
	if err != nil {
		return err
	}
	for _, c := range categories {
		owner, ok := t.store.UserByEmail(c.Owner)
		if !ok {
			return fmt.Errorf("seed category %q: owner %q is not a seeded user", c.Name, c.Owner)
		}
		err := t.store.CreateCategory(Category{
			ID:      idOrNew(c.ID),
			OwnerID: owner.ID,
			Name:    c.Name,
			Type:    c.Type,
		})
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}

	txs, err := decodeMatching[fixtures.Transaction](fx, fixtures.RootTransactions, seedTransactionProfile)
	if err != nil {
		return err
	}
	for _, tx := range txs {
		acc, ok := t.findAccount(tx.Account)
		if !ok {
			return fmt.Errorf("seed transaction %s: unknown account %s", tx.ID, tx.Account)
		}
		cat, ok := t.store.Category(acc.OwnerID, tx.Category)
		if !ok {
			return fmt.Errorf("seed transaction %s: unknown category %s", tx.ID, tx.Category)
		}
		_, err := t.store.AddTransaction(Transaction{
			ID:        idOrNew(tx.ID),
			AccountID: acc.ID,
			Kind:      cat.Type,
			Value:     decimal.NewFromFloat(tx.Value),
			Category:  cat,
			CreatedAt: t.now(),
		})
		if err != nil {
			return fmt.Errorf("seed transaction %s: %w", tx.ID, err)
		}
	}

	t.logger.Debug().
		Int("users", len(users)).
		Int("accounts", len(accounts)).
		Int("categories", len(categories)).
		Int("transactions", len(txs)).
		Str("environment", fx.Environment()).
		Msg("Twin seeded")
	return nil
}

// findAccount looks an account up by id across all owners.
func (t *Twin) findAccount(id string) (Account, bool) {
	for _, u := range t.store.Users() {
		if a, ok := t.store.Account(u.ID, id); ok {
			return a, true
		}
	}
	return Account{}, false
}

func decodeMatching[T any](fx *fixtures.Store, root, profile string) ([]T, error) {
	records := fx.Match(root, profile)
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

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
