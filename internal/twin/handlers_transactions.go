package twin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bobmcallan/finqa/internal/common"
	"github.com/bobmcallan/finqa/internal/models"
)

type transactionRequest struct {
	Value    json.RawMessage `json:"value"`
	Category string          `json:"category"`
}

func (t *Twin) handleIncome(w http.ResponseWriter, r *http.Request) {
	t.createTransaction(w, r, KindIncome)
}

func (t *Twin) handleExpense(w http.ResponseWriter, r *http.Request) {
	t.createTransaction(w, r, KindExpense)
}

// createTransaction checks, in order: account, value, category, category kind.
func (t *Twin) createTransaction(w http.ResponseWriter, r *http.Request, kind string) {
	ownerID := common.ResolveUserID(r.Context())

	account, ok := t.store.Account(ownerID, chi.URLParam(r, "accountId"))
	if !ok {
		t.catalog.Write(w, errAccountNotFound)
		return
	}

	var req transactionRequest
	if !t.decode(w, r, &req) {
		return
	}

	value, ok := parseAmount(req.Value)
	if !ok || !value.IsPositive() {
		t.catalog.Write(w, errInvalidTransactionValue)
		return
	}

	category, ok := t.store.CategoryByName(ownerID, req.Category)
	if !ok {
		t.catalog.Write(w, errCategoryNotFound)
		return
	}
	if category.Type != kind {
		if kind == KindIncome {
			t.catalog.Write(w, errIncorrectIncomeCategory)
		} else {
			t.catalog.Write(w, errIncorrectExpenseCategory)
		}
		return
	}

	tx := Transaction{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		Kind:      kind,
		Value:     value,
		Category:  category,
		CreatedAt: t.now(),
	}
	if _, err := t.store.AddTransaction(tx); err != nil {
		t.catalog.Write(w, errAccountNotFound)
		return
	}

	WriteJSON(w, http.StatusCreated, transactionView(tx))
}

func (t *Twin) handleExtract(w http.ResponseWriter, r *http.Request) {
	account, ok := t.store.Account(common.ResolveUserID(r.Context()), chi.URLParam(r, "accountId"))
	if !ok {
		t.catalog.Write(w, errAccountNotFound)
		return
	}

	txs := t.store.Transactions(account.ID)
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, transactionView(tx))
	}
	WriteJSON(w, http.StatusOK, out)
}
