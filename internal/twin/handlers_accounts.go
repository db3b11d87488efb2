package twin

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/finqa/internal/common"
	"github.com/bobmcallan/finqa/internal/models"
)

type accountRequest struct {
	Name    string          `json:"name"`
	Balance json.RawMessage `json:"balance"`
}

// parseAmount reads a JSON number exactly. A missing or null value is zero.
func parseAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func (t *Twin) handleAccountCreate(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !t.decode(w, r, &req) {
		return
	}

	if !validName(strings.TrimSpace(req.Name)) {
		t.catalog.Write(w, errInvalidAccountName)
		return
	}
	opening, ok := parseAmount(req.Balance)
	if !ok || opening.IsNegative() {
		t.catalog.Write(w, errInvalidAccountBalance)
		return
	}

	account := Account{
		ID:        uuid.NewString(),
		OwnerID:   common.ResolveUserID(r.Context()),
		Name:      req.Name,
		Opening:   opening,
		CreatedAt: t.now(),
	}
	t.store.CreateAccount(account)

	WriteJSON(w, http.StatusCreated, accountView(account))
}

func (t *Twin) handleAccountList(w http.ResponseWriter, r *http.Request) {
	accounts := t.store.Accounts(common.ResolveUserID(r.Context()))
	out := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountView(a))
	}
	WriteJSON(w, http.StatusOK, out)
}

func (t *Twin) handleAccountBalance(w http.ResponseWriter, r *http.Request) {
	account, ok := t.store.Account(common.ResolveUserID(r.Context()), chi.URLParam(r, "accountId"))
	if !ok {
		t.catalog.Write(w, errInexistentAccount)
		return
	}
	WriteJSON(w, http.StatusOK, models.Balance{Balance: accountView(account).Balance})
}
