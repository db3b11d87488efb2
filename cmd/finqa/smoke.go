package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bobmcallan/finqa/internal/app"
	"github.com/bobmcallan/finqa/internal/clients/finances"
	"github.com/bobmcallan/finqa/internal/contracts"
	"github.com/bobmcallan/finqa/internal/factories"
	"github.com/bobmcallan/finqa/internal/models"
	"github.com/bobmcallan/finqa/internal/tokens"
)

// smoke walks the happy path once with fresh entities and reports each step.
type smoke struct {
	out    io.Writer
	failed int
}

// check reports one step: the call must succeed with status and its body
// must satisfy schema.
func (s *smoke) check(step string, resp *finances.Response, err error, status int, schema contracts.Schema) bool {
	if err != nil {
		s.failed++
		fail(s.out, step, err.Error())
		return false
	}
	if resp.StatusCode != status {
		s.failed++
		fail(s.out, step, fmt.Sprintf("status %d, want %d\n%s", resp.StatusCode, status, resp.Body()))
		return false
	}
	if res := contracts.Validate(schema, resp.Body()); !res.OK {
		s.failed++
		fail(s.out, step, res.String())
		return false
	}
	pass(s.out, step)
	return true
}

// runSmoke returns the number of failed steps. Later steps are skipped once a
// step they depend on fails.
func runSmoke(ctx context.Context, a *app.App, out io.Writer) int {
	s := &smoke{out: out}
	c := a.Client
	header(out, fmt.Sprintf("smoke %s (%s)", a.Config.Environment, a.BaseURL))

	user := factories.NewUser()
	resp, err := c.Users().Create(ctx, user)
	if !s.check("POST /v1/users", resp, err, http.StatusCreated, contracts.User) {
		return s.failed
	}

	creds := models.Credentials{Email: user.Email, Password: user.Password}
	resp, err = c.Auth().Login(ctx, creds)
	if !s.check("POST /v1/auth/login", resp, err, http.StatusCreated, contracts.Login) {
		return s.failed
	}
	var login models.Login
	if err := resp.JSON(&login); err != nil {
		s.failed++
		fail(out, "decode login", err.Error())
		return s.failed
	}
	token := tokens.Bearer(login.Access)

	resp, err = c.Auth().Me(ctx, token)
	s.check("GET /v1/auth/me", resp, err, http.StatusOK, contracts.User)

	resp, err = c.Accounts().Create(ctx, factories.NewAccount(0), token)
	if !s.check("POST /v1/accounts", resp, err, http.StatusCreated, contracts.Account) {
		return s.failed
	}
	var account models.Account
	_ = resp.JSON(&account)

	resp, err = c.Accounts().List(ctx, token)
	s.check("GET /v1/accounts", resp, err, http.StatusOK, contracts.AccountList)

	income := factories.NewIncomeCategory()
	resp, err = c.Categories().Create(ctx, income, token)
	incomeOK := s.check("POST /v1/categories (income)", resp, err, http.StatusCreated, contracts.Category)

	expense := factories.NewExpenseCategory()
	resp, err = c.Categories().Create(ctx, expense, token)
	expenseOK := s.check("POST /v1/categories (expense)", resp, err, http.StatusCreated, contracts.Category)

	resp, err = c.Categories().List(ctx, token)
	s.check("GET /v1/categories", resp, err, http.StatusOK, contracts.CategoryList)

	if incomeOK {
		resp, err = c.Transactions().Income(ctx, account.ID, factories.ValidTransaction(income.Name), token)
		s.check("POST /v1/transactions/{accountId}/income", resp, err, http.StatusCreated, contracts.Transaction)
	}
	if expenseOK {
		resp, err = c.Transactions().Expense(ctx, account.ID, factories.ValidTransaction(expense.Name), token)
		s.check("POST /v1/transactions/{accountId}/expense", resp, err, http.StatusCreated, contracts.Transaction)
	}

	resp, err = c.Accounts().Balance(ctx, account.ID, token)
	s.check("GET /v1/accounts/{accountId}/balance", resp, err, http.StatusOK, contracts.Balance)

	resp, err = c.Transactions().Extract(ctx, account.ID, token)
	s.check("GET /v1/transactions/{accountId}/extract", resp, err, http.StatusOK, contracts.TransactionList)

	return s.failed
}
