package api

import (
	"math"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/bobmcallan/finqa/internal/contracts"
	"github.com/bobmcallan/finqa/internal/factories"
	"github.com/bobmcallan/finqa/internal/generators"
	"github.com/bobmcallan/finqa/internal/models"
	"github.com/bobmcallan/finqa/tests/common"
)

// TransactionsSuite works on a fresh account with fresh categories so ledger
// assertions do not depend on other tests.
type TransactionsSuite struct {
	suite.Suite
	env     *common.Env
	token   string
	account models.Account
	income  models.Category
	expense models.Category
}

func TestTransactionsSuite(t *testing.T) {
	suite.Run(t, new(TransactionsSuite))
}

func (s *TransactionsSuite) SetupTest() {
	s.env = common.NewEnv(s.T())
	if s.env == nil {
		return
	}
	s.token = s.env.Token("valid")
	ctx := s.env.Context()
	c := s.env.Client()

	resp, err := c.Accounts().Create(ctx, factories.NewAccount(7.5), s.token)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, resp.String())
	s.Require().NoError(resp.JSON(&s.account))

	resp, err = c.Categories().Create(ctx, factories.NewIncomeCategory(), s.token)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, resp.String())
	s.Require().NoError(resp.JSON(&s.income))

	resp, err = c.Categories().Create(ctx, factories.NewExpenseCategory(), s.token)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, resp.String())
	s.Require().NoError(resp.JSON(&s.expense))
}

func (s *TransactionsSuite) TearDownTest() {
	s.env.Cleanup()
}

// value draws a transaction amount with two decimal places.
func value() float64 {
	return math.Round(factories.TransactionValue()*100) / 100
}

func (s *TransactionsSuite) TestIncome_Valid() {
	v := value()
	resp, err := s.env.Client().Transactions().Income(s.env.Context(), s.account.ID,
		models.TransactionPayload{Value: models.Amount(v), Category: s.income.Name}, s.token)
	s.Require().NoError(err)
	common.AssertContract(s.T(), resp, http.StatusCreated, contracts.Transaction)

	var tx models.Transaction
	s.Require().NoError(resp.JSON(&tx))
	s.Equal(generators.FormatCurrency(v), tx.Value)
	s.Equal(s.income, tx.Category)
	s.NotEmpty(tx.CreatedAt)
}

func (s *TransactionsSuite) TestExpense_Valid() {
	v := value()
	resp, err := s.env.Client().Transactions().Expense(s.env.Context(), s.account.ID,
		models.TransactionPayload{Value: models.Amount(v), Category: s.expense.Name}, s.token)
	s.Require().NoError(err)
	common.AssertContract(s.T(), resp, http.StatusCreated, contracts.Transaction)

	var tx models.Transaction
	s.Require().NoError(resp.JSON(&tx))
	s.Equal(generators.FormatCurrency(v), tx.Value)
	s.Equal(s.expense, tx.Category)
}

func (s *TransactionsSuite) TestIncome_ExpenseCategory() {
	account, err := s.env.Fixtures().Account("valid")
	s.Require().NoError(err)
	category, err := s.env.Fixtures().Category("valid expense")
	s.Require().NoError(err)

	resp, err := s.env.Client().Transactions().Income(s.env.Context(), account.ID, factories.ValidTransaction(category.Name), s.token)
	s.Require().NoError(err)
	s.env.AssertAPIError(s.T(), resp, "incorrect_income_category")
}

func (s *TransactionsSuite) TestExpense_IncomeCategory() {
	account, err := s.env.Fixtures().Account("valid")
	s.Require().NoError(err)
	category, err := s.env.Fixtures().Category("valid income")
	s.Require().NoError(err)

	resp, err := s.env.Client().Transactions().Expense(s.env.Context(), account.ID, factories.ValidTransaction(category.Name), s.token)
	s.Require().NoError(err)
	s.env.AssertAPIError(s.T(), resp, "incorrect_expense_category")
}

func (s *TransactionsSuite) TestInexistentCategory() {
	category, err := s.env.Fixtures().Category("inexistent")
	s.Require().NoError(err)

	resp, err := s.env.Client().Transactions().Income(s.env.Context(), s.account.ID, factories.ValidTransaction(category.Name), s.token)
	s.Require().NoError(err)
	s.env.AssertAPIError(s.T(), resp, "category_not_found")
}

func (s *TransactionsSuite) TestInvalidValue() {
	resp, err := s.env.Client().Transactions().Income(s.env.Context(), s.account.ID, factories.InvalidTransaction(s.income.Name), s.token)
	s.Require().NoError(err)
	s.env.AssertAPIError(s.T(), resp, "invalid_transaction_value")

	resp, err = s.env.Client().Transactions().Expense(s.env.Context(), s.account.ID, factories.InvalidTransaction(s.expense.Name), s.token)
	s.Require().NoError(err)
	s.env.AssertAPIError(s.T(), resp, "invalid_transaction_value")
}

func (s *TransactionsSuite) TestInexistentAccount() {
	account, err := s.env.Fixtures().Account("inexistent")
	s.Require().NoError(err)
	tx := factories.ValidTransaction(s.income.Name)

	resp, err := s.env.Client().Transactions().Income(s.env.Context(), account.ID, tx, s.token)
	s.Require().NoError(err)
	s.env.AssertAPIError(s.T(), resp, "account_not_found")

	resp, err = s.env.Client().Transactions().Extract(s.env.Context(), account.ID, s.token)
	s.Require().NoError(err)
	s.env.AssertAPIError(s.T(), resp, "account_not_found")
}

func (s *TransactionsSuite) TestTokenErrors() {
	for profile, want := range tokenCases {
		s.Run(profile, func() {
			token := tokenValue(s.T(), s.env, profile)

			resp, err := s.env.Client().Transactions().Income(s.env.Context(), s.account.ID, factories.ValidTransaction(s.income.Name), token)
			s.Require().NoError(err)
			s.env.AssertTokenError(s.T(), resp, want)

			resp, err = s.env.Client().Transactions().Expense(s.env.Context(), s.account.ID, factories.ValidTransaction(s.expense.Name), token)
			s.Require().NoError(err)
			s.env.AssertTokenError(s.T(), resp, want)

			resp, err = s.env.Client().Transactions().Extract(s.env.Context(), s.account.ID, token)
			s.Require().NoError(err)
			s.env.AssertTokenError(s.T(), resp, want)
		})
	}
}

func (s *TransactionsSuite) TestExtract_LedgerAndBalance() {
	ctx := s.env.Context()
	txs := s.env.Client().Transactions()

	in, out := value(), value()
	resp, err := txs.Income(ctx, s.account.ID, models.TransactionPayload{Value: models.Amount(in), Category: s.income.Name}, s.token)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp, err = txs.Expense(ctx, s.account.ID, models.TransactionPayload{Value: models.Amount(out), Category: s.expense.Name}, s.token)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp, err = txs.Extract(ctx, s.account.ID, s.token)
	s.Require().NoError(err)
	common.AssertContract(s.T(), resp, http.StatusOK, contracts.TransactionList)

	var extract []models.Transaction
	s.Require().NoError(resp.JSON(&extract))
	s.Require().Len(extract, 2)
	s.Equal(generators.FormatCurrency(in), extract[0].Value)
	s.Equal(generators.FormatCurrency(out), extract[1].Value)

	want := decimal.NewFromFloat(7.5).Add(decimal.NewFromFloat(in)).Sub(decimal.NewFromFloat(out))
	resp, err = s.env.Client().Accounts().Balance(ctx, s.account.ID, s.token)
	s.Require().NoError(err)
	var balance models.Balance
	s.Require().NoError(resp.JSON(&balance))
	s.Equal(generators.FormatDecimal(want), balance.Balance)

	guard := s.env.OutputGuard()
	guard.AssertContains(resp.String(), generators.FormatDecimal(want))
	s.Require().NoError(guard.SaveResult("extract", resp.String()))
}

func (s *TransactionsSuite) TestExtract_EmptyAccount() {
	resp, err := s.env.Client().Transactions().Extract(s.env.Context(), s.account.ID, s.token)
	s.Require().NoError(err)
	common.AssertContract(s.T(), resp, http.StatusOK, contracts.TransactionList)

	list, err := resp.JSONList()
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *TransactionsSuite) TestExtract_SeededAccount() {
	account, err := s.env.Fixtures().Account("valid")
	s.Require().NoError(err)

	resp, err := s.env.Client().Transactions().Extract(s.env.Context(), account.ID, s.token)
	s.Require().NoError(err)
	common.AssertContract(s.T(), resp, http.StatusOK, contracts.TransactionList)

	list, err := resp.JSONList()
	s.Require().NoError(err)
	s.NotEmpty(list)
}
