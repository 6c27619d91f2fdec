package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/alert"
	v1 "github.com/spendguard/backend/internal/controllers/v1"
	"github.com/spendguard/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsExpenses() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	expense := suite.createTestExpense(v1.ExpenseEditable{
		PersonEmail: "morre@example.com",
		Category:    "Groceries",
		Amount:      decimal.NewFromFloat(14.37),
		Date:        "2025-12-01",
		Note:        "lunch",
	})

	suite.Assert().True(expense.Amount.Equal(decimal.NewFromFloat(14.37)))
	suite.Assert().Equal("lunch", expense.Note)
	suite.Assert().Nil(expense.Alert, "without a budget no alert is raised")
}

func (suite *TestSuiteStandard) TestCreateExpenseErrors() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"empty body", "", http.StatusBadRequest},
		{"broken json", `{ broken`, http.StatusBadRequest},
		{"missing person", map[string]any{"category": "Groceries", "amount": 10}, http.StatusBadRequest},
		{"malformed date", v1.ExpenseEditable{PersonEmail: "morre@example.com", Category: "Groceries", Amount: decimal.NewFromInt(10), Date: "24.12.2025"}, http.StatusBadRequest},
		{"zero amount", v1.ExpenseEditable{PersonEmail: "morre@example.com", Category: "Groceries"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

			var response v1.ExpenseResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseTriggersAlert() {
	_ = suite.createTestBudget(v1.BudgetEditable{
		Category: "Groceries",
		Year:     2025,
		Month:    12,
		Amount:   decimal.NewFromInt(100),
	})

	expense := suite.createTestExpense(v1.ExpenseEditable{
		PersonEmail: "morre@example.com",
		Category:    "Groceries",
		Amount:      decimal.NewFromInt(120),
		Date:        "2025-12-01",
	})

	suite.Require().NotNil(expense.Alert)
	suite.Assert().Equal(alert.OverBudget, expense.Alert.Kind)
	suite.Assert().True(expense.Alert.Overage.Equal(decimal.NewFromInt(20)), "overage is %s", expense.Alert.Overage)
}

func (suite *TestSuiteStandard) TestCreateExpenseSharedMismatch() {
	forty := decimal.NewFromInt(40)
	fifty := decimal.NewFromInt(50)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", v1.ExpenseEditable{
		PersonEmail: "morre@example.com",
		Category:    "Groceries",
		Amount:      decimal.NewFromInt(100),
		SharedWith: []v1.ShareEditable{
			{Email: "morre@example.com", Share: &forty},
			{Email: "anna@example.com", Share: &fifty},
		},
	})

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
