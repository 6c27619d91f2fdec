package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/spendguard/backend/internal/controllers/v1"
	"github.com/spendguard/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsBudgets() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSetBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{
		Category: "Groceries",
		Year:     2025,
		Month:    12,
		Amount:   decimal.NewFromInt(100),
	})

	suite.Assert().True(budget.Amount.Equal(decimal.NewFromInt(100)))
	suite.Assert().False(budget.AlertThreshold.Valid, "without a threshold the default applies")
}

func (suite *TestSuiteStandard) TestSetBudgetReplaces() {
	first := suite.createTestBudget(v1.BudgetEditable{
		Category: "Groceries",
		Year:     2025,
		Month:    12,
		Amount:   decimal.NewFromInt(100),
	})

	second := suite.createTestBudget(v1.BudgetEditable{
		Category: "Groceries",
		Year:     2025,
		Month:    12,
		Amount:   decimal.NewFromInt(250),
	})

	suite.Assert().Equal(first.ID, second.ID, "setting the budget again must replace, not duplicate")
	suite.Assert().True(second.Amount.Equal(decimal.NewFromInt(250)))
}

func (suite *TestSuiteStandard) TestSetBudgetErrors() {
	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"missing category", map[string]any{"year": 2025, "month": 12, "amount": 100}},
		{"month out of range", v1.BudgetEditable{Category: "Groceries", Year: 2025, Month: 13, Amount: decimal.NewFromInt(100)}},
		{"negative amount", v1.BudgetEditable{Category: "Groceries", Year: 2025, Month: 12, Amount: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetBudget() {
	created := suite.createTestBudget(v1.BudgetEditable{
		Category:    "Groceries",
		PersonEmail: "morre@example.com",
		Year:        2025,
		Month:       12,
		Amount:      decimal.NewFromInt(100),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?category=Groceries&person=morre@example.com&year=2025&month=12", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(created.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetBudgetAbsentIsNull() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?category=Groceries&year=2025&month=12", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Nil(response.Data, "no budget is null, not an error")
	suite.Assert().Nil(response.Error)
}

func (suite *TestSuiteStandard) TestGetBudgetUnknownCategory() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?category=Void&year=2025&month=12", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetBudgetInvalidMonth() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?category=Groceries&year=2025&month=0", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
