package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/models"
	"github.com/spendguard/backend/internal/types"
)

func (suite *TestSuiteStandard) TestExpenseAmountMustBePositive() {
	person := suite.createTestPerson(models.Person{Email: "morre@example.com"})
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		err := models.DB.Create(&models.Expense{
			PersonID:   person.ID,
			CategoryID: category.ID,
			Amount:     amount,
			Date:       time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		}).Error
		suite.Assert().ErrorIs(err, models.ErrExpenseAmountNotPositive, "amount %s must be rejected", amount)
	}

	var count int64
	models.DB.Model(&models.Expense{}).Count(&count)
	suite.Assert().Equal(int64(0), count, "no row may exist after a failed insert")
}

func (suite *TestSuiteStandard) TestMonthlyTotal() {
	person := suite.createTestPerson(models.Person{Email: "morre@example.com"})
	other := suite.createTestPerson(models.Person{Email: "anna@example.com"})
	groceries := suite.createTestCategory(models.Category{Name: "Groceries"})
	transport := suite.createTestCategory(models.Category{Name: "Transport"})

	december := types.NewMonth(2025, 12)

	_ = suite.createTestExpense(models.Expense{PersonID: person.ID, CategoryID: groceries.ID, Amount: decimal.NewFromFloat(10.50), Date: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestExpense(models.Expense{PersonID: person.ID, CategoryID: groceries.ID, Amount: decimal.NewFromFloat(20.25), Date: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestExpense(models.Expense{PersonID: person.ID, CategoryID: transport.ID, Amount: decimal.NewFromInt(5), Date: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestExpense(models.Expense{PersonID: other.ID, CategoryID: groceries.ID, Amount: decimal.NewFromInt(100), Date: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)})

	// Adjacent months must not count
	_ = suite.createTestExpense(models.Expense{PersonID: person.ID, CategoryID: groceries.ID, Amount: decimal.NewFromInt(999), Date: time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestExpense(models.Expense{PersonID: person.ID, CategoryID: groceries.ID, Amount: decimal.NewFromInt(999), Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})

	tests := []struct {
		name       string
		categoryID uuid.UUID
		personID   uuid.UUID
		expected   string
	}{
		{"person and category", groceries.ID, person.ID, "30.75"},
		{"category across people", groceries.ID, uuid.Nil, "130.75"},
		{"person across categories", uuid.Nil, person.ID, "35.75"},
		{"everything", uuid.Nil, uuid.Nil, "135.75"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			sum, err := models.MonthlyTotal(models.DB, tt.categoryID, december, tt.personID)
			suite.Require().NoError(err)
			suite.Assert().True(sum.Equal(decimal.RequireFromString(tt.expected)), "sum is %s, not %s", sum, tt.expected)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthlyTotalEmptyMonthIsZero() {
	sum, err := models.MonthlyTotal(models.DB, uuid.Nil, types.NewMonth(2025, 12), uuid.Nil)

	suite.Require().NoError(err)
	suite.Assert().True(sum.IsZero(), "an empty month must sum to zero, got %s", sum)
}
