package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/models"
	"github.com/spendguard/backend/internal/types"
)

func (suite *TestSuiteStandard) TestBudgetAmountMustNotBeNegative() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	err := models.DB.Create(&models.Budget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2025, 12),
		Amount:     decimal.NewFromInt(-1),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetAmountNegative)
}

func (suite *TestSuiteStandard) TestBudgetZeroAmountAllowed() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	// A zero budget can be stored. The alert evaluation treats it as
	// not configured, but storing it is not an error.
	budget := suite.createTestBudget(models.Budget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2025, 12),
		Amount:     decimal.Zero,
	})

	suite.Assert().True(budget.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetThresholdValidated() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	for _, threshold := range []decimal.Decimal{decimal.NewFromFloat(-0.1), decimal.NewFromFloat(1.1)} {
		err := models.DB.Create(&models.Budget{
			CategoryID:     category.ID,
			Month:          types.NewMonth(2025, 12),
			Amount:         decimal.NewFromInt(100),
			AlertThreshold: decimal.NewNullDecimal(threshold),
		}).Error
		suite.Assert().ErrorIs(err, models.ErrBudgetThresholdInvalid, "threshold %s must be rejected", threshold)
	}
}

func (suite *TestSuiteStandard) TestBudgetUnique() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	_ = suite.createTestBudget(models.Budget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2025, 12),
		Amount:     decimal.NewFromInt(100),
	})

	err := models.DB.Create(&models.Budget{
		CategoryID: category.ID,
		Month:      types.NewMonth(2025, 12),
		Amount:     decimal.NewFromInt(200),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetNotUnique)
}

func (suite *TestSuiteStandard) TestUpsertBudget() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})
	month := types.NewMonth(2025, 12)

	first, err := models.UpsertBudget(models.DB, models.Budget{
		CategoryID: category.ID,
		Month:      month,
		Amount:     decimal.NewFromInt(100),
	})
	suite.Require().NoError(err)

	second, err := models.UpsertBudget(models.DB, models.Budget{
		CategoryID:     category.ID,
		Month:          month,
		Amount:         decimal.NewFromInt(250),
		AlertThreshold: decimal.NewNullDecimal(decimal.NewFromFloat(0.2)),
	})
	suite.Require().NoError(err)

	suite.Assert().Equal(first.ID, second.ID, "upsert must keep the existing row")
	suite.Assert().True(second.Amount.Equal(decimal.NewFromInt(250)), "amount is %s", second.Amount)
	suite.Assert().True(second.AlertThreshold.Valid)

	var count int64
	models.DB.Model(&models.Budget{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestFindBudgetAbsent() {
	budget, err := models.FindBudget(models.DB, uuid.New(), uuid.Nil, types.NewMonth(2025, 12))

	suite.Require().NoError(err, "a missing budget is not an error")
	suite.Assert().Nil(budget)
}

func (suite *TestSuiteStandard) TestEffectiveBudget() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})
	person := suite.createTestPerson(models.Person{Email: "morre@example.com"})
	month := types.NewMonth(2025, 12)

	global := suite.createTestBudget(models.Budget{
		CategoryID: category.ID,
		Month:      month,
		Amount:     decimal.NewFromInt(300),
	})

	// Without a personal budget, the global one applies
	effective, err := models.EffectiveBudget(models.DB, category.ID, person.ID, month)
	suite.Require().NoError(err)
	suite.Require().NotNil(effective)
	suite.Assert().Equal(global.ID, effective.ID)

	personal := suite.createTestBudget(models.Budget{
		CategoryID: category.ID,
		PersonID:   person.ID,
		Month:      month,
		Amount:     decimal.NewFromInt(100),
	})

	// The personal budget takes precedence
	effective, err = models.EffectiveBudget(models.DB, category.ID, person.ID, month)
	suite.Require().NoError(err)
	suite.Require().NotNil(effective)
	suite.Assert().Equal(personal.ID, effective.ID)

	// Another person still gets the global budget
	effective, err = models.EffectiveBudget(models.DB, category.ID, uuid.New(), month)
	suite.Require().NoError(err)
	suite.Require().NotNil(effective)
	suite.Assert().Equal(global.ID, effective.ID)
}

func (suite *TestSuiteStandard) TestEffectiveBudgetNoneConfigured() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})

	effective, err := models.EffectiveBudget(models.DB, category.ID, uuid.Nil, types.NewMonth(2025, 12))
	suite.Require().NoError(err)
	suite.Assert().Nil(effective)
}
