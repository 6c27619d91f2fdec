package models_test

import (
	"github.com/spendguard/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryNameRequired() {
	err := models.DB.Create(&models.Category{Description: "no name"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameRequired)
}

func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	_ = suite.createTestCategory(models.Category{Name: "Groceries"})

	err := models.DB.Create(&models.Category{Name: "Groceries"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestResolveCategoryIdempotent() {
	first, err := models.ResolveCategory(models.DB, "Groceries", "Everything edible")
	suite.Require().NoError(err)

	second, err := models.ResolveCategory(models.DB, "Groceries", "ignored")
	suite.Require().NoError(err)

	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().Equal("Everything edible", second.Description)

	var count int64
	models.DB.Model(&models.Category{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestCategoriesOrderedByName() {
	_ = suite.createTestCategory(models.Category{Name: "Transport"})
	_ = suite.createTestCategory(models.Category{Name: "Groceries"})
	_ = suite.createTestCategory(models.Category{Name: "Rent"})

	categories, err := models.Categories(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(categories, 3)

	suite.Assert().Equal("Groceries", categories[0].Name)
	suite.Assert().Equal("Rent", categories[1].Name)
	suite.Assert().Equal("Transport", categories[2].Name)
}
