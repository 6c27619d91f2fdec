package models_test

import (
	"github.com/spendguard/backend/internal/models"
)

func (suite *TestSuiteStandard) TestPersonTrimWhitespace() {
	person := suite.createTestPerson(models.Person{Email: " morre@example.com ", Name: " Morre "})

	suite.Assert().Equal("morre@example.com", person.Email)
	suite.Assert().Equal("Morre", person.Name)
}

func (suite *TestSuiteStandard) TestPersonEmailRequired() {
	err := models.DB.Create(&models.Person{Name: "No Email"}).Error
	suite.Assert().ErrorIs(err, models.ErrPersonEmailRequired)
}

func (suite *TestSuiteStandard) TestPersonEmailUnique() {
	_ = suite.createTestPerson(models.Person{Email: "morre@example.com"})

	err := models.DB.Create(&models.Person{Email: "morre@example.com"}).Error
	suite.Assert().ErrorIs(err, models.ErrPersonEmailNotUnique)
}

func (suite *TestSuiteStandard) TestPersonNotFoundMessage() {
	err := models.DB.First(&models.Person{}, "email = ?", "void@example.com").Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no person matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestResolvePersonCreates() {
	person, err := models.ResolvePerson(models.DB, "anna@example.com", "Anna")
	suite.Require().NoError(err)
	suite.Assert().Equal("anna@example.com", person.Email)
	suite.Assert().Equal("Anna", person.Name)

	var count int64
	models.DB.Model(&models.Person{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestResolvePersonIdempotent() {
	first, err := models.ResolvePerson(models.DB, "anna@example.com", "Anna")
	suite.Require().NoError(err)

	// The name is only used on creation
	second, err := models.ResolvePerson(models.DB, "anna@example.com", "Annabelle")
	suite.Require().NoError(err)

	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().Equal("Anna", second.Name)

	var count int64
	models.DB.Model(&models.Person{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestResolvePersonEmailRequired() {
	_, err := models.ResolvePerson(models.DB, "  ", "Anna")
	suite.Assert().ErrorIs(err, models.ErrPersonEmailRequired)
}
