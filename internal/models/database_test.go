package models_test

import (
	"github.com/spendguard/backend/internal/models"
)

func (suite *TestSuiteStandard) TestClosedDatabaseReturnsGeneralError() {
	suite.CloseDB()

	err := models.DB.First(&models.Person{}, "email = ?", "morre@example.com").Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
