package v1_test

import (
	"net/http"

	v1 "github.com/spendguard/backend/internal/controllers/v1"
	"github.com/spendguard/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsPeople() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/people", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreatePerson() {
	person := suite.createTestPerson(v1.PersonEditable{Email: "morre@example.com", Name: "Morre"})

	suite.Assert().Equal("morre@example.com", person.Email)
	suite.Assert().Equal("Morre", person.Name)
}

func (suite *TestSuiteStandard) TestCreatePersonDuplicateEmail() {
	_ = suite.createTestPerson(v1.PersonEditable{Email: "morre@example.com"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/people", v1.PersonEditable{Email: "morre@example.com"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetPeople() {
	_ = suite.createTestPerson(v1.PersonEditable{Email: "morre@example.com"})
	_ = suite.createTestPerson(v1.PersonEditable{Email: "anna@example.com"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/people", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PersonListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("anna@example.com", response.Data[0].Email, "people are ordered by email")
}

func (suite *TestSuiteStandard) TestGetPerson() {
	created := suite.createTestPerson(v1.PersonEditable{Email: "morre@example.com"})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/people/"+created.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PersonResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(created.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetPersonNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/people/d4483b96-a432-4a5e-af9f-2907dd9f9b5e", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
