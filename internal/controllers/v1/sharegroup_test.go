package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/spendguard/backend/internal/controllers/v1"
	"github.com/spendguard/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsShareGroups() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/share-groups", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateShareGroup() {
	group := suite.createTestShareGroup(v1.ShareGroupEditable{Name: "Flat 23", OwnerEmail: "morre@example.com"})

	suite.Assert().Equal("Flat 23", group.Name)
	suite.Require().Len(group.Members, 1, "the owner becomes the first member")
}

func (suite *TestSuiteStandard) TestCreateShareGroupErrors() {
	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"missing owner", map[string]any{"name": "Flat 23"}},
		{"missing name", map[string]any{"ownerEmail": "morre@example.com"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/share-groups", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestAddShareGroupMember() {
	group := suite.createTestShareGroup(v1.ShareGroupEditable{Name: "Flat 23", OwnerEmail: "morre@example.com"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/share-groups/"+group.ID.String()+"/members", v1.ShareGroupMemberEditable{Email: "anna@example.com"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	// Adding the same person again must fail
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/share-groups/"+group.ID.String()+"/members", v1.ShareGroupMemberEditable{Email: "anna@example.com"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAddShareGroupMemberUnknownGroup() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/share-groups/d4483b96-a432-4a5e-af9f-2907dd9f9b5e/members", v1.ShareGroupMemberEditable{Email: "anna@example.com"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSharedExpenses() {
	group := suite.createTestShareGroup(v1.ShareGroupEditable{Name: "Flat 23", OwnerEmail: "morre@example.com"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/share-groups/"+group.ID.String()+"/members", v1.ShareGroupMemberEditable{Email: "anna@example.com"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/share-groups/"+group.ID.String()+"/expenses", v1.SharedExpenseEditable{
		PayerEmail: "morre@example.com",
		Amount:     decimal.NewFromInt(90),
		Date:       "2025-12-24",
		Note:       "groceries run",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var created v1.SharedExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &created)
	suite.Require().NotNil(created.Data)
	suite.Require().Len(created.Data.Shares, 2)
	suite.Assert().True(created.Data.Shares[0].ShareAmount.Equal(decimal.NewFromInt(45)))

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/share-groups/"+group.ID.String()+"/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.SharedExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal("groceries run", list.Data[0].Note)
}

func (suite *TestSuiteStandard) TestSharedExpensePayerNotMember() {
	group := suite.createTestShareGroup(v1.ShareGroupEditable{Name: "Flat 23", OwnerEmail: "morre@example.com"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/share-groups/"+group.ID.String()+"/expenses", v1.SharedExpenseEditable{
		PayerEmail: "stranger@example.com",
		Amount:     decimal.NewFromInt(10),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
