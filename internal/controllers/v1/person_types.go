package v1

import (
	"github.com/spendguard/backend/internal/models"
)

// PersonEditable represents all user configurable parameters
type PersonEditable struct {
	Email string `json:"email" binding:"required" example:"morre@example.com"` // Email of the person, must be unique
	Name  string `json:"name" example:"Morre" default:""`                      // Display name of the person
}

func (editable PersonEditable) model() models.Person {
	return models.Person{
		Email: editable.Email,
		Name:  editable.Name,
	}
}

type PersonResponse struct {
	Data  *models.Person `json:"data"`                                                          // Data for the Person
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PersonListResponse struct {
	Data  []models.Person `json:"data"`                                                          // List of Persons
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
