package v1

import (
	"github.com/spendguard/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string `json:"name" binding:"required" example:"Groceries"`             // Name of the category, must be unique
	Description string `json:"description" example:"Everyday food shopping" default:""` // Description of the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type CategoryListResponse struct {
	Data       []models.Category `json:"data"`                                                          // List of Categories
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                                          // Data for the Category
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name        string `form:"name" filterField:"false"`        // By name
	Description string `form:"description" filterField:"false"` // By description
	Search      string `form:"search" filterField:"false"`      // By string in name or description
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Category returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Categories to return. Defaults to 50.
}
