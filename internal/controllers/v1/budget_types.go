package v1

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/models"
	"github.com/spendguard/backend/internal/tracker"
)

// BudgetEditable represents all user configurable parameters of a
// budget.
type BudgetEditable struct {
	Category    string `json:"category" binding:"required" example:"Groceries"`    // Name of the category the budget limits
	PersonEmail string `json:"personEmail" example:"morre@example.com" default:""` // Email of the person the budget is scoped to, empty for a global budget
	Year        int    `json:"year" binding:"required" example:"2025"`
	Month       int    `json:"month" binding:"required" example:"12"`

	Amount decimal.Decimal `json:"amount" example:"100"` // The budgeted amount, must not be negative

	// AlertThreshold accepts a fraction (0-1) or a percentage (above 1
	// up to 100). Unset uses the configured default.
	AlertThreshold *decimal.Decimal `json:"alertThreshold" example:"0.1"`
}

func (editable BudgetEditable) input() tracker.BudgetInput {
	input := tracker.BudgetInput{
		Category:    editable.Category,
		PersonEmail: editable.PersonEmail,
		Year:        editable.Year,
		Month:       time.Month(editable.Month),
		Amount:      editable.Amount,
	}

	if editable.AlertThreshold != nil {
		input.AlertThreshold = decimal.NewNullDecimal(*editable.AlertThreshold)
	}

	return input
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`                                                          // Data for the Budget, null when no budget is configured
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// BudgetQueryFilter are the query parameters for the budget lookup.
type BudgetQueryFilter struct {
	Category string `form:"category" binding:"required"` // Name of the category
	Person   string `form:"person"`                      // Email of the person, empty queries the global budget
	Year     int    `form:"year" binding:"required"`
	Month    int    `form:"month" binding:"required"`
}
