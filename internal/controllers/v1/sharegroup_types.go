package v1

import (
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/models"
)

// ShareGroupEditable represents all user configurable parameters
type ShareGroupEditable struct {
	Name       string `json:"name" binding:"required" example:"Flat 4b"`                 // Name of the group
	OwnerEmail string `json:"ownerEmail" binding:"required" example:"morre@example.com"` // Email of the owner, who becomes the first member
}

type ShareGroupResponse struct {
	Data  *models.ShareGroup `json:"data"`                                                          // Data for the ShareGroup
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ShareGroupMemberEditable represents all user configurable parameters
type ShareGroupMemberEditable struct {
	Email string `json:"email" binding:"required" example:"anna@example.com"` // Email of the person to add
}

type ShareGroupMemberResponse struct {
	Data  *models.ShareGroupMember `json:"data"`                                                          // Data for the ShareGroupMember
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// SharedExpenseEditable represents all user configurable parameters
type SharedExpenseEditable struct {
	PayerEmail string          `json:"payerEmail" binding:"required" example:"morre@example.com"` // Email of the member who paid
	Amount     decimal.Decimal `json:"amount" example:"90"`                                       // The amount paid, must be positive
	Date       string          `json:"date" example:"2025-12-24" default:""`                      // Date of the expense as YYYY-MM-DD, today when empty
	Note       string          `json:"note" example:"Groceries run" default:""`                   // Note about the expense
}

type SharedExpenseResponse struct {
	Data  *models.SharedExpense `json:"data"`                                                          // Data for the SharedExpense
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SharedExpenseListResponse struct {
	Data  []models.SharedExpense `json:"data"`                                                          // List of SharedExpenses, newest first
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
