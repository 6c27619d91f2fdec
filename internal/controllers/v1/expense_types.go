package v1

import (
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/alert"
	"github.com/spendguard/backend/internal/models"
	"github.com/spendguard/backend/internal/tracker"
)

// ExpenseEditable represents all user configurable parameters of an
// expense.
type ExpenseEditable struct {
	PersonEmail string          `json:"personEmail" binding:"required" example:"morre@example.com"` // Email of the person owning the expense
	PersonName  string          `json:"personName" example:"Morre" default:""`                      // Display name, only used when the person does not exist yet
	Category    string          `json:"category" binding:"required" example:"Groceries"`            // Name of the category
	Amount      decimal.Decimal `json:"amount" example:"14.37"`                                     // The amount, must be positive
	Date        string          `json:"date" example:"2025-12-01" default:""`                       // Day of the expense as YYYY-MM-DD, defaults to today
	Note        string          `json:"note" example:"lunch" default:""`                            // A note, optional
	SharedWith  []ShareEditable `json:"sharedWith"`                                                 // Participants for a shared expense, optional
}

// ShareEditable is one participant of a shared expense.
type ShareEditable struct {
	Email string           `json:"email" binding:"required" example:"tim@example.com"` // Email of the participant
	Share *decimal.Decimal `json:"share" example:"7.19"`                               // Explicit share amount, unset means equal split
}

func (editable ExpenseEditable) input() tracker.ExpenseInput {
	input := tracker.ExpenseInput{
		PersonEmail: editable.PersonEmail,
		PersonName:  editable.PersonName,
		Category:    editable.Category,
		Amount:      editable.Amount,
		Note:        editable.Note,
	}

	for _, share := range editable.SharedWith {
		in := tracker.ShareInput{Email: share.Email}
		if share.Share != nil {
			in.Share = decimal.NewNullDecimal(*share.Share)
		}
		input.SharedWith = append(input.SharedWith, in)
	}

	return input
}

// Expense is the API representation of a recorded expense.
type Expense struct {
	models.Expense

	// Alert is only set when the recording triggered a budget alert.
	Alert *alert.Evaluation `json:"alert,omitempty"`

	// NotificationError is set when an alert was triggered but could
	// not be delivered. The expense is recorded either way.
	NotificationError *string `json:"notificationError,omitempty"`
}

func newExpense(result tracker.ExpenseResult) Expense {
	expense := Expense{Expense: result.Expense}

	if result.Evaluation.ShouldNotify() {
		evaluation := result.Evaluation
		expense.Alert = &evaluation
	}

	if result.NotificationError != nil {
		s := result.NotificationError.Error()
		expense.NotificationError = &s
	}

	return expense
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
