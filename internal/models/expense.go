package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/types"
	"gorm.io/gorm"
)

// Expense represents a single recorded expense.
//
// Expenses are append-only: once created they are never updated or
// deleted.
type Expense struct {
	DefaultModel
	PersonID   uuid.UUID       `json:"personId" example:"d4483b96-a432-4a5e-af9f-2907dd9f9b5e"` // The person who owns the expense
	Person     Person          `json:"-"`
	CategoryID uuid.UUID       `json:"categoryId" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"` // The category the expense belongs to
	Category   Category        `json:"-"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.37"` // The amount, always positive
	Date       time.Time       `json:"date" example:"2025-12-01T00:00:00Z"`              // The calendar day the expense occurred on
	Note       string          `json:"note" example:"lunch" default:""`                  // A note, optional
	Shares     []ExpenseShare  `json:"shares,omitempty"`                                 // Allocations if the expense is shared
}

// ExpenseShare allocates a part of a shared expense to a participant.
//
// Rows are created together with their parent expense and are never
// mutated.
type ExpenseShare struct {
	DefaultModel
	ExpenseID   uuid.UUID       `json:"expenseId"`
	PersonID    uuid.UUID       `json:"personId"`
	ShareAmount decimal.Decimal `json:"shareAmount" gorm:"type:DECIMAL(20,8)" example:"7.19"`
}

var ErrExpenseAmountNotPositive = errors.New("the amount of an expense must be positive")

// BeforeSave validates the amount and normalizes the date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	e.Date = e.Date.In(time.UTC)
	e.Note = strings.TrimSpace(e.Note)

	return nil
}

// MonthlyTotal sums the amounts of all expenses in the given month.
//
// categoryID and personID restrict the sum when set; uuid.Nil means "no
// restriction". Months without expenses sum to zero, not to an error.
func MonthlyTotal(db *gorm.DB, categoryID uuid.UUID, month types.Month, personID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	q := db.
		Select("SUM(amount)").
		Where("date >= date(?) AND date < date(?)", month, month.AddDate(0, 1)).
		Table("expenses")

	if categoryID != uuid.Nil {
		q = q.Where("category_id = ?", categoryID)
	}

	if personID != uuid.Nil {
		q = q.Where("person_id = ?", personID)
	}

	err := q.Find(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no expenses are found, the value is nil
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
