package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget represents the spending limit for a category in a specific
// month.
//
// A budget is either scoped to one person or global. A global budget
// has PersonID set to uuid.Nil; the unique index treats that as its own
// scope, so there is at most one budget per (category, person, month).
type Budget struct {
	DefaultModel
	CategoryID uuid.UUID   `json:"categoryId" gorm:"uniqueIndex:budget_category_person_month"` // The category the budget limits
	Category   Category    `json:"-"`
	PersonID   uuid.UUID   `json:"personId" gorm:"uniqueIndex:budget_category_person_month"` // The person the budget is scoped to, uuid.Nil for a global budget
	Month      types.Month `json:"month" gorm:"uniqueIndex:budget_category_person_month" example:"2025-12-01T00:00:00.000000Z"`

	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"100"` // The budgeted amount, never negative

	// AlertThreshold is the remaining fraction of the budget at which a
	// low-balance alert fires. When it is not set, the configured
	// default applies.
	AlertThreshold decimal.NullDecimal `json:"alertThreshold" gorm:"type:DECIMAL(20,8)" swaggertype:"primitive,number" example:"0.1"`
}

var (
	ErrBudgetAmountNegative   = errors.New("the amount of a budget must not be negative")
	ErrBudgetThresholdInvalid = errors.New("the alert threshold must be a fraction between 0 and 1")
	ErrBudgetNotUnique        = errors.New("there already is a budget for this category, person and month")
)

// BeforeSave validates amount and threshold.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	if b.AlertThreshold.Valid {
		t := b.AlertThreshold.Decimal
		if t.IsNegative() || t.GreaterThan(decimal.New(1, 0)) {
			return ErrBudgetThresholdInvalid
		}
	}

	return nil
}

// UpsertBudget creates the budget for its (category, person, month) key
// or, when a budget for that key already exists, replaces its amount
// and alert threshold.
//
// The operation is atomic: the conflict handling happens inside the
// database, two concurrent upserts for the same key never produce two
// rows.
func UpsertBudget(db *gorm.DB, budget Budget) (Budget, error) {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "person_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "alert_threshold", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	// On a conflict the generated ID does not belong to the stored row,
	// so the row is read back
	var result Budget
	err = db.Where("category_id = ? AND person_id = ? AND month = ?", budget.CategoryID, budget.PersonID, budget.Month).First(&result).Error
	if err != nil {
		return Budget{}, err
	}

	return result, nil
}

// FindBudget returns the budget for the exact (category, person, month)
// key, or nil if there is none. A missing budget is not an error, it
// simply means unconstrained spending.
func FindBudget(db *gorm.DB, categoryID uuid.UUID, personID uuid.UUID, month types.Month) (*Budget, error) {
	var budget Budget
	err := db.Where("category_id = ? AND person_id = ? AND month = ?", categoryID, personID, month).First(&budget).Error
	if errors.Is(err, ErrResourceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &budget, nil
}

// EffectiveBudget returns the budget that applies to a person's
// spending in a category: their own budget when one exists, the global
// budget otherwise. Returns nil when neither is configured.
func EffectiveBudget(db *gorm.DB, categoryID uuid.UUID, personID uuid.UUID, month types.Month) (*Budget, error) {
	if personID != uuid.Nil {
		budget, err := FindBudget(db, categoryID, personID, month)
		if budget != nil || err != nil {
			return budget, err
		}
	}

	return FindBudget(db, categoryID, uuid.Nil, month)
}
