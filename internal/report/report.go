// Package report composes the expense and budget stores into read-only
// spending reports. Reports never trigger alerts.
package report

import (
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/models"
	"github.com/spendguard/backend/internal/types"
	"gorm.io/gorm"
)

// Row is the spend-vs-budget comparison for one category.
type Row struct {
	CategoryID uuid.UUID       `json:"categoryId"`
	Category   string          `json:"category" example:"Groceries"`
	Spent      decimal.Decimal `json:"spent" example:"120.50"`

	// Budget is nil when no budget is configured for the category.
	// This is different from a budget with amount zero.
	Budget *decimal.Decimal `json:"budget" example:"200"`
}

// SpendVsBudget compares spending against the configured budgets for
// all known categories in the given month, ordered by category name.
//
// personID scopes both the spending and the budget lookup to one
// person (falling back to global budgets), uuid.Nil reports global
// spending against global budgets. pattern optionally restricts the
// report to categories whose name matches the glob pattern.
func SpendVsBudget(db *gorm.DB, month types.Month, personID uuid.UUID, pattern string) ([]Row, error) {
	categories, err := models.Categories(db)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(categories))
	for _, category := range categories {
		if pattern != "" && !glob.Glob(pattern, category.Name) {
			continue
		}

		spent, err := models.MonthlyTotal(db, category.ID, month, personID)
		if err != nil {
			return nil, err
		}

		row := Row{
			CategoryID: category.ID,
			Category:   category.Name,
			Spent:      spent,
		}

		budget, err := models.EffectiveBudget(db, category.ID, personID, month)
		if err != nil {
			return nil, err
		}
		if budget != nil {
			amount := budget.Amount
			row.Budget = &amount
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// MonthlyTotal sums all spending in the given month, optionally scoped
// to one person.
func MonthlyTotal(db *gorm.DB, month types.Month, personID uuid.UUID) (decimal.Decimal, error) {
	return models.MonthlyTotal(db, uuid.Nil, month, personID)
}
