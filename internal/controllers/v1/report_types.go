package v1

import (
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/report"
	"github.com/spendguard/backend/internal/types"
)

// ReportQueryFilter are the query parameters shared by the report
// endpoints.
type ReportQueryFilter struct {
	Year     int    `form:"year" binding:"required"`
	Month    int    `form:"month" binding:"required"`
	Person   string `form:"person"`   // Email of the person, empty for all people
	Category string `form:"category"` // Glob pattern matched against category names, e.g. "food*"
}

type SpendVsBudgetResponse struct {
	Data  []report.Row `json:"data"`                                                          // One row per category
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// MonthlyTotal is the total spending for one month.
type MonthlyTotal struct {
	Month types.Month     `json:"month" example:"2025-12-01T00:00:00Z"`
	Total decimal.Decimal `json:"total" example:"374.99"`
}

type MonthlyTotalResponse struct {
	Data  *MonthlyTotal `json:"data"`                                                          // The total for the month
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
