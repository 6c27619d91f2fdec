// Package alert decides whether spending against a budget warrants a
// notification.
//
// Evaluate is a pure function: it performs no I/O and sending the
// resulting notification is the caller's job, so alert evaluation is
// never delayed by unreliable transport.
package alert

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Kind classifies the outcome of a budget evaluation.
type Kind string

const (
	// NoBudgetConfigured means the budget amount is not positive. A
	// non-positive budget is treated as "not set" and never alerts.
	NoBudgetConfigured Kind = "NO_BUDGET_CONFIGURED"

	// OverBudget means the spending exceeds the budget.
	OverBudget Kind = "OVER_BUDGET"

	// LowRemaining means the remaining amount is at or below the
	// threshold fraction of the budget.
	LowRemaining Kind = "LOW_REMAINING"

	// WithinBudget means no notification is warranted.
	WithinBudget Kind = "WITHIN_BUDGET"
)

// DefaultThreshold is the remaining fraction of the budget at which a
// low-balance alert fires when no explicit threshold is configured.
var DefaultThreshold = decimal.New(1, -1)

// Evaluation is the result of evaluating spending against a budget.
type Evaluation struct {
	Kind      Kind            `json:"kind" example:"LOW_REMAINING"`
	Spent     decimal.Decimal `json:"spent" example:"90"`
	Budget    decimal.Decimal `json:"budget" example:"100"`
	Remaining decimal.Decimal `json:"remaining" example:"10"`            // Budget minus spent, negative when over budget
	Overage   decimal.Decimal `json:"overage,omitempty" example:"0"`     // How far over budget, only set for OVER_BUDGET
	Threshold decimal.Decimal `json:"threshold,omitempty" example:"0.1"` // The triggering threshold, only set for LOW_REMAINING
}

// ShouldNotify reports whether the evaluation warrants a notification.
func (e Evaluation) ShouldNotify() bool {
	return e.Kind == OverBudget || e.Kind == LowRemaining
}

// Evaluate compares the spent amount against the budget amount.
//
// threshold is the remaining fraction of the budget at or below which
// LowRemaining fires. Spending exactly the budget amount leaves a
// remaining amount of zero, which is at or below any non-negative
// threshold, so it is LowRemaining, never OverBudget.
func Evaluate(spent, budget, threshold decimal.Decimal) Evaluation {
	evaluation := Evaluation{
		Spent:  spent,
		Budget: budget,
	}

	if !budget.IsPositive() {
		evaluation.Kind = NoBudgetConfigured
		return evaluation
	}

	remaining := budget.Sub(spent)
	evaluation.Remaining = remaining

	if remaining.IsNegative() {
		evaluation.Kind = OverBudget
		evaluation.Overage = remaining.Neg()
		return evaluation
	}

	if remaining.LessThanOrEqual(budget.Mul(threshold)) {
		evaluation.Kind = LowRemaining
		evaluation.Threshold = threshold
		return evaluation
	}

	evaluation.Kind = WithinBudget
	return evaluation
}

// ErrThresholdOutOfRange is returned for thresholds that are neither a
// valid fraction nor a valid percentage.
var ErrThresholdOutOfRange = errors.New("the alert threshold must be a fraction between 0 and 1 or a percentage between 0 and 100")

var hundred = decimal.New(1, 2)

// NormalizeThreshold canonicalizes a threshold to the fraction
// representation.
//
// Values up to 1 are taken as fractions, values above 1 up to 100 as
// percentages and converted. Anything else is out of range.
func NormalizeThreshold(value decimal.Decimal) (decimal.Decimal, error) {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return decimal.Zero, ErrThresholdOutOfRange
	}

	if value.GreaterThan(decimal.New(1, 0)) {
		return value.Div(hundred), nil
	}

	return value, nil
}
