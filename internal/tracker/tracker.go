// Package tracker orchestrates the expense and budget workflows: it
// resolves people and categories, persists expenses and budgets in one
// transaction each, evaluates alerts and hands them to the notifier.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendguard/backend/internal/alert"
	"github.com/spendguard/backend/internal/models"
	"github.com/spendguard/backend/internal/notify"
	"github.com/spendguard/backend/internal/split"
	"github.com/spendguard/backend/internal/types"
	"gorm.io/gorm"
)

// Tracker executes the expense and budget workflows against the
// database.
type Tracker struct {
	db               *gorm.DB
	notifier         notify.Notifier
	defaultThreshold decimal.Decimal

	// now supplies "today" for expenses without a date, injectable for
	// tests
	now func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the clock used for default dates.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithDefaultThreshold replaces the default low-balance alert
// threshold.
func WithDefaultThreshold(threshold decimal.Decimal) Option {
	return func(t *Tracker) {
		t.defaultThreshold = threshold
	}
}

// New returns a Tracker using the given database and notifier.
func New(db *gorm.DB, notifier notify.Notifier, options ...Option) *Tracker {
	t := &Tracker{
		db:               db,
		notifier:         notifier,
		defaultThreshold: alert.DefaultThreshold,
		now:              time.Now,
	}

	for _, option := range options {
		option(t)
	}

	return t
}

// ShareInput is one participant of a shared expense, referenced by
// email. Share is the explicit amount, unset means equal split.
type ShareInput struct {
	Email string
	Share decimal.NullDecimal
}

// ExpenseInput is everything needed to record an expense.
type ExpenseInput struct {
	PersonEmail string
	PersonName  string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time // the zero value defaults to today
	Note        string
	SharedWith  []ShareInput
}

// ExpenseResult is the outcome of recording an expense.
type ExpenseResult struct {
	Expense    models.Expense
	Evaluation alert.Evaluation

	// NotificationError reports a failed delivery. The expense is
	// committed at that point, so the failure is surfaced here instead
	// of failing the recording.
	NotificationError error
}

// RecordExpense records an expense and evaluates the owner's budget for
// the expense's category and month.
//
// Resolution of the person and category, the expense row, its share
// allocations and the spending aggregation all happen in one database
// transaction. The notification, if any, is sent after the transaction
// has committed.
func (t *Tracker) RecordExpense(ctx context.Context, input ExpenseInput) (ExpenseResult, error) {
	if !input.Amount.IsPositive() {
		return ExpenseResult{}, models.ErrExpenseAmountNotPositive
	}

	date := input.Date
	if date.IsZero() {
		date = t.now().In(time.UTC)
	}
	month := types.MonthOf(date)

	var result ExpenseResult
	var category models.Category
	var budget *models.Budget

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		person, err := models.ResolvePerson(tx, input.PersonEmail, input.PersonName)
		if err != nil {
			return err
		}

		category, err = models.ResolveCategory(tx, input.Category, "")
		if err != nil {
			return err
		}

		expense := models.Expense{
			PersonID:   person.ID,
			CategoryID: category.ID,
			Amount:     input.Amount,
			Date:       date,
			Note:       input.Note,
		}

		if len(input.SharedWith) > 0 {
			shares, err := t.resolveShares(tx, input.Amount, input.SharedWith)
			if err != nil {
				return err
			}

			for _, share := range shares {
				expense.Shares = append(expense.Shares, models.ExpenseShare{
					PersonID:    share.PersonID,
					ShareAmount: share.Amount,
				})
			}
		}

		err = tx.Create(&expense).Error
		if err != nil {
			return err
		}
		result.Expense = expense

		spent, err := models.MonthlyTotal(tx, category.ID, month, person.ID)
		if err != nil {
			return err
		}

		budget, err = models.EffectiveBudget(tx, category.ID, person.ID, month)
		if err != nil {
			return err
		}

		result.Evaluation = t.evaluate(spent, budget)
		return nil
	})
	if err != nil {
		return ExpenseResult{}, err
	}

	if result.Evaluation.ShouldNotify() {
		message, _ := notify.ForEvaluation(category.Name, result.Evaluation)

		err := t.notifier.Notify(ctx, input.PersonEmail, message.Subject, message.Body)
		if err != nil {
			// The expense is committed, a failed notification must not
			// undo it
			log.Error().Err(err).Str("email", input.PersonEmail).Msg("notification failed")
			result.NotificationError = err
		}
	}

	return result, nil
}

// resolveShares resolves participant emails to people and computes the
// final allocation.
func (t *Tracker) resolveShares(tx *gorm.DB, total decimal.Decimal, inputs []ShareInput) ([]split.Share, error) {
	participants := make([]split.Participant, 0, len(inputs))
	for _, in := range inputs {
		person, err := models.ResolvePerson(tx, in.Email, "")
		if err != nil {
			return nil, err
		}

		participants = append(participants, split.Participant{
			PersonID: person.ID,
			Share:    in.Share,
		})
	}

	return split.Allocate(total, participants)
}

func (t *Tracker) evaluate(spent decimal.Decimal, budget *models.Budget) alert.Evaluation {
	if budget == nil {
		return alert.Evaluation{Kind: alert.NoBudgetConfigured, Spent: spent}
	}

	threshold := t.defaultThreshold
	if budget.AlertThreshold.Valid {
		threshold = budget.AlertThreshold.Decimal
	}

	return alert.Evaluate(spent, budget.Amount, threshold)
}

// BudgetInput is everything needed to set a budget.
type BudgetInput struct {
	Category    string
	PersonEmail string // empty scopes the budget globally
	Year        int
	Month       time.Month

	Amount decimal.Decimal

	// AlertThreshold accepts both fraction (0-1) and percentage
	// (above 1 up to 100) style values. Unset keeps the default.
	AlertThreshold decimal.NullDecimal
}

// SetBudget creates or replaces the budget for the given scope. The
// upsert is atomic, calling it twice for the same scope results in one
// budget carrying the values of the second call.
func (t *Tracker) SetBudget(ctx context.Context, input BudgetInput) (models.Budget, error) {
	if input.Amount.IsNegative() {
		return models.Budget{}, models.ErrBudgetAmountNegative
	}

	threshold := input.AlertThreshold
	if threshold.Valid {
		normalized, err := alert.NormalizeThreshold(threshold.Decimal)
		if err != nil {
			return models.Budget{}, err
		}
		threshold.Decimal = normalized
	}

	var budget models.Budget
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := models.ResolveCategory(tx, input.Category, "")
		if err != nil {
			return err
		}

		personID := uuid.Nil
		if input.PersonEmail != "" {
			person, err := models.ResolvePerson(tx, input.PersonEmail, "")
			if err != nil {
				return err
			}
			personID = person.ID
		}

		budget, err = models.UpsertBudget(tx, models.Budget{
			CategoryID:     category.ID,
			PersonID:       personID,
			Month:          types.NewMonth(input.Year, input.Month),
			Amount:         input.Amount,
			AlertThreshold: threshold,
		})
		return err
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// ErrPayerNotMember is returned when a shared expense is recorded for a
// payer outside the group.
var ErrPayerNotMember = errors.New("the payer must be a member of the share group")

// CreateShareGroup creates a group owned by the person with the given
// email. The owner becomes the first member.
func (t *Tracker) CreateShareGroup(ctx context.Context, name, ownerEmail string) (models.ShareGroup, error) {
	var group models.ShareGroup

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner, err := models.ResolvePerson(tx, ownerEmail, "")
		if err != nil {
			return err
		}

		group = models.ShareGroup{Name: name, OwnerID: owner.ID}
		err = tx.Create(&group).Error
		if err != nil {
			return err
		}

		member := models.ShareGroupMember{GroupID: group.ID, PersonID: owner.ID}
		err = tx.Create(&member).Error
		if err != nil {
			return err
		}

		group.Members = []models.ShareGroupMember{member}
		return nil
	})
	if err != nil {
		return models.ShareGroup{}, err
	}

	return group, nil
}

// AddGroupMember adds the person with the given email to the group.
func (t *Tracker) AddGroupMember(ctx context.Context, groupID uuid.UUID, email string) (models.ShareGroupMember, error) {
	var member models.ShareGroupMember

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group models.ShareGroup
		err := tx.First(&group, "id = ?", groupID).Error
		if err != nil {
			return err
		}

		person, err := models.ResolvePerson(tx, email, "")
		if err != nil {
			return err
		}

		member = models.ShareGroupMember{GroupID: group.ID, PersonID: person.ID}
		return tx.Create(&member).Error
	})
	if err != nil {
		return models.ShareGroupMember{}, err
	}

	return member, nil
}

// RecordSharedExpense records an expense paid by one group member on
// behalf of the group and allocates it evenly across the members that
// exist at recording time.
func (t *Tracker) RecordSharedExpense(ctx context.Context, groupID uuid.UUID, payerEmail string, amount decimal.Decimal, date time.Time, note string) (models.SharedExpense, error) {
	if !amount.IsPositive() {
		return models.SharedExpense{}, models.ErrExpenseAmountNotPositive
	}

	if date.IsZero() {
		date = t.now().In(time.UTC)
	}

	var expense models.SharedExpense
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group models.ShareGroup
		err := tx.First(&group, "id = ?", groupID).Error
		if err != nil {
			return err
		}

		payer, err := models.ResolvePerson(tx, payerEmail, "")
		if err != nil {
			return err
		}

		members, err := models.GroupMembers(tx, group.ID)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			return models.ErrGroupHasNoMembers
		}

		participants := make([]split.Participant, 0, len(members))
		isMember := false
		for _, member := range members {
			if member.PersonID == payer.ID {
				isMember = true
			}
			participants = append(participants, split.Participant{PersonID: member.PersonID})
		}
		if !isMember {
			return ErrPayerNotMember
		}

		shares, err := split.Allocate(amount, participants)
		if err != nil {
			return err
		}

		expense = models.SharedExpense{
			GroupID: group.ID,
			PayerID: payer.ID,
			Amount:  amount,
			Date:    date,
			Note:    note,
		}
		for _, share := range shares {
			expense.Shares = append(expense.Shares, models.SharedExpenseShare{
				PersonID:    share.PersonID,
				ShareAmount: share.Amount,
			})
		}

		return tx.Create(&expense).Error
	})
	if err != nil {
		return models.SharedExpense{}, err
	}

	return expense, nil
}
